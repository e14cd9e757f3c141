package file

import "errors"

var (
	ErrNilFileHeader    = errors.New("file header is nil")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrFailedToOpenFile = errors.New("failed to open file")
	ErrFailedToReadFile = errors.New("failed to read file")
	ErrFailedToStatPath = errors.New("failed to stat path")
)
