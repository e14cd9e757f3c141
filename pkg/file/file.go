package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen is the maximum number of bytes http.DetectContentType reads.
const sniffLen = 512

// Meta describes an image candidate: its MIME type and size in bytes.
type Meta struct {
	Filename string
	MIMEType string
	Size     int64
}

// FromHeader describes an uploaded file. The MIME type is detected from the
// first bytes of the content rather than taken from the client-supplied
// Content-Type, so a renamed PDF is still reported as application/pdf.
func FromHeader(fh *multipart.FileHeader) (Meta, error) {
	if fh == nil {
		return Meta{}, ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	mimeType, err := DetectMIMEType(f)
	if err != nil {
		return Meta{}, err
	}

	return Meta{
		Filename: SanitizeFilename(fh.Filename),
		MIMEType: mimeType,
		Size:     fh.Size,
	}, nil
}

// FromPath describes a file on disk.
func FromPath(path string) (Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return Meta{}, ErrIsDirectory
	}

	mimeType, err := DetectMIMEType(f)
	if err != nil {
		return Meta{}, err
	}

	return Meta{
		Filename: SanitizeFilename(info.Name()),
		MIMEType: mimeType,
		Size:     info.Size(),
	}, nil
}

// DetectMIMEType sniffs the content type from the first 512 bytes of r.
// Media type parameters are dropped ("text/plain; charset=utf-8" -> "text/plain").
// If r is an io.Seeker it is rewound for subsequent reads.
func DetectMIMEType(r io.Reader) (string, error) {
	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	if seeker, ok := r.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	mimeType := http.DetectContentType(buffer[:n])
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType, nil
}

// SanitizeFilename removes any path components and dangerous characters from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
