package pageable

import "errors"

var (
	ErrDecodeFailed   = errors.New("failed to decode page envelope")
	ErrUnknownShape   = errors.New("unknown page envelope shape")
	ErrInvalidRequest = errors.New("invalid page request")
)
