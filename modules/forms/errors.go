package forms

import "errors"

var (
	ErrLoadingCatalog    = errors.New("failed to load error catalog")
	ErrIncompleteCatalog = errors.New("error catalog is missing messages")
	ErrNilCatalog        = errors.New("error catalog is nil")
)
