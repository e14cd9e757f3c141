package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// Parsing
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrParsingCancelled  = errors.New("translation parsing cancelled")

	// Loading
	ErrLoadingCancelled    = errors.New("loading translations cancelled")
	ErrFailedToReadDir     = errors.New("failed to read translations directory")
	ErrFailedToReadFile    = errors.New("failed to read translation file")
	ErrFailedToParseFile   = errors.New("failed to parse translation file")
	ErrNoTranslationsFound = errors.New("no translation files found")
	ErrInvalidTranslations = errors.New("invalid translations structure")
)
