package validator

import (
	"fmt"
	"mime"
	"slices"
	"strings"
)

// normalizeMIMEType lowercases the media type and drops parameters such as charset.
func normalizeMIMEType(mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mediaType
	}
	return strings.ToLower(mimeType)
}

// AllowedMIMEType validates that mimeType is one of the allowed media types.
// Comparison ignores case and media type parameters.
func AllowedMIMEType(field, mimeType string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			mt := normalizeMIMEType(mimeType)
			return slices.ContainsFunc(allowed, func(a string) bool {
				return strings.EqualFold(a, mt)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
			TranslationKey: "validation.mime_type",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": strings.Join(allowed, ", "),
			},
		},
	}
}

// MaxFileSize validates that size does not exceed maxBytes.
func MaxFileSize(field string, size, maxBytes int64) Rule {
	return Rule{
		Check: func() bool {
			return size <= maxBytes
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not exceed %d bytes", maxBytes),
			TranslationKey: "validation.max_file_size",
			TranslationValues: map[string]any{
				"field": field,
				"max":   maxBytes,
				"size":  maxBytes >> 20,
			},
		},
	}
}
