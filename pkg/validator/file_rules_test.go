package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rococo-gallery/forms/pkg/validator"
)

func TestAllowedMIMEType(t *testing.T) {
	allowed := []string{"image/png", "image/jpeg", "image/jpg"}

	tests := []struct {
		name     string
		mimeType string
		want     bool
	}{
		{"png", "image/png", true},
		{"jpeg", "image/jpeg", true},
		{"jpg", "image/jpg", true},
		{"upper case", "IMAGE/PNG", true},
		{"with parameters", "image/jpeg; charset=binary", true},
		{"pdf", "application/pdf", false},
		{"gif", "image/gif", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.AllowedMIMEType("image", tt.mimeType, allowed...)
			assert.Equal(t, tt.want, rule.Check())
		})
	}

	t.Run("error metadata", func(t *testing.T) {
		rule := validator.AllowedMIMEType("image", "text/plain", "image/png")
		assert.Equal(t, "validation.mime_type", rule.Error.TranslationKey)
		assert.Equal(t, "must be one of image/png", rule.Error.Message)
	})
}

func TestMaxFileSize(t *testing.T) {
	const limit = 15 << 20

	assert.True(t, validator.MaxFileSize("image", 1024, limit).Check())
	assert.True(t, validator.MaxFileSize("image", limit, limit).Check())
	assert.False(t, validator.MaxFileSize("image", limit+1, limit).Check())

	rule := validator.MaxFileSize("image", 0, limit)
	assert.Equal(t, int64(15), rule.Error.TranslationValues["size"])
	assert.Equal(t, "validation.max_file_size", rule.Error.TranslationKey)
}
