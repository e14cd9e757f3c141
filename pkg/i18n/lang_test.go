package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rococo-gallery/forms/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "ru"}

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"exact", "ru", "ru"},
		{"regional variant", "ru-RU", "ru"},
		{"accept-language list", "ru-RU,ru;q=0.9,en;q=0.8", "ru"},
		{"quality ordering", "en;q=0.5,ru;q=0.9", "ru"},
		{"unsupported falls back", "ja", "ru"},
		{"empty falls back", "", "ru"},
		{"malformed falls back", ";;;", "ru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.MatchLanguage(tt.requested, supported, "ru"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLanguage("ru", nil, "en"))
	})
}
