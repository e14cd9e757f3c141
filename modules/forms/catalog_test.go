package forms_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rococo-gallery/forms/modules/forms"
)

func newCatalog(t *testing.T, opts ...forms.CatalogOption) *forms.Catalog {
	t.Helper()
	c, err := forms.NewCatalog(context.Background(), opts...)
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	t.Run("defaults to russian", func(t *testing.T) {
		c := newCatalog(t)
		assert.Equal(t, forms.DefaultLanguage, c.Language())
		assert.Equal(t, "Укажите автора картины", c.Message(forms.KeyAuthorRequired))
	})

	t.Run("selects requested language", func(t *testing.T) {
		c := newCatalog(t, forms.WithLanguage("en-US,en;q=0.9"))
		assert.Equal(t, "en", c.Language())
		assert.Equal(t, "Specify the author of the painting", c.Message(forms.KeyAuthorRequired))
	})

	t.Run("unsupported language falls back to default", func(t *testing.T) {
		c := newCatalog(t, forms.WithLanguage("fr"))
		assert.Equal(t, forms.DefaultLanguage, c.Language())
	})

	t.Run("bundled locales define every key", func(t *testing.T) {
		for _, lang := range []string{"ru", "en"} {
			c := newCatalog(t, forms.WithLanguage(lang))
			for _, key := range forms.Keys {
				assert.NotEqual(t, key, c.Message(key), "lang %s key %s", lang, key)
			}
		}
	})

	t.Run("substitutes placeholders", func(t *testing.T) {
		c := newCatalog(t)
		assert.Equal(t, "Название не может быть короче 3 символов", c.Message(forms.KeyTitleMin, "min", "3"))
		assert.Equal(t, "Максимальный размер изображения 15 Mb", c.Message(forms.KeyImageSize, "size", "15"))
	})

	t.Run("locales directory overrides bundled wording", func(t *testing.T) {
		dir := t.TempDir()
		content := "ru:\n  errors:\n    title:\n      min: \"Слишком короткое название\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "ru.yaml"), []byte(content), 0o600))

		c := newCatalog(t, forms.WithLocalesDir(dir))
		assert.Equal(t, "Слишком короткое название", c.Message(forms.KeyTitleMin, "min", "3"))
		assert.Equal(t, "Название не может быть длиннее 255 символов", c.Message(forms.KeyTitleMax, "max", "255"))
	})

	t.Run("rejects incomplete language", func(t *testing.T) {
		dir := t.TempDir()
		content := "de:\n  errors:\n    title:\n      min: \"Titel zu kurz\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte(content), 0o600))

		_, err := forms.NewCatalog(context.Background(), forms.WithLocalesDir(dir), forms.WithLanguage("de"))
		assert.ErrorIs(t, err, forms.ErrIncompleteCatalog)
	})

	t.Run("missing locales directory fails", func(t *testing.T) {
		_, err := forms.NewCatalog(context.Background(), forms.WithLocalesDir(filepath.Join(t.TempDir(), "missing")))
		assert.ErrorIs(t, err, forms.ErrLoadingCatalog)
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := forms.NewCatalog(ctx)
		assert.ErrorIs(t, err, forms.ErrLoadingCatalog)
	})
}
