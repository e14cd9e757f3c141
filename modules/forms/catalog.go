package forms

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"

	"github.com/rococo-gallery/forms/pkg/i18n"
	"github.com/rococo-gallery/forms/pkg/logger"
	"github.com/rococo-gallery/forms/pkg/validator"
)

// DefaultLanguage is the catalog language used when none is requested.
const DefaultLanguage = "ru"

//go:embed locales/*.yaml
var locales embed.FS

// Catalog resolves error catalog keys to messages in one language.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	translator *i18n.Translator
	lang       string
}

// CatalogOption configures NewCatalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	lang       string
	localesDir string
	logger     *slog.Logger
}

// WithLanguage requests a catalog language. Accepts a tag ("en-US") or an
// Accept-Language list; unsupported languages fall back to DefaultLanguage.
func WithLanguage(lang string) CatalogOption {
	return func(o *catalogOptions) { o.lang = lang }
}

// WithLocalesDir overlays YAML or JSON locale files from a directory on disk
// over the bundled wording.
func WithLocalesDir(dir string) CatalogOption {
	return func(o *catalogOptions) { o.localesDir = dir }
}

// WithCatalogLogger sets the logger used while loading and for missing messages.
func WithCatalogLogger(l *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewCatalog loads the bundled locales, applies the optional override
// directory and selects a language. Every key in Keys must resolve in the
// selected language.
func NewCatalog(ctx context.Context, opts ...CatalogOption) (*Catalog, error) {
	o := catalogOptions{
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	adapters := []i18n.TranslationAdapter{i18n.NewFSAdapter(locales, "locales")}
	if o.localesDir != "" {
		adapters = append(adapters, i18n.NewFSAdapter(os.DirFS(o.localesDir), "."))
	}

	tr, err := i18n.NewTranslator(ctx, adapters,
		i18n.WithDefaultLanguage(DefaultLanguage),
		i18n.WithLogger(o.logger),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, errors.Join(ErrLoadingCatalog, err)
	}

	lang := tr.Match(o.lang)
	missing := lo.Filter(Keys, func(key Key, _ int) bool {
		return !tr.HasTranslation(lang, key)
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: %v", ErrIncompleteCatalog, lang, missing)
	}

	o.logger.DebugContext(ctx, "error catalog loaded",
		logger.Component("forms"),
		logger.Language(lang),
		slog.Int("messages", len(Keys)),
	)

	return &Catalog{translator: tr, lang: lang}, nil
}

// Language returns the language the catalog renders messages in.
func (c *Catalog) Language() string {
	return c.lang
}

// Message renders a catalog entry. args are placeholder name, value pairs.
func (c *Catalog) Message(key Key, args ...string) string {
	return c.translator.T(c.lang, key, args...)
}

// render turns a failed rule into its catalog message.
func (c *Catalog) render(verr validator.ValidationError) string {
	return c.Message(verr.TranslationKey, verr.TranslationArgs()...)
}

// check returns the message of the first failing rule or "" when all pass.
func (c *Catalog) check(rules ...validator.Rule) string {
	verr, failed := validator.First(rules...)
	if !failed {
		return ""
	}
	return c.render(verr)
}
