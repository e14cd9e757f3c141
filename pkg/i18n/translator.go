package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/rococo-gallery/forms/pkg/logger"
)

// Translator resolves dot-separated keys to localized strings.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator loading translations from the given adapters.
// Later adapters override keys of earlier ones at the top level of each language.
func NewTranslator(ctx context.Context, adapters []TranslationAdapter, options ...Option) (*Translator, error) {
	if len(adapters) == 0 {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         logger.Discard(),
		translations:   make(map[string]map[string]any),
	}

	for _, option := range options {
		option(t)
	}

	for _, adapter := range adapters {
		if adapter == nil {
			return nil, ErrNilAdapter
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		if err := validateTranslations(translations); err != nil {
			return nil, err
		}
		for lang, tr := range translations {
			if t.translations[lang] == nil {
				t.translations[lang] = make(map[string]any)
			}
			mergeNested(t.translations[lang], tr)
		}
	}

	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations for language %s", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// mergeNested copies src into dst, descending into maps present on both sides
// so an override file may replace a single nested key.
func mergeNested(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merged := maps.Clone(dstMap)
			mergeNested(merged, srcMap)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}

func (t *Translator) supportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when none is requested.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "errors.title.min" will traverse m["errors"] then ["title"] then ["min"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders from key, value pairs.
// Unknown placeholders are kept as is; an odd trailing argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates a key for the given language.
// It supports formatting with additional arguments provided as key-value pairs.
// An empty lang selects the default language.
//
// Example:
//
//	// With translation "errors.title.min": "Название не может быть короче %{min} символов"
//	msg := translator.T("ru", "errors.title.min", "min", "3")
//	// Returns: "Название не может быть короче 3 символов"
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if lang == "" {
		lang = t.defaultLang
	}

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return t.fallback(key, args)
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return t.fallback(key, args)
	}

	s, ok := val.(string)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
		}
		return t.fallback(key, args)
	}

	return sprintf(s, args)
}

func (t *Translator) fallback(key string, args []string) string {
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}
