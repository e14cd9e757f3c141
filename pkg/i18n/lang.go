package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is configured.
const DefaultLanguage = "en"

// MatchLanguage picks the supported language closest to the requested one.
// requested may be a single tag ("ru-RU") or an Accept-Language list
// ("ru-RU,ru;q=0.9,en;q=0.8"). Returns defaultLang when nothing matches
// with at least high confidence.
func MatchLanguage(requested string, supported []string, defaultLang string) string {
	if requested == "" || len(supported) == 0 {
		return defaultLang
	}

	wanted, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(wanted) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence < language.High {
		return defaultLang
	}
	return supported[idx]
}

// Match is MatchLanguage over the translator's own languages,
// falling back to its default language.
func (t *Translator) Match(requested string) string {
	return MatchLanguage(requested, t.SupportedLanguages(), t.defaultLang)
}
