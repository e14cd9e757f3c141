// Package i18n loads localized message catalogs and resolves dot-separated keys
// with "%{name}" placeholder substitution.
//
// Translations come from one or more TranslationAdapter values. FSAdapter reads
// YAML or JSON locale files from any fs.FS, so the same code serves an embedded
// catalog and an override directory on disk:
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx,
//	    []i18n.TranslationAdapter{
//	        i18n.NewFSAdapter(locales, "locales"),
//	        i18n.NewFSAdapter(os.DirFS(overrideDir), "."),
//	    },
//	    i18n.WithDefaultLanguage("ru"),
//	)
//
//	msg := tr.T(tr.Match("ru-RU"), "errors.title.min", "min", "3")
//
// Language negotiation uses golang.org/x/text/language matching, so regional
// variants ("ru-RU") and Accept-Language lists resolve to the closest supported
// base language.
package i18n
