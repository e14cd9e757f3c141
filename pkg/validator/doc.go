// Package validator provides small, composable validation rules for form input.
//
// A Rule couples a boolean Check with translation-friendly error metadata. Rules
// are evaluated either with Apply, which aggregates every failure into a
// ValidationErrors slice that satisfies the error interface, or with First, which
// stops at the first failing rule and is the natural fit for per-field messages
// where only one message is shown at a time.
//
// String rules take *string so that an absent value is distinguishable from an
// empty one. Lengths are counted in UTF-16 code units, not bytes.
//
// # Usage
//
//	verr, failed := validator.First(
//	    validator.MinLen("title", title, 3).WithKey("errors.title.min"),
//	    validator.MaxLen("title", title, 255).WithKey("errors.title.max"),
//	)
//	if failed {
//	    msg := translator.T(lang, verr.TranslationKey, verr.TranslationArgs()...)
//	}
//
// File rules (AllowedMIMEType, MaxFileSize) operate on already extracted metadata,
// see package file for detecting it from uploads.
//
// # Error Handling
//
// ValidationErrors implements Error and Is; errors.Is(err, ErrValidationFailed)
// reports whether err came from Apply.
package validator
