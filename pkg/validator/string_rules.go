package validator

import (
	"fmt"
	"unicode/utf16"
)

// Length returns the length of s in UTF-16 code units, the unit browsers and
// the gateway count form limits in. Characters outside the BMP count as two;
// combining marks count on their own.
func Length(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// Present validates that an optional string is set and non-empty.
// Whitespace counts as content.
func Present(field string, value *string) Rule {
	return Rule{
		Check: func() bool {
			return value != nil && *value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen validates that an optional string holds at least min characters.
// An absent value never satisfies the minimum.
func MinLen(field string, value *string, min int) Rule {
	return Rule{
		Check: func() bool {
			return value != nil && Length(*value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen validates that an optional string holds at most max characters.
// An absent value is treated as empty.
func MaxLen(field string, value *string, max int) Rule {
	return Rule{
		Check: func() bool {
			return value == nil || Length(*value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
