package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form records the form name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Fields records the names of invalid fields under the key "invalid_fields".
func Fields(names []string) slog.Attr {
	return slog.Any("invalid_fields", names)
}

// Language records the message language under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}
