// Package logger builds *slog.Logger values from functional options.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rococo-forms"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.Debug("form validated", logger.Form("painting"), logger.Fields(invalid))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an empty
// attribute for a nil error, so it can be passed unconditionally.
package logger
