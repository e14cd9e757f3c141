package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/rococo-gallery/forms/modules/forms"
	"github.com/rococo-gallery/forms/pkg/config"
	"github.com/rococo-gallery/forms/pkg/logger"
)

var (
	ErrInvalidForm     = errors.New("form is invalid")
	ErrMissingArgument = errors.New("missing argument")
)

// appConfig is read from the environment and an optional .env file.
type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Service    string `env:"SERVICE_NAME" envDefault:"rococo-forms"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	Lang       string `env:"ROCOCO_LANG" envDefault:"ru"`
	LocalesDir string `env:"ROCOCO_LOCALES_DIR"`
}

type commandKey struct{}

// app carries state shared by the subcommands. It is populated in Before.
type app struct {
	cfg    appConfig
	log    *slog.Logger
	forms  *forms.Forms
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}

	cmd := &cli.Command{
		Name:      "rococo-forms",
		Usage:     "Validate rococo gallery forms and pagination envelopes",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Usage: "message language, overrides ROCOCO_LANG",
			},
			&cli.StringFlag{
				Name:  "locales-dir",
				Usage: "directory with locale overrides, overrides ROCOCO_LOCALES_DIR",
			},
		},
		Before: a.setup,
		After: func(ctx context.Context, c *cli.Command) error {
			if a.forms != nil {
				return a.forms.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			a.cmdValidate(),
			a.cmdPage(),
		},
	}

	err := cmd.Run(ctx, args)
	if err != nil && a.log != nil && !errors.Is(err, ErrInvalidForm) {
		a.log.ErrorContext(ctx, "command failed", logger.Error(err))
	}
	return err
}

func (a *app) setup(ctx context.Context, c *cli.Command) (context.Context, error) {
	if err := config.Load(&a.cfg); err != nil {
		return ctx, err
	}
	if c.IsSet("lang") {
		a.cfg.Lang = c.String("lang")
	}
	if c.IsSet("locales-dir") {
		a.cfg.LocalesDir = c.String("locales-dir")
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.Service),
		logger.WithOutput(a.stderr),
		logger.WithContextValue("command", commandKey{}),
	}
	if a.cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(a.cfg.LogLevel))
	}
	switch f := logger.Format(a.cfg.LogFormat); f {
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	case "":
	default:
		return ctx, fmt.Errorf("%w: unknown LOG_FORMAT %q", config.ErrParsingConfig, a.cfg.LogFormat)
	}
	a.log = logger.New(opts...)

	catalog, err := forms.NewCatalog(ctx,
		forms.WithLanguage(a.cfg.Lang),
		forms.WithLocalesDir(a.cfg.LocalesDir),
		forms.WithCatalogLogger(a.log),
	)
	if err != nil {
		return ctx, err
	}

	a.forms, err = forms.New(catalog, forms.WithLogger(a.log))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

// withCommand tags log records emitted under ctx with the command name.
func withCommand(ctx context.Context, c *cli.Command) context.Context {
	return context.WithValue(ctx, commandKey{}, c.FullName())
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
