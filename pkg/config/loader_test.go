package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rococo-gallery/forms/pkg/config"
)

type appConfig struct {
	Lang     string `env:"LANG_CODE" envDefault:"ru"`
	Verbose  bool   `env:"VERBOSE" envDefault:"false"`
	MaxItems int    `env:"MAX_ITEMS" envDefault:"10"`
}

type requiredConfig struct {
	Token string `env:"TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		var cfg appConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, appConfig{Lang: "ru", MaxItems: 10}, cfg)
	})

	t.Run("reads the given environment", func(t *testing.T) {
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"LANG_CODE": "en",
			"VERBOSE":   "true",
			"MAX_ITEMS": "25",
		}))
		require.NoError(t, err)
		assert.Equal(t, appConfig{Lang: "en", Verbose: true, MaxItems: 25}, cfg)
	})

	t.Run("reads the process environment", func(t *testing.T) {
		t.Setenv("LANG_CODE", "en")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.Lang)
	})

	t.Run("applies prefix", func(t *testing.T) {
		var cfg appConfig
		err := config.Load(&cfg,
			config.WithPrefix("ROCOCO_"),
			config.WithEnvironment(map[string]string{"ROCOCO_LANG_CODE": "en", "LANG_CODE": "de"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Lang)
	})

	t.Run("reports parse errors", func(t *testing.T) {
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"MAX_ITEMS": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("reports missing required values", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var cfg *appConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("loads explicit dotenv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("DOTENV_TOKEN=from-file\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("DOTENV_TOKEN") })

		var cfg struct {
			Token string `env:"DOTENV_TOKEN"`
		}
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, "from-file", cfg.Token)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"TOKEN": "x"}))
	})
}
