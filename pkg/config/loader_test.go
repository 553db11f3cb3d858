package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/config"
)

type serverConfig struct {
	Addr    string        `env:"ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Debug   bool          `env:"DEBUG"`
}

type requiredConfig struct {
	Secret string `env:"FORMTEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load[serverConfig](config.WithPrefix("FORMTEST_DEFAULTS_"))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.False(t, cfg.Debug)
	})

	t.Run("prefixed values", func(t *testing.T) {
		t.Setenv("FORMTEST_ADDR", ":9000")
		t.Setenv("FORMTEST_DEBUG", "true")

		cfg, err := config.Load[serverConfig](config.WithPrefix("FORMTEST_"))
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.True(t, cfg.Debug)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Setenv("FORMTEST_BAD_TIMEOUT", "soon")

		_, err := config.Load[serverConfig](config.WithPrefix("FORMTEST_BAD_"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required missing", func(t *testing.T) {
		_, err := config.Load[requiredConfig]()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad[requiredConfig]() })
	})

	t.Run("env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("FORMTEST_SECRET=from-file\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("FORMTEST_SECRET") })

		cfg, err := config.Load[requiredConfig](config.WithEnvFiles(path))
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Secret)
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := config.Load[serverConfig](config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
		assert.ErrorIs(t, err, config.ErrDotenv)
	})
}
