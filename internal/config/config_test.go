package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"SUPERTRUNFO_LOG_LEVEL", "SUPERTRUNFO_FORMAT", "SUPERTRUNFO_LOCALE"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.Format)
		assert.Empty(t, cfg.Locale)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SUPERTRUNFO_LOG_LEVEL", "debug")
		t.Setenv("SUPERTRUNFO_FORMAT", "json")
		t.Setenv("SUPERTRUNFO_LOCALE", "pt-BR")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", Format: "json", Locale: "pt-BR"}, cfg)
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", Format: "yaml"}
	require.NoError(t, valid.Validate())

	cases := map[string]Config{
		"log level": {LogLevel: "trace", Format: "text"},
		"format":    {LogLevel: "warn", Format: "xml"},
		"locale":    {LogLevel: "warn", Format: "text", Locale: "not a tag"},
		"empty":     {},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Validate())
		})
	}
}
