package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides_APIKey(t *testing.T) {
	t.Run("API_KEY sets key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "legacy-key")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "legacy-key", cfg.Gemini.APIKey)
	})

	t.Run("GEMINI_API_KEY wins over API_KEY", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "legacy-key")
		t.Setenv("GEMINI_API_KEY", "gemini-key")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "gemini-key", cfg.Gemini.APIKey)
	})

	t.Run("env overrides file value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "env-key")

		cfg := &Config{Gemini: GeminiConfig{APIKey: "file-key"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	})

	t.Run("empty env keeps file value", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Gemini: GeminiConfig{APIKey: "file-key"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	})
}

func TestEnvOverrides_Settings(t *testing.T) {
	clearEnv(t)
	t.Setenv("VCN_THEME", "dark")
	t.Setenv("VCN_OUTPUT_DIR", "/tmp/media")
	t.Setenv("VCN_LOG_LEVEL", "debug")
	t.Setenv("VCN_DEBUG", "1")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "/tmp/media", cfg.Studio.OutputDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.DebugMode)
}

func TestEnvOverrides_Location(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VCN_LOCATION", "51.5, -0.12")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		require.NotNil(t, cfg.Gemini.Latitude)
		require.NotNil(t, cfg.Gemini.Longitude)
		assert.InDelta(t, 51.5, *cfg.Gemini.Latitude, 1e-9)
		assert.InDelta(t, -0.12, *cfg.Gemini.Longitude, 1e-9)
	})

	t.Run("malformed pair ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VCN_LOCATION", "north,west")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Nil(t, cfg.Gemini.Latitude)
		assert.Nil(t, cfg.Gemini.Longitude)
	})
}
