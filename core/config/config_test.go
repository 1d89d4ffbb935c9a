package config_test

import (
	"testing"

	"gamegestor/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "https://api.rawg.io/api", cfg.Rawg.BaseURL)
	assert.Empty(t, cfg.Rawg.APIKey)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "8085")
	t.Setenv("RAWG_API_KEY", "test-key")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8085", cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Rawg.APIKey)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}
