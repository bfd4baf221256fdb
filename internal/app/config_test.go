package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.WarehouseAPIURL)
	assert.Equal(t, "http://127.0.0.1:3001", cfg.TipsAPIURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("WAREHOUSE_API_URL", "http://warehouse.internal:9000")
	t.Setenv("API_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "http://warehouse.internal:9000", cfg.WarehouseAPIURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
}

func TestIsProductionNilReceiver(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.IsProduction())
}
