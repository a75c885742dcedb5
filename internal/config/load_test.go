package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REPLICATE_API_TOKEN", "r8_test_token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "r8_test_token", cfg.Replicate.APIToken)
	assert.Empty(t, cfg.Replicate.Model, "model defaults at the adapter, not here")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Generation.MaxRetries)
	assert.Equal(t, time.Second, cfg.Generation.BaseDelay)
	assert.Equal(t, "generated_images", cfg.Storage.OutputDir)
	assert.Equal(t, uint64(10*1024*1024), cfg.Storage.MinFreeBytes)
	assert.Equal(t, 30*time.Second, cfg.Storage.DownloadTimeout)
}

func TestLoadMissingTokenFails(t *testing.T) {
	t.Setenv("REPLICATE_API_TOKEN", "")
	t.Setenv("IMAGEGEN_REPLICATE_API_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("IMAGEGEN_REPLICATE_API_TOKEN", "r8_prefixed_token")
	t.Setenv("IMAGEGEN_REPLICATE_MODEL", "owner/custom:abc123")
	t.Setenv("IMAGEGEN_GENERATION_MAX_RETRIES", "5")
	t.Setenv("IMAGEGEN_GENERATION_BASE_DELAY", "250ms")
	t.Setenv("IMAGEGEN_LOG_FORMAT", "pretty")
	t.Setenv("OUTPUT_DIR", "render_output")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "r8_prefixed_token", cfg.Replicate.APIToken)
	assert.Equal(t, "owner/custom:abc123", cfg.Replicate.Model)
	assert.Equal(t, 5, cfg.Generation.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Generation.BaseDelay)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, "render_output", cfg.Storage.OutputDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("REPLICATE_API_TOKEN", "r8_test_token")
	t.Setenv("IMAGEGEN_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
