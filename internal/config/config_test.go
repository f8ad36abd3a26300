package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	t.Setenv("OCTAV_API_KEY", "")
	path := writeConfig(t, `
api_key: test-key
addresses:
  - "0xabc"
  - "0xdef"
output_dir: out
rate_limit:
  requests_per_second: 8
  burst_size: 4
client:
  request_timeout: 10s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, []string{"0xabc", "0xdef"}, cfg.Addresses)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 8, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10*time.Second, cfg.Client.RequestTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
api_key: test-key
addresses: ["0xabc"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, ".taxport-cache", cfg.CachePath)
	assert.Equal(t, 4, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 2, cfg.RateLimit.BurstSize)
	assert.Equal(t, 30*time.Second, cfg.Client.RequestTimeout)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OCTAV_API_KEY", "")
	path := writeConfig(t, `
addresses: ["0xabc"]
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NoAddresses(t *testing.T) {
	path := writeConfig(t, `
api_key: test-key
addresses: []
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("OCTAV_API_KEY", "env-key")
	path := writeConfig(t, `
api_key: file-key
addresses: ["0xabc"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}
