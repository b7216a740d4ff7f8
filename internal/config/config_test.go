package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks all config env vars for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FANTASYPROS_API_KEY", "FANTASYPROS_BASE_URL", "FPROS_MCP_HTTP_ADDR", "FPROS_MCP_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fantasypros-mcp.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FANTASYPROS_API_KEY", "k123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fantasypros-mcp", cfg.Server.Name)
	assert.Equal(t, "https://api.fantasypros.com/public/v2/json", cfg.API.BaseURL)
	assert.Equal(t, "k123", cfg.API.Key)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingKey(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FANTASYPROS_API_KEY")
}

func TestLoadMissingFileIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("FANTASYPROS_API_KEY", "k123")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "k123", cfg.API.Key)
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[server]
name = "fpros-dev"
http_addr = ":9999"

[api]
base_url = "https://example.test/v2"
key = "file-key"

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fpros-dev", cfg.Server.Name)
	assert.Equal(t, ":9999", cfg.Server.HTTPAddr)
	assert.Equal(t, "https://example.test/v2", cfg.API.BaseURL)
	assert.Equal(t, "file-key", cfg.API.Key)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[api]
key = "file-key"
base_url = "https://file.test"
`)
	t.Setenv("FANTASYPROS_API_KEY", "env-key")
	t.Setenv("FANTASYPROS_BASE_URL", "https://env.test")
	t.Setenv("FPROS_MCP_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.Key)
	assert.Equal(t, "https://env.test", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadBadTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `[server`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
