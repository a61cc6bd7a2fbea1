package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "placehub.db", cfg.Store.Path)
	assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
	assert.True(t, cfg.Seed.Demo)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_PATH", "/tmp/override.db")
	t.Setenv("SEED_DEMO", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
	assert.False(t, cfg.Seed.Demo)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"8081\"\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}
