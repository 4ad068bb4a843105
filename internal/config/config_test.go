package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lakaytv")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/lakaytv", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadCORSOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lakaytv")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("database_url: postgres://db/lakaytv\nserver_port: \"9090\"\ncors_origins:\n  - https://a.example.com\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/lakaytv", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, []string{"https://a.example.com"}, cfg.CORSOrigins)
}

func TestLoadFromFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: postgres://db/lakaytv\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyEnvFile(t *testing.T) {
	t.Setenv("LAKAYTV_TEST_A", "")
	os.Unsetenv("LAKAYTV_TEST_A")
	t.Setenv("LAKAYTV_TEST_B", "keep")

	applyEnvFile([]byte("# comment\nLAKAYTV_TEST_A=\"hello\"\nLAKAYTV_TEST_B=overwritten\nnot-a-pair\n"))

	assert.Equal(t, "hello", os.Getenv("LAKAYTV_TEST_A"))
	// Already-set variables are not overwritten.
	assert.Equal(t, "keep", os.Getenv("LAKAYTV_TEST_B"))
}
