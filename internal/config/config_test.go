package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	dir := setHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".agent", cfg.AgentDir)
	assert.Equal(t, "mit", cfg.DefaultLicense)
	assert.Equal(t, filepath.Join(dir, "presets"), cfg.PresetsDir)
	assert.Contains(t, cfg.CriticalFiles, ".env")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := setHome(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := "agent_dir: .brain\ndefault_license: apache\nauthor: Ada\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".brain", cfg.AgentDir)
	assert.Equal(t, "apache", cfg.DefaultLicense)
	assert.Equal(t, "Ada", cfg.Author)
	// untouched keys keep their defaults
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverlay(t *testing.T) {
	dir := setHome(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ARCHITECT_AUTHOR=FromDotenv\n"), 0o600))
	t.Setenv("ARCHITECT_LICENSE", "gpl")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "FromDotenv", cfg.Author)
	assert.Equal(t, "gpl", cfg.DefaultLicense)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := setHome(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("agent_dir: [oops"), 0o644))

	_, err := Load()
	assert.ErrorContains(t, err, "invalid YAML")
}

func TestSaveThenLoad(t *testing.T) {
	setHome(t)
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.Author = "Grace"
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Author)
}
