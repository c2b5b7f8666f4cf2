package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudchase/ollama-tool/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no config dir so that
// neither a stray .env nor a user config leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, env := range envKeys {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBase, cfg.APIBase)
	assert.Equal(t, DefaultOllamaBin, cfg.OllamaBin)
	assert.Equal(t, registry.DefaultCatalogURL, cfg.CatalogURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadEnvOverridesAPIBase(t *testing.T) {
	isolate(t)
	t.Setenv("OLLAMA_API_BASE", "http://gpu-box:11434")
	t.Setenv("OLLAMA_TIMEOUT", "30s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://gpu-box:11434", cfg.APIBase)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base: http://127.0.0.1:9999\nollama_bin: /opt/ollama/bin/ollama\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.APIBase)
	assert.Equal(t, "/opt/ollama/bin/ollama", cfg.OllamaBin)

	// Environment wins over the file.
	t.Setenv("OLLAMA_API_BASE", "http://override:1")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://override:1", cfg.APIBase)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OLLAMA_BIN=/usr/local/bin/ollama\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("OLLAMA_BIN") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/ollama", cfg.OllamaBin)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoadRejectsBadAPIBase(t *testing.T) {
	isolate(t)
	t.Setenv("OLLAMA_API_BASE", "localhost:11434")

	_, err := Load("")
	assert.ErrorContains(t, err, "not an absolute http(s) URL")
}
