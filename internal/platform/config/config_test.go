package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-intake/internal/platform/logger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigFile, "")
	for _, b := range envBindings {
		t.Setenv(b.env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "pet-intake", cfg.Log.App)
	assert.Empty(t, cfg.Directory.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Directory.Timeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "petintake.yaml")
	doc := []byte(`port: "9090"
log:
  level: debug
  format: json
directory:
  base_url: http://directory.local
  api_key: from-file
  timeout: 3
`)
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	t.Setenv("DIRECTORY_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://directory.local", cfg.Directory.BaseURL)
	assert.Equal(t, "from-env", cfg.Directory.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Directory.Timeout)

	opts := cfg.LoggerOptions()
	assert.Equal(t, logger.Debug, opts.Level)
	assert.Equal(t, logger.FormatJSON, opts.Format)
}

func TestLoad_ConfigFromEnvVar(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  dsn: postgres://x\n"), 0o600))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://x", cfg.DBDSN)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("DIRECTORY_TIMEOUT", "soon")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidTimeout)
}

func TestParseTimeout(t *testing.T) {
	cases := map[string]time.Duration{
		"":      0,
		"5":     5 * time.Second,
		"250ms": 250 * time.Millisecond,
		" 2s ":  2 * time.Second,
	}
	for in, want := range cases {
		got, err := parseTimeout(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"-1", "-1s", "x"} {
		_, err := parseTimeout(in)
		assert.ErrorIs(t, err, ErrInvalidTimeout, in)
	}
}
