package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opcode-map/internal/dispatch"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opcodemap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	s, err := cfg.DispatchStrategy()
	require.NoError(t, err)
	assert.Equal(t, dispatch.AllMatches, s)
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := writeFile(t, "log:\n  level: debug\nstrategy: first\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)

	s, err := cfg.DispatchStrategy()
	require.NoError(t, err)
	assert.Equal(t, dispatch.FirstMatch, s)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = LoadConfig(writeFile(t, "log: [\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = LoadConfig(writeFile(t, "strategy: sometimes\n"))
	assert.ErrorIs(t, err, dispatch.ErrUnknownStrategy)
}

func TestLoadConfig_Shipped(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "configs", "opcodemap.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
