package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/plangen/internal/config"
	"github.com/aretw0/plangen/pkg/encoding"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := write(t, "plangen.yaml", "format: json\nmode: ltlf\n")

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "ltlf", cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, config.DefaultMaxSize, cfg.MaxSize)
}

func TestLoad_MaxSize(t *testing.T) {
	cfg, err := config.Load(write(t, "plangen.yaml", "max_size: \"8\"\n"), true)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxSize)

	_, err = config.Load(write(t, "plangen.yaml", "max_size: -1\n"), true)
	assert.ErrorContains(t, err, "max_size")
}

func TestLoad_WeaklyTypedListen(t *testing.T) {
	path := write(t, "plangen.yaml", "listen: 9090\nlog_level: debug\n")

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "plangen.json", `{"format": "yaml"}`)

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"unknown format", "format: dot\n", encoding.ErrUnknownFormat},
		{"unknown mode", "mode: ctl\n", encoding.ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(write(t, "plangen.yaml", tt.content), true)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := config.Load(write(t, "plangen.yaml", "colour: blue\n"), true)
	assert.ErrorContains(t, err, "colour")

	_, err = config.Load(write(t, "plangen.yaml", "log_level: loud\n"), true)
	assert.ErrorContains(t, err, "loud")

	_, err = config.Load(write(t, "plangen.yaml", "format: [\n"), true)
	assert.Error(t, err)
}
