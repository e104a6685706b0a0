package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.True(t, cfg.Server.Playground)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("BLOGQL_SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("BLOGQL_STORE_SEED", "false")
	t.Setenv("BLOGQL_LOG_LEVEL", "debug")

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Address)
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blogql.yaml")
	err := os.WriteFile(file, []byte("server:\n  address: 127.0.0.1:7070\n  playground: false\nmetrics:\n  enabled: false\n"), 0o600)
	require.NoError(t, err)

	v, err := New(file)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7070", cfg.Server.Address)
	assert.False(t, cfg.Server.Playground)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Store.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyAddress(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	v.Set("server.address", "")

	_, err = Load(v)
	assert.ErrorContains(t, err, "server.address is required")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{name: "json", cfg: LogConfig{Level: "info", Format: "json"}},
		{name: "console", cfg: LogConfig{Level: "debug", Format: "console"}},
		{name: "bad level", cfg: LogConfig{Level: "loud", Format: "json"}, wantErr: true},
		{name: "bad format", cfg: LogConfig{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}
