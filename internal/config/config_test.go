package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/wirecrm/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
db:
  path: /tmp/file.db
ui:
  locale: de-DE
`), 0o644))

	t.Setenv("WIRECRM_CONFIG_PATH", path)
	t.Setenv("WIRECRM_DB_PATH", "/tmp/env.db")
	t.Setenv("WIRECRM_TRANSPORT_MODE", "stdio")
	t.Setenv("WIRECRM_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/env.db", cfg.DB.Path)
	require.Equal(t, "de-DE", cfg.UI.Locale)
	require.Equal(t, config.ModeStdio, cfg.Transport.Mode)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WIRECRM_SERVER_PORT", "not-a-port")
	_, err := config.Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Transport.Mode = "grpc"
	cfg.Server.Port = 0
	err := cfg.Validate()
	require.ErrorContains(t, err, "invalid transport mode")
	require.ErrorContains(t, err, "invalid server port")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("WIRECRM_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := config.Load()
	require.ErrorContains(t, err, "read config file")
}
