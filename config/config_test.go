package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindahanph/bottleshop/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Web.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "bottleshop", cfg.Database.Name)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bottleshop.yml")
	data := []byte(`
web:
  port: 9001
storage:
  backend: postgres
database:
  host: db.internal
  name: shop
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Web.Port)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Backend)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "shop", cfg.Database.Name)
	// untouched values keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Web.Host)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("BOTTLESHOP_WEB_PORT", "9100")
	t.Setenv("BOTTLESHOP_STORAGE_BACKEND", "postgres")
	t.Setenv("BOTTLESHOP_DB_PASSWD", "secret")
	t.Setenv("BOTTLESHOP_DB_DEBUG", "true")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Web.Port)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Backend)
	assert.Equal(t, "secret", cfg.Database.Passwd)
	assert.True(t, cfg.Database.Debug)
}

func TestDSN(t *testing.T) {
	cfg := config.DefaultConfig()
	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "host=127.0.0.1")
	assert.Contains(t, dsn, "dbname=bottleshop")
	assert.Contains(t, dsn, "sslmode=disable")
}
