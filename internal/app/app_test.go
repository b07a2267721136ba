package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindahanph/bottleshop/config"
	"github.com/tindahanph/bottleshop/internal/app"
)

func TestInitMemoryBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = config.StorageMemory

	application := app.NewApplication(cfg)
	require.NoError(t, application.Init())

	st := application.Store()
	require.NotNil(t, st)
	assert.Nil(t, application.DB(), "memory backend opens no database")

	products, err := st.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 16)
}

func TestInitUnknownBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = "cassandra"

	application := app.NewApplication(cfg)
	err := application.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}
