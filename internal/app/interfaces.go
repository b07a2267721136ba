package app

import (
	"github.com/tindahanph/bottleshop/config"
	"github.com/tindahanph/bottleshop/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the storage facade
type StoreProvider interface {
	Store() store.Store
}
