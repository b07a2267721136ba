package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type StorageConfig struct {
	// Backend selects the storage facade implementation: memory | postgres.
	Backend string `yaml:"backend" json:"backend"`
}

type DatabaseConfig struct {
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	Name    string `yaml:"name" json:"name"`
	User    string `yaml:"user" json:"user"`
	Passwd  string `yaml:"passwd" json:"passwd"`
	MaxConn int    `yaml:"max_conn" json:"max_conn"`
	Debug   bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // development | production
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	Web      WebConfig      `yaml:"web" json:"web"`
	Storage  StorageConfig  `yaml:"storage" json:"storage"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	Logger   LoggerConfig   `yaml:"logger" json:"logger"`
}

// DSN renders the Postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Passwd, c.Name)
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Storage: StorageConfig{
			Backend: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			Name:    "bottleshop",
			User:    "postgres",
			Passwd:  "postgres",
			MaxConn: 50,
		},
		Logger: LoggerConfig{
			Mode:     "development",
			Filename: "bottleshop.log",
		},
	}
}

// LoadConfig reads the yaml file at path (if it exists) over the defaults,
// then applies BOTTLESHOP_* environment overrides.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	setString(&cfg.Web.Host, "BOTTLESHOP_WEB_HOST")
	setInt(&cfg.Web.Port, "BOTTLESHOP_WEB_PORT")
	setString(&cfg.Storage.Backend, "BOTTLESHOP_STORAGE_BACKEND")
	setString(&cfg.Database.Host, "BOTTLESHOP_DB_HOST")
	setInt(&cfg.Database.Port, "BOTTLESHOP_DB_PORT")
	setString(&cfg.Database.Name, "BOTTLESHOP_DB_NAME")
	setString(&cfg.Database.User, "BOTTLESHOP_DB_USER")
	setString(&cfg.Database.Passwd, "BOTTLESHOP_DB_PASSWD")
	setInt(&cfg.Database.MaxConn, "BOTTLESHOP_DB_MAX_CONN")
	setBool(&cfg.Database.Debug, "BOTTLESHOP_DB_DEBUG")
	setString(&cfg.Logger.Mode, "BOTTLESHOP_LOGGER_MODE")
	setBool(&cfg.Logger.FileEnable, "BOTTLESHOP_LOGGER_FILE_ENABLE")
	setString(&cfg.Logger.Filename, "BOTTLESHOP_LOGGER_FILENAME")
}

func setString(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = v
	}
}

func setInt(target *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = cast.ToInt(v)
	}
}

func setBool(target *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = cast.ToBool(v)
	}
}
