package app

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tindahanph/bottleshop/config"
	"github.com/tindahanph/bottleshop/internal/store"
	"github.com/tindahanph/bottleshop/internal/store/gormstore"
	"github.com/tindahanph/bottleshop/internal/store/memstore"
)

// Application owns the process-wide resources: logger, the storage
// facade, and (for the postgres backend) the pooled database handle.
// Handlers receive the store through injection rather than globals.
type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	store     store.Store
}

// Ensure Application implements all provider interfaces
var (
	_ ConfigProvider = (*Application)(nil)
	_ StoreProvider  = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() store.Store {
	return a.store
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// OverrideStore replaces the storage facade (used in tests).
func (a *Application) OverrideStore(st store.Store) {
	a.store = st
}

// Init sets up logging and the configured storage backend.
func (a *Application) Init() error {
	a.initLogger()

	cfg := a.appConfig
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		a.store = memstore.New()
		zap.L().Info("storage backend ready", zap.String("backend", config.StorageMemory))
	case config.StoragePostgres:
		db, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		a.gormDB = db
		gs := gormstore.New(db)
		if err := gs.Bootstrap(); err != nil {
			return err
		}
		a.store = gs
		zap.L().Info("storage backend ready",
			zap.String("backend", config.StoragePostgres),
			zap.String("database", cfg.Database.Name))
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.MaxConn / 5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
