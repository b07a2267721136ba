package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tindahanph/bottleshop/config"
	"github.com/tindahanph/bottleshop/internal/app"
	"github.com/tindahanph/bottleshop/internal/webserver"
)

var configFile = flag.String("c", "bottleshop.yml", "config file path")

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init application: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zap.L().Sync() }()

	server := webserver.NewWebServer(cfg, application.Store())

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("web server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown error", zap.Error(err))
	}
}
