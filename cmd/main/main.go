package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/exporter/internal/config"
	"storefront/exporter/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file (default ./config.yaml)")
	pflag.Parse()

	log.Info("Starting storefront exporter...")

	// Load configuration using viper
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, keeping %s", cfg.Log.Level, log.GetLevel())
	} else {
		log.SetLevel(level)
	}
	log.Info("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize container with all dependencies
	app, err := container.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	// Run the application
	if err := app.Run(ctx); err != nil {
		log.Errorf("Application exited with error: %v", err)
		app.Close()
		os.Exit(1)
	}

	log.Info("Application finished successfully")
}
