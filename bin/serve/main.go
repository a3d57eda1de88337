package main

import (
	"log/slog"
	"os"

	"glamhaven/pkg/config"
	"glamhaven/pkg/logging"
	"glamhaven/pkg/server"
	"glamhaven/pkg/services"
)

func main() {
	// Load configuration
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("Failed to read .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Initialize services
	services.InitService(cfg)

	// Start server
	cfg.PrintServerStartMessage()
	if err := server.Run(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
