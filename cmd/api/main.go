package main

import (
	"context"
	"log"

	"parcel-ledger/internal/app"
	"parcel-ledger/internal/core/config"
	"parcel-ledger/internal/core/logger"

	"go.uber.org/zap"
)

// @title Parcel Ledger API
// @version 1.0
// @description This API maintains a COD shipment ledger and enriches it from the Leopards Courier merchant API.
// @contact.name API Support
// @contact.email support@parcelledger.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("ledger", cfg.Ledger.Path()),
	)

	if err := app.New(cfg).Serve(context.Background()); err != nil {
		l.Fatal("Server failed", zap.Error(err))
	}
}
