package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/config"
	"github.com/sangkips/sales-engine-api/internal/infrastructure/database"
	"github.com/sangkips/sales-engine-api/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds what every command needs
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

// newApp loads configuration, builds the logger and connects to the database
func newApp() (*app, error) {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.App.Env,
		ServiceName: cfg.App.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(log)

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.log.Sync()
}
