package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/pantrydb/internal/config"
	"github.com/localnerve/pantrydb/internal/database"
	"github.com/localnerve/pantrydb/internal/logger"
	"github.com/localnerve/pantrydb/internal/server"
	"go.uber.org/zap"
)

// @title PantryDB API
// @version 1.0.0
// @description Household inventory, recipe and meal plan data service with multi-database support
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/pantrydb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:8111
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	// Connect to database
	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Run auto-migrations
	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			zlog.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	app := server.New(cfg, db, zlog, server.Options{Metrics: true, AccessLog: true})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		zlog.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	zlog.Info("Starting server", zap.String("port", cfg.Port), zap.String("database", cfg.DBType))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}

	zlog.Info("Server stopped")
}
