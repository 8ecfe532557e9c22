package services

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/pantrydb/internal/config"
	"github.com/localnerve/pantrydb/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck checks that the database host is reachable and the pool answers a ping
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: map[string]string{"database_type": cfg.DBType},
	}

	fail := func(state, key string, err error) {
		result.Status = "unhealthy"
		result.Database = state
		result.Details[key] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database %s: %v", state, err)
		log.Warn("Health check failed", zap.String("database", state), zap.Error(err))
	}

	if !cfg.IsSQLite() {
		if err := utils.PingDatabase(cfg.DBHost, cfg.DBPort); err != nil {
			fail("unreachable", "database_host_error", err)
			return result
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		fail("error", "database_error", err)
		return result
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		fail("unreachable", "database_ping_error", err)
		return result
	}

	result.Database = "ok"
	result.Details["database_name"] = cfg.DBDatabase
	stats := sqlDB.Stats()
	result.Details["open_connections"] = fmt.Sprintf("%d", stats.OpenConnections)
	result.Details["in_use"] = fmt.Sprintf("%d", stats.InUse)

	log.Debug("Health check passed")
	return result
}
