package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/config"
	"github.com/localnerve/pantrydb/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthHandler handles /health
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *zap.Logger
}

// Health handles GET /health
// @Summary Service health
// @Description Database reachability and pool status
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.DB, h.Log)

	status := fiber.StatusOK
	if !result.Healthy() {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(result)
}
