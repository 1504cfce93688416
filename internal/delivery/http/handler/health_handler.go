package handler

import (
	"context"
	"time"

	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - зависимость с проверкой доступности
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка зависимостей сервиса
type HealthHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

func NewHealthHandler(checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Check godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string, len(h.checks)),
	}
	status := fiber.StatusOK

	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			resp.Services[name] = "unavailable"
			resp.Status = "degraded"
			status = fiber.StatusServiceUnavailable
			continue
		}
		resp.Services[name] = "ok"
	}

	return c.Status(status).JSON(resp)
}
