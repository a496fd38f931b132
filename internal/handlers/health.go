package handlers

import (
	"context"
	"time"

	"github.com/dimitrije/teampulse-api/internal/logger"
	"github.com/dimitrije/teampulse-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db HealthChecker
}

func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports 503 when the database cannot be reached.
func (h *HealthHandler) Check(c *drift.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.Get().Warn().Err(err).Msg("health check: database unreachable")
		_ = c.JSON(503, dto.HealthResponse{Status: "unavailable", Database: "down"})
		return
	}

	_ = c.JSON(200, dto.HealthResponse{Status: "ok", Database: "up"})
}
