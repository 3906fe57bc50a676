package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"household-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker is implemented by every ledger store
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler reports API and store liveness
type HealthCheckHandler struct {
	store   HealthChecker
	backend string
}

// NewHealthCheckHandler creates a health handler for store. backend names the
// store driver in the response.
func NewHealthCheckHandler(store HealthChecker, backend string) *HealthCheckHandler {
	return &HealthCheckHandler{store: store, backend: backend}
}

// HealthCheck pings the ledger store
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,backend=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger storage unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.HealthCheck(ctx); err != nil {
		slog.Warn("Health check failed",
			"trace_id", getTraceID(c),
			"backend", h.backend,
			"error", err,
		)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Ledger storage connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"backend": h.backend,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
