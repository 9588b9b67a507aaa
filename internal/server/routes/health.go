package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

type schemaVersioner interface {
	SchemaVersion(ctx context.Context) (int64, error)
}

// HealthRoutes registers liveness and readiness probes.
type HealthRoutes struct {
	db schemaVersioner
}

// NewHealthRoutes constructs health routes backed by the database handle.
func NewHealthRoutes(db schemaVersioner) *HealthRoutes {
	return &HealthRoutes{db: db}
}

// RegisterRoutes registers health endpoints.
func (h *HealthRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.GET("/healthz", h.handleHealth)
}

func (h *HealthRoutes) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	version, err := h.db.SchemaVersion(ctx)
	if err != nil {
		c.Logger().Errorf("health check: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok", "schema_version": version})
}
