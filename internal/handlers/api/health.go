package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/jonboulle/clockwork"

	"bizpulse/internal/models"
)

// HealthHandler reports service health.
type HealthHandler struct {
	version string
	clock   clockwork.Clock
}

// NewHealthHandler creates a new API health handler. A nil clock selects the
// real clock.
func NewHealthHandler(version string, clock clockwork.Clock) *HealthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthHandler{version: version, clock: clock}
}

// Health returns the service status, version and current time.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: h.clock.Now(),
	})
}
