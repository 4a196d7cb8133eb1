package handlers

import (
	"github.com/gofiber/fiber/v3"

	"bizpulse/internal/catalog"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	catalog *catalog.Catalog
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(c *catalog.Catalog) *ProbeHandler {
	return &ProbeHandler{catalog: c}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once a non-empty catalog is loaded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.catalog == nil || h.catalog.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "catalog not loaded",
		})
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"resources": h.catalog.Len(),
	})
}
