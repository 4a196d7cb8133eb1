package api

import (
	"github.com/gofiber/fiber/v3"

	"bizpulse/internal/models"
	"bizpulse/internal/recommend"
)

// LinkStatuses supplies link check results.
type LinkStatuses interface {
	Statuses() []models.LinkStatus
}

// CatalogHandler exposes the taxonomy, the resource catalog and link health.
type CatalogHandler struct {
	engine *recommend.Engine
	links  LinkStatuses
}

// NewCatalogHandler creates a new catalog handler. links is nil when the
// link checker is disabled.
func NewCatalogHandler(engine *recommend.Engine, links LinkStatuses) *CatalogHandler {
	return &CatalogHandler{engine: engine, links: links}
}

// Topics returns the topic table in match order.
func (h *CatalogHandler) Topics(c fiber.Ctx) error {
	entries := h.engine.Table().Entries()
	out := make([]models.TopicEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.TopicEntry{Name: e.Topic, Keywords: e.Keywords})
	}

	return c.JSON(models.TopicsResponse{
		Topics:    out,
		Fallback:  h.engine.Fallback(),
		MatchMode: string(h.engine.Mode()),
	})
}

// Resources returns the catalog bucket of one topic.
func (h *CatalogHandler) Resources(c fiber.Ctx) error {
	topic := models.TopicTag(c.Params("topic"))
	if !h.engine.Catalog().Has(topic) {
		return jsonError(c, fiber.StatusNotFound, "unknown topic")
	}

	return c.JSON(models.ResourcesResponse{
		Topic:     topic,
		Resources: h.engine.Catalog().Lookup(topic),
	})
}

// LinkHealth returns the latest link check results.
func (h *CatalogHandler) LinkHealth(c fiber.Ctx) error {
	resp := models.LinkHealthResponse{Statuses: []models.LinkStatus{}}
	if h.links != nil {
		resp.Enabled = true
		resp.Statuses = h.links.Statuses()
	}
	return c.JSON(resp)
}
