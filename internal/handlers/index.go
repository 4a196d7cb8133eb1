// Package handlers serves the HTML landing page and Kubernetes probes.
package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// Endpoint describes one API route on the landing page.
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// Endpoints lists the public API in display order.
var Endpoints = []Endpoint{
	{"POST", "/api/analyze", "Analyze sentiment of text"},
	{"POST", "/api/recommend", "Get resource recommendations"},
	{"GET", "/api/posts", "Get social media posts"},
	{"GET", "/api/statistics", "Get sentiment statistics"},
	{"GET", "/api/topics", "List topics and their trigger keywords"},
	{"GET", "/api/resources/:topic", "List the resources of a topic"},
	{"GET", "/api/resources/health", "Resource link check results"},
	{"GET", "/api/health", "Health check"},
}

// IndexHandler renders the landing page.
type IndexHandler struct {
	title   string
	baseURL string
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(title, baseURL string) *IndexHandler {
	return &IndexHandler{title: title, baseURL: baseURL}
}

// Index renders the endpoint list with a curl example.
func (h *IndexHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":     h.title,
		"BaseURL":   h.baseURL,
		"Endpoints": Endpoints,
	})
}
