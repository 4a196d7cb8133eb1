package api

import (
	"github.com/gofiber/fiber/v3"

	"bizpulse/internal/models"
)

// Engine extracts topics and ranks resources.
type Engine interface {
	ExtractTopics(text string) []models.TopicTag
	RecommendResources(query string, topics []models.TopicTag) []models.RankedRecommendation
}

// Analyzer scores text sentiment.
type Analyzer interface {
	Analyze(text string) models.SentimentResult
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// bindJSON decodes the request body into v. An empty body leaves v zero.
func bindJSON(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.Bind().JSON(v)
}
