package api

import (
	"github.com/gofiber/fiber/v3"

	"bizpulse/internal/metrics"
	"bizpulse/internal/models"
	"bizpulse/internal/validation"
)

// AnalyzeHandler serves text analysis and resource recommendations.
type AnalyzeHandler struct {
	engine   Engine
	analyzer Analyzer
	metrics  *metrics.Metrics
}

// NewAnalyzeHandler creates a new analyze handler. m may be nil.
func NewAnalyzeHandler(engine Engine, analyzer Analyzer, m *metrics.Metrics) *AnalyzeHandler {
	return &AnalyzeHandler{engine: engine, analyzer: analyzer, metrics: m}
}

// Analyze returns the sentiment and topics of the posted text.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var body models.AnalyzeRequest
	if err := bindJSON(c, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateText(body.Text, "text"); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result := h.analyzer.Analyze(body.Text)
	topics := h.engine.ExtractTopics(body.Text)
	h.metrics.ObserveAnalysis(result, topics)

	return c.JSON(models.AnalyzeResponse{
		Text:      body.Text,
		Sentiment: result,
		Topics:    topics,
	})
}

// Recommend returns up to three catalog resources matching the posted query.
func (h *AnalyzeHandler) Recommend(c fiber.Ctx) error {
	var body models.RecommendRequest
	if err := bindJSON(c, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateText(body.Query, "query"); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result := h.analyzer.Analyze(body.Query)
	topics := h.engine.ExtractTopics(body.Query)
	recs := h.engine.RecommendResources(body.Query, topics)
	h.metrics.ObserveAnalysis(result, topics)
	h.metrics.ObserveRecommendations(recs)

	return c.JSON(models.RecommendResponse{
		Query:           body.Query,
		Sentiment:       result,
		Topics:          topics,
		Recommendations: recs,
	})
}
