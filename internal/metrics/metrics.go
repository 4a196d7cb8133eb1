// Package metrics exposes engine activity and resource link health to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"bizpulse/internal/models"
)

var linkUpDesc = prometheus.NewDesc(
	"bizpulse_resource_link_up",
	"Whether the last link check of a catalog resource succeeded (1) or not (0)",
	[]string{"topic", "resource", "status"},
	nil,
)

// StatusSource supplies the latest link check results.
type StatusSource interface {
	Statuses() []models.LinkStatus
}

// LinkCollector is a custom Prometheus collector that reads link check
// results on each scrape.
type LinkCollector struct {
	source StatusSource
}

// NewLinkCollector creates a collector over source.
func NewLinkCollector(source StatusSource) *LinkCollector {
	return &LinkCollector{source: source}
}

// Describe sends the metric descriptor to the channel.
func (c *LinkCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- linkUpDesc
}

// Collect emits one gauge per checked resource.
func (c *LinkCollector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.source.Statuses() {
		up := 0.0
		if s.IsUp() {
			up = 1
		}
		ch <- prometheus.MustNewConstMetric(
			linkUpDesc,
			prometheus.GaugeValue,
			up,
			string(s.Topic),
			s.Name,
			s.Status,
		)
	}
}

// Metrics holds the service counters. A nil *Metrics records nothing.
type Metrics struct {
	topics          *prometheus.CounterVec
	recommendations *prometheus.CounterVec
	sentiments      *prometheus.CounterVec
}

// New creates the counters and registers them, plus a link collector when
// links is non-nil, with reg.
func New(reg prometheus.Registerer, links StatusSource) *Metrics {
	m := &Metrics{
		topics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizpulse_topics_extracted_total",
			Help: "Topics extracted from analyzed text, by topic",
		}, []string{"topic"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizpulse_recommendations_total",
			Help: "Resources returned as recommendations, by topic",
		}, []string{"topic"}),
		sentiments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizpulse_sentiment_results_total",
			Help: "Sentiment classifications, by label",
		}, []string{"label"}),
	}

	reg.MustRegister(m.topics, m.recommendations, m.sentiments)
	if links != nil {
		reg.MustRegister(NewLinkCollector(links))
	}
	return m
}

// ObserveAnalysis counts one analyzed text.
func (m *Metrics) ObserveAnalysis(result models.SentimentResult, topics []models.TopicTag) {
	if m == nil {
		return
	}
	m.sentiments.WithLabelValues(result.Label).Inc()
	for _, t := range topics {
		m.topics.WithLabelValues(string(t)).Inc()
	}
}

// ObserveRecommendations counts returned recommendations.
func (m *Metrics) ObserveRecommendations(recs []models.RankedRecommendation) {
	if m == nil {
		return
	}
	for _, r := range recs {
		m.recommendations.WithLabelValues(string(r.Topic)).Inc()
	}
}
