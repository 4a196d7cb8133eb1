package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"bizpulse/internal/models"
)

type staticStatuses []models.LinkStatus

func (s staticStatuses) Statuses() []models.LinkStatus { return s }

func TestLinkCollector(t *testing.T) {
	c := NewLinkCollector(staticStatuses{
		{Topic: models.TopicPermits, Name: "Online Permit Portal", Status: models.LinkHealthy},
		{Topic: models.TopicFunding, Name: "Emergency Relief Fund", Status: models.LinkUnknown},
	})

	want := `
# HELP bizpulse_resource_link_up Whether the last link check of a catalog resource succeeded (1) or not (0)
# TYPE bizpulse_resource_link_up gauge
bizpulse_resource_link_up{resource="Emergency Relief Fund",status="unknown",topic="funding"} 0
bizpulse_resource_link_up{resource="Online Permit Portal",status="healthy",topic="permits"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(want)); err != nil {
		t.Error(err)
	}
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, staticStatuses{})

	m.ObserveAnalysis(models.SentimentResult{Label: models.SentimentPositive}, []models.TopicTag{models.TopicPermits, models.TopicSupport})
	m.ObserveAnalysis(models.SentimentResult{Label: models.SentimentPositive}, []models.TopicTag{models.TopicPermits})
	m.ObserveRecommendations([]models.RankedRecommendation{{Topic: models.TopicPermits}, {Topic: models.TopicFunding}})

	if got := testutil.ToFloat64(m.topics.WithLabelValues("permits")); got != 2 {
		t.Errorf("topics{permits} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.sentiments.WithLabelValues("positive")); got != 2 {
		t.Errorf("sentiments{positive} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.recommendations.WithLabelValues("funding")); got != 1 {
		t.Errorf("recommendations{funding} = %v, want 1", got)
	}
	if n, err := testutil.GatherAndCount(reg, "bizpulse_topics_extracted_total"); err != nil || n != 2 {
		t.Errorf("GatherAndCount() = %d, %v, want 2 series", n, err)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveAnalysis(models.SentimentResult{Label: models.SentimentNeutral}, nil)
	m.ObserveRecommendations(nil)
}
