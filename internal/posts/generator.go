// Package posts generates mock social media posts, loads exported posts
// from disk and summarizes their sentiment.
package posts

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/oklog/ulid/v2"

	"bizpulse/internal/models"
)

// Inclusive generation bounds.
const (
	minHoursAgo = 1
	maxHoursAgo = 168
	minWeeks    = 2
	maxWeeks    = 8
	minAuthorID = 1000
	maxAuthorID = 9999
	maxEngage   = 100
)

var (
	labeledSources   = []string{"Twitter", "Reddit", "Facebook"}
	collectorSources = []string{"twitter", "reddit", "facebook"}
)

// Generator produces mock posts from templates. All randomness comes from
// the seeded source and all times from the clock, so two generators built
// with the same seed and clock produce the same posts. Safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	entropy *ulid.MonotonicEntropy
	clock   clockwork.Clock
}

// NewGenerator creates a generator. A nil clock selects the real clock.
func NewGenerator(seed int64, clock clockwork.Clock) *Generator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	rnd := rand.New(rand.NewSource(seed))
	return &Generator{
		rnd:     rnd,
		entropy: ulid.Monotonic(rnd, 0),
		clock:   clock,
	}
}

// Generate returns count labeled posts dated within the last week. The
// sentiment and topic come from the template, the score is left unset.
func (g *Generator) Generate(count int) []models.Post {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	out := make([]models.Post, 0, max(count, 0))
	for range max(count, 0) {
		tpl := LabeledTemplates[g.rnd.Intn(len(LabeledTemplates))]
		text := g.fill(tpl.Text)
		hoursAgo := g.between(minHoursAgo, maxHoursAgo)
		out = append(out, models.Post{
			ID:        g.newID(now),
			Text:      text,
			Source:    labeledSources[g.rnd.Intn(len(labeledSources))],
			CreatedAt: models.NewTimestamp(now.Add(-time.Duration(hoursAgo) * time.Hour)),
			Topic:     tpl.Topic,
			Sentiment: tpl.Sentiment,
		})
	}
	return out
}

// GenerateUnlabeled returns count unlabeled posts stamped with the current
// time, each with a random author and engagement count.
func (g *Generator) GenerateUnlabeled(count int) []models.Post {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	out := make([]models.Post, 0, max(count, 0))
	for range max(count, 0) {
		tpl := CollectorTemplates[g.rnd.Intn(len(CollectorTemplates))]
		text := g.fill(tpl.Text)
		out = append(out, models.Post{
			ID:         g.newID(now),
			Text:       text,
			Source:     collectorSources[g.rnd.Intn(len(collectorSources))],
			Author:     "user" + strconv.Itoa(g.between(minAuthorID, maxAuthorID)),
			CreatedAt:  models.NewTimestamp(now),
			Engagement: g.between(0, maxEngage),
		})
	}
	return out
}

// NewID returns a fresh post id ordered by generation time.
func (g *Generator) NewID() models.PostID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.newID(g.clock.Now())
}

func (g *Generator) newID(now time.Time) models.PostID {
	return models.PostID(ulid.MustNew(ulid.Timestamp(now), g.entropy).String())
}

// fill always draws a week count so the random sequence does not depend on
// which template was picked.
func (g *Generator) fill(text string) string {
	weeks := g.between(minWeeks, maxWeeks)
	return strings.ReplaceAll(text, "{weeks}", strconv.Itoa(weeks))
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.Intn(hi-lo+1)
}
