// Package ranker scores catalog resources against a query.
package ranker

import (
	"cmp"
	"slices"

	"bizpulse/internal/catalog"
	"bizpulse/internal/match"
	"bizpulse/internal/models"
)

// Limit is the maximum number of recommendations returned by Rank.
const Limit = 3

// Ranker ranks resources from a catalog. It is immutable and safe for concurrent use.
type Ranker struct {
	catalog *catalog.Catalog
	matcher match.Matcher
}

// New creates a ranker. A nil matcher selects substring matching.
func New(c *catalog.Catalog, matcher match.Matcher) *Ranker {
	if matcher == nil {
		matcher = match.Substring{}
	}
	return &Ranker{catalog: c, matcher: matcher}
}

// Rank emits one candidate per (topic, resource) pair, in topic order and
// then catalog order, scores each by the number of its keywords found in
// query, and returns the top Limit by descending score. Equal scores keep
// emission order. A resource listed under two requested topics is emitted
// twice. Unknown topics contribute nothing.
func (r *Ranker) Rank(query string, topics []models.TopicTag) []models.RankedRecommendation {
	text := r.matcher.Prepare(query)

	candidates := make([]models.RankedRecommendation, 0)
	for _, topic := range topics {
		for _, rec := range r.catalog.Lookup(topic) {
			candidates = append(candidates, models.RankedRecommendation{
				ResourceRecord: rec,
				RelevanceScore: Score(text, rec.Keywords),
				Topic:          topic,
			})
		}
	}

	slices.SortStableFunc(candidates, func(a, b models.RankedRecommendation) int {
		return cmp.Compare(b.RelevanceScore, a.RelevanceScore)
	})

	if len(candidates) > Limit {
		candidates = candidates[:Limit]
	}
	return candidates
}

// Score counts the keywords that occur in text. Each keyword counts once
// however often it appears.
func Score(text match.Text, keywords []string) int {
	score := 0
	for i, kw := range keywords {
		if slices.Contains(keywords[:i], kw) {
			continue
		}
		if text.Contains(kw) {
			score++
		}
	}
	return score
}
