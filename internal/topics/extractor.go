// Package topics maps free text to topic tags using an ordered keyword table.
package topics

import (
	"slices"

	"bizpulse/internal/match"
	"bizpulse/internal/models"
)

// Extractor tags text with topics. It is immutable and safe for concurrent use.
type Extractor struct {
	table    *Table
	fallback models.TopicTag
	matcher  match.Matcher
}

// NewExtractor creates an extractor. A nil matcher selects substring matching.
func NewExtractor(table *Table, fallback models.TopicTag, matcher match.Matcher) *Extractor {
	if matcher == nil {
		matcher = match.Substring{}
	}
	return &Extractor{table: table, fallback: fallback, matcher: matcher}
}

// Extract returns the topics whose trigger keywords occur in text, in table
// order and without duplicates. When nothing matches it returns the fallback
// topic alone, so the result is never empty.
func (e *Extractor) Extract(text string) []models.TopicTag {
	prepared := e.matcher.Prepare(text)

	var found []models.TopicTag
	for _, entry := range e.table.entries {
		if slices.Contains(found, entry.Topic) {
			continue
		}
		if matchesAny(prepared, entry.Keywords) {
			found = append(found, entry.Topic)
		}
	}

	if len(found) == 0 {
		return []models.TopicTag{e.fallback}
	}
	return found
}

// Fallback returns the topic reported when nothing matches.
func (e *Extractor) Fallback() models.TopicTag {
	return e.fallback
}

func matchesAny(text match.Text, keywords []string) bool {
	for _, kw := range keywords {
		if text.Contains(kw) {
			return true
		}
	}
	return false
}
