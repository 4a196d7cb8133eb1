// Package recommend composes topic extraction and resource ranking over an
// explicitly constructed catalog and topic table.
package recommend

import (
	"errors"
	"fmt"
	"slices"

	"bizpulse/internal/catalog"
	"bizpulse/internal/match"
	"bizpulse/internal/models"
	"bizpulse/internal/ranker"
	"bizpulse/internal/topics"
)

// Engine construction errors.
var (
	ErrTopicMismatch    = errors.New("topic table and catalog keys differ")
	ErrUnknownFallback  = errors.New("fallback topic is not a catalog key")
	ErrMissingComponent = errors.New("catalog and topic table are required")
)

// Engine turns free text into topics and ranked resources. All state is
// fixed at construction; methods are pure and safe for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	table     *topics.Table
	mode      match.Mode
	extractor *topics.Extractor
	ranker    *ranker.Ranker
}

// New validates that table and catalog declare the same topics and that the
// fallback topic has resources, then builds the engine.
func New(c *catalog.Catalog, table *topics.Table, fallback models.TopicTag, mode match.Mode) (*Engine, error) {
	if c == nil || table == nil {
		return nil, ErrMissingComponent
	}
	matcher, err := match.New(mode)
	if err != nil {
		return nil, err
	}
	if err := checkParity(c, table); err != nil {
		return nil, err
	}
	if !c.Has(fallback) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFallback, fallback)
	}

	return &Engine{
		catalog:   c,
		table:     table,
		mode:      mode,
		extractor: topics.NewExtractor(table, fallback, matcher),
		ranker:    ranker.New(c, matcher),
	}, nil
}

// Default builds the engine over the built-in catalog and table with
// substring matching.
func Default() *Engine {
	e, err := New(catalog.Default(), topics.DefaultTable(), models.FallbackTopic, match.ModeSubstring)
	if err != nil {
		panic(err)
	}
	return e
}

func checkParity(c *catalog.Catalog, table *topics.Table) error {
	tableTopics := table.Topics()
	catalogTopics := c.Topics()

	var missing, extra []models.TopicTag
	for _, topic := range tableTopics {
		if !c.Has(topic) {
			missing = append(missing, topic)
		}
	}
	for _, topic := range catalogTopics {
		if !slices.Contains(tableTopics, topic) {
			extra = append(extra, topic)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("%w: not in catalog %v, not in table %v", ErrTopicMismatch, missing, extra)
	}
	return nil
}

// ExtractTopics returns the ordered, deduplicated, non-empty topics of text.
func (e *Engine) ExtractTopics(text string) []models.TopicTag {
	return e.extractor.Extract(text)
}

// RecommendResources returns at most ranker.Limit resources for query.
func (e *Engine) RecommendResources(query string, topics []models.TopicTag) []models.RankedRecommendation {
	return e.ranker.Rank(query, topics)
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Table returns the engine's topic table.
func (e *Engine) Table() *topics.Table {
	return e.table
}

// Fallback returns the fallback topic.
func (e *Engine) Fallback() models.TopicTag {
	return e.extractor.Fallback()
}

// Mode returns the keyword matching mode.
func (e *Engine) Mode() match.Mode {
	return e.mode
}
