// Package catalog holds the static referral resources, bucketed by topic.
//
// A Catalog is built once from validated records and never mutated afterwards,
// so any number of goroutines may read it without locking.
package catalog

import (
	"fmt"
	"slices"

	"bizpulse/internal/models"
	"bizpulse/internal/validation"
)

// Catalog maps topic tags to ordered resource records.
type Catalog struct {
	buckets map[models.TopicTag][]models.ResourceRecord
	topics  []models.TopicTag
	size    int
}

// New validates buckets and returns an immutable catalog. The input is copied.
func New(buckets map[models.TopicTag][]models.ResourceRecord) (*Catalog, error) {
	c := &Catalog{buckets: make(map[models.TopicTag][]models.ResourceRecord, len(buckets))}

	for topic, records := range buckets {
		if topic == "" {
			return nil, ErrEmptyTopic
		}
		copied := make([]models.ResourceRecord, len(records))
		for i, rec := range records {
			if err := validateRecord(rec); err != nil {
				return nil, fmt.Errorf("topic %s, resource %d (%q): %w", topic, rec.ID, rec.Name, err)
			}
			copied[i] = cloneRecord(rec)
		}
		c.buckets[topic] = copied
		c.topics = append(c.topics, topic)
		c.size += len(copied)
	}
	slices.Sort(c.topics)

	return c, nil
}

func validateRecord(rec models.ResourceRecord) error {
	if rec.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidResource)
	}
	if valid, msg := validation.ValidateURL(rec.URL); !valid {
		return fmt.Errorf("%w: %s", ErrInvalidResource, msg)
	}
	if len(rec.Keywords) == 0 {
		return ErrEmptyKeywords
	}
	seen := make(map[string]struct{}, len(rec.Keywords))
	for _, kw := range rec.Keywords {
		if !validation.ValidateKeyword(kw) {
			return fmt.Errorf("%w: %q", ErrInvalidKeyword, kw)
		}
		if _, dup := seen[kw]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKeyword, kw)
		}
		seen[kw] = struct{}{}
	}
	return nil
}

func cloneRecord(rec models.ResourceRecord) models.ResourceRecord {
	rec.Keywords = slices.Clone(rec.Keywords)
	return rec
}

// Lookup returns the records for topic in catalog order, or an empty slice
// for an unknown topic. The result is a copy.
func (c *Catalog) Lookup(topic models.TopicTag) []models.ResourceRecord {
	records := c.buckets[topic]
	out := make([]models.ResourceRecord, len(records))
	for i, rec := range records {
		out[i] = cloneRecord(rec)
	}
	return out
}

// Has reports whether topic is a catalog key.
func (c *Catalog) Has(topic models.TopicTag) bool {
	_, ok := c.buckets[topic]
	return ok
}

// Topics returns the catalog keys in lexical order.
func (c *Catalog) Topics() []models.TopicTag {
	return slices.Clone(c.topics)
}

// Len returns the total number of records.
func (c *Catalog) Len() int {
	return c.size
}

// Each calls fn for every record, topics in lexical order and records in catalog order.
func (c *Catalog) Each(fn func(topic models.TopicTag, rec models.ResourceRecord)) {
	for _, topic := range c.topics {
		for _, rec := range c.buckets[topic] {
			fn(topic, cloneRecord(rec))
		}
	}
}
