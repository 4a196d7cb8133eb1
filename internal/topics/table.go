package topics

import (
	"errors"
	"fmt"
	"slices"

	"bizpulse/internal/models"
	"bizpulse/internal/validation"
)

// Table errors.
var (
	ErrEmptyTable     = errors.New("topic table is empty")
	ErrEmptyTopic     = errors.New("topic tag is empty")
	ErrNoKeywords     = errors.New("topic has no trigger keywords")
	ErrInvalidTrigger = errors.New("trigger keyword must be non-empty lowercase text")
)

// Entry binds a topic to its trigger keywords.
type Entry struct {
	Topic    models.TopicTag
	Keywords []string
}

// Table is the ordered topic keyword table. Declaration order is the order in
// which matching topics are reported.
type Table struct {
	entries []Entry
}

// NewTable validates entries and returns an immutable table. A topic may be
// declared more than once; extraction reports it at the first entry that
// matches the text.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		if e.Topic == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyTopic)
		}
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("topic %s: %w", e.Topic, ErrNoKeywords)
		}
		for _, kw := range e.Keywords {
			if !validation.ValidateKeyword(kw) {
				return nil, fmt.Errorf("topic %s: %w: %q", e.Topic, ErrInvalidTrigger, kw)
			}
		}
		t.entries[i] = Entry{Topic: e.Topic, Keywords: slices.Clone(e.Keywords)}
	}
	return t, nil
}

// Entries returns a copy of the table in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Topic: e.Topic, Keywords: slices.Clone(e.Keywords)}
	}
	return out
}

// Topics returns the distinct topics in first-declared order.
func (t *Table) Topics() []models.TopicTag {
	out := make([]models.TopicTag, 0, len(t.entries))
	for _, e := range t.entries {
		if !slices.Contains(out, e.Topic) {
			out = append(out, e.Topic)
		}
	}
	return out
}
