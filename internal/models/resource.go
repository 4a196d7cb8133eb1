package models

import "time"

// ResourceRecord is a referral entry belonging to one catalog topic bucket.
// IDs are unique within a bucket but may repeat across the catalog.
type ResourceRecord struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// RankedRecommendation is a resource scored against a single query.
type RankedRecommendation struct {
	ResourceRecord
	RelevanceScore int      `json:"relevance_score"`
	Topic          TopicTag `json:"topic"`
}

// Link check status constants
const (
	LinkHealthy   = "healthy"
	LinkUnhealthy = "unhealthy"
	LinkUnknown   = "unknown"
)

// LinkStatus is the last observed reachability of a catalog resource URL.
type LinkStatus struct {
	Topic      TopicTag  `json:"topic"`
	ResourceID int       `json:"resource_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// IsUp reports whether the last check succeeded.
func (s LinkStatus) IsUp() bool {
	return s.Status == LinkHealthy
}
