package models

import (
	"bytes"
	"encoding/json"
)

// PostID accepts both string and numeric ids when decoded from JSON,
// since exported tweets carry numeric ids and other sources use strings.
type PostID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *PostID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PostID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = PostID(n.String())
	return nil
}

// Post is a social media post, either generated or collected from an export file.
type Post struct {
	ID             PostID    `json:"id"`
	Text           string    `json:"text"`
	Source         string    `json:"source"`
	Author         string    `json:"author,omitempty"`
	URL            string    `json:"url,omitempty"`
	CreatedAt      Timestamp `json:"created_at"`
	Topic          TopicTag  `json:"topic,omitempty"`
	Sentiment      string    `json:"sentiment,omitempty"`
	SentimentScore *float64  `json:"sentiment_score,omitempty"`
	Subjectivity   *float64  `json:"subjectivity,omitempty"`
	Engagement     int       `json:"engagement"`
}

// MarshalJSON writes created_at and mirrors it as timestamp for older clients.
func (p Post) MarshalJSON() ([]byte, error) {
	type plain Post
	return json.Marshal(struct {
		plain
		Timestamp Timestamp `json:"timestamp"`
	}{plain(p), p.CreatedAt})
}

// UnmarshalJSON reads created_at, falling back to timestamp when it is absent.
func (p *Post) UnmarshalJSON(data []byte) error {
	type plain Post
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}
	if !p.CreatedAt.IsZero() {
		return nil
	}
	var legacy struct {
		Timestamp Timestamp `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	p.CreatedAt = legacy.Timestamp
	return nil
}

// IsScored reports whether a sentiment score has been attached.
func (p *Post) IsScored() bool {
	return p.SentimentScore != nil
}

// ApplySentiment records a sentiment result on the post.
func (p *Post) ApplySentiment(r SentimentResult) {
	score, subjectivity := r.Score, r.Subjectivity
	p.Sentiment = r.Label
	p.SentimentScore = &score
	p.Subjectivity = &subjectivity
}
