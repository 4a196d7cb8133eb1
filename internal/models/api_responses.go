package models

import "time"

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// RecommendRequest is the body of POST /api/recommend.
type RecommendRequest struct {
	Query string `json:"query"`
}

// AnalyzeResponse contains the sentiment and topics of a text.
type AnalyzeResponse struct {
	Text      string          `json:"text"`
	Sentiment SentimentResult `json:"sentiment"`
	Topics    []TopicTag      `json:"topics"`
}

// RecommendResponse contains ranked resources for a query.
type RecommendResponse struct {
	Query           string                 `json:"query"`
	Sentiment       SentimentResult        `json:"sentiment"`
	Topics          []TopicTag             `json:"topics"`
	Recommendations []RankedRecommendation `json:"recommendations"`
}

// PostsResponse lists posts and where they came from.
type PostsResponse struct {
	Posts      []Post `json:"posts"`
	Total      int    `json:"total"`
	DataSource string `json:"data_source"`
}

// Data source values for PostsResponse.
const (
	DataSourceReal = "real"
	DataSourceMock = "mock"
)

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// TopicEntry is one row of the topic keyword table.
type TopicEntry struct {
	Name     TopicTag `json:"name"`
	Keywords []string `json:"keywords"`
}

// TopicsResponse describes the taxonomy in match order.
type TopicsResponse struct {
	Topics    []TopicEntry `json:"topics"`
	Fallback  TopicTag     `json:"fallback"`
	MatchMode string       `json:"match_mode"`
}

// ResourcesResponse lists one catalog bucket.
type ResourcesResponse struct {
	Topic     TopicTag         `json:"topic"`
	Resources []ResourceRecord `json:"resources"`
}

// LinkHealthResponse lists link check results.
type LinkHealthResponse struct {
	Enabled  bool         `json:"enabled"`
	Statuses []LinkStatus `json:"statuses"`
}

// StatisticsResponse summarizes a sample of posts.
type StatisticsResponse struct {
	TotalPosts                 int              `json:"total_posts"`
	SentimentBreakdown         map[string]int   `json:"sentiment_breakdown"`
	TopicBreakdown             map[TopicTag]int `json:"topic_breakdown"`
	OverallSentimentPercentage float64          `json:"overall_sentiment_percentage"`
	AverageScore               float64          `json:"average_score"`
}
