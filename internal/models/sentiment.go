package models

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// SentimentResult is the polarity classification of a piece of text.
// Score is in [-1, 1] and Subjectivity in [0, 1], both rounded to 2 places.
type SentimentResult struct {
	Score        float64 `json:"score"`
	Label        string  `json:"sentiment"`
	Subjectivity float64 `json:"subjectivity"`
}
