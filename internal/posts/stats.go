package posts

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"bizpulse/internal/models"
)

// Summarize counts labels and topics over posts. Percentages are rounded to
// one decimal, the average score to two; both are zero for an empty set.
// Unscored posts are left out of the average and untopiced posts out of the
// topic breakdown.
func Summarize(posts []models.Post) models.StatisticsResponse {
	resp := models.StatisticsResponse{
		TotalPosts: len(posts),
		SentimentBreakdown: map[string]int{
			models.SentimentPositive: 0,
			models.SentimentNegative: 0,
			models.SentimentNeutral:  0,
		},
		TopicBreakdown: make(map[models.TopicTag]int),
	}

	var scores []float64
	for _, p := range posts {
		if _, ok := resp.SentimentBreakdown[p.Sentiment]; ok {
			resp.SentimentBreakdown[p.Sentiment]++
		}
		if p.Topic != "" {
			resp.TopicBreakdown[p.Topic]++
		}
		if p.SentimentScore != nil {
			scores = append(scores, *p.SentimentScore)
		}
	}

	resp.OverallSentimentPercentage = Percentage(resp.SentimentBreakdown[models.SentimentPositive], len(posts))
	if len(scores) > 0 {
		resp.AverageScore = math.Round(stat.Mean(scores, nil)*100) / 100
	}
	return resp
}

// Percentage returns part/total*100 rounded to one decimal, or 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
