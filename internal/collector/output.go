package collector

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bizpulse/internal/models"
)

// Format is an output file format.
type Format string

// Output formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FileTimeLayout stamps output file names.
const FileTimeLayout = "20060102_150405"

// CSVHeader lists the CSV output columns in order.
var CSVHeader = []string{"id", "text", "source", "author", "created_at", "sentiment", "sentiment_score", "subjectivity", "topic", "url", "engagement"}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Save writes posts into dir as social_media_posts_<stamp>.<format>. For
// JSON output non-nil stats are written alongside as
// sentiment_stats_<stamp>.json. It returns the paths written; the stats path
// is empty when no stats file was produced.
func Save(dir string, now time.Time, collected []models.Post, stats *Stats, format Format) (string, string, error) {
	stamp := now.Format(FileTimeLayout)
	postsPath := filepath.Join(dir, fmt.Sprintf("social_media_posts_%s.%s", stamp, format))

	switch format {
	case FormatJSON:
		if err := writeJSON(postsPath, collected); err != nil {
			return "", "", err
		}
		if stats == nil {
			return postsPath, "", nil
		}
		statsPath := filepath.Join(dir, fmt.Sprintf("sentiment_stats_%s.json", stamp))
		if err := writeJSON(statsPath, stats); err != nil {
			return "", "", err
		}
		return postsPath, statsPath, nil
	case FormatCSV:
		if err := writeCSV(postsPath, collected); err != nil {
			return "", "", err
		}
		return postsPath, "", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, collected []models.Post) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, p := range collected {
		if err := w.Write(csvRow(p)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func csvRow(p models.Post) []string {
	created := ""
	if !p.CreatedAt.IsZero() {
		created = p.CreatedAt.Format(time.RFC3339)
	}
	return []string{
		string(p.ID),
		p.Text,
		p.Source,
		p.Author,
		created,
		p.Sentiment,
		formatOptional(p.SentimentScore),
		formatOptional(p.Subjectivity),
		string(p.Topic),
		p.URL,
		strconv.Itoa(p.Engagement),
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
