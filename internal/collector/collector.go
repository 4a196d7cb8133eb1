// Package collector gathers posts from mock data and exported files,
// annotates them with sentiment and topics, and writes the results to disk.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"bizpulse/internal/models"
	"bizpulse/internal/posts"
	"bizpulse/internal/sentiment"
)

// Source selects where posts are collected from.
type Source string

// Collection sources.
const (
	SourceMock Source = "mock"
	SourceJSON Source = "json"
	SourceRSS  Source = "rss"
	SourceHTML Source = "html"
	SourceAll  Source = "all"
)

var (
	ErrUnknownSource = errors.New("unknown source")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNoInputs      = errors.New("source requires at least one input file")
)

// ParseSource validates a source name.
func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case SourceMock, SourceJSON, SourceRSS, SourceHTML, SourceAll:
		return src, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

// Analyzer scores text sentiment.
type Analyzer interface {
	Analyze(text string) models.SentimentResult
}

// TopicExtractor returns the topics of a text, never empty.
type TopicExtractor interface {
	ExtractTopics(text string) []models.TopicTag
}

// Options control a collection run.
type Options struct {
	Source       Source
	Inputs       []string
	Count        int
	HTMLSelector string
	Analyze      bool
}

// Stats summarizes the sentiment of a collection run.
type Stats struct {
	RunID              string  `json:"run_id"`
	Total              int     `json:"total"`
	Positive           int     `json:"positive"`
	Negative           int     `json:"negative"`
	Neutral            int     `json:"neutral"`
	PositivePercentage float64 `json:"positive_percentage"`
}

// Collector runs collections. The generator supplies mock posts and ids for
// posts read without one.
type Collector struct {
	generator *posts.Generator
	analyzer  Analyzer
	topics    TopicExtractor
	clock     clockwork.Clock
	logger    *slog.Logger
}

// New creates a collector. A nil analyzer selects the default lexicon, a nil
// clock the real clock and a nil logger slog.Default().
func New(generator *posts.Generator, analyzer Analyzer, topics TopicExtractor, clock clockwork.Clock, logger *slog.Logger) *Collector {
	if analyzer == nil {
		analyzer = sentiment.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		generator: generator,
		analyzer:  analyzer,
		topics:    topics,
		clock:     clock,
		logger:    logger,
	}
}

// Collect gathers up to opts.Count posts. Unreadable inputs are logged and
// skipped. When nothing could be collected mock posts are generated instead.
func (c *Collector) Collect(ctx context.Context, opts Options) ([]models.Post, error) {
	if opts.Source == "" {
		opts.Source = SourceMock
	}
	if opts.Source != SourceMock && opts.Source != SourceAll && len(opts.Inputs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputs, opts.Source)
	}

	var collected []models.Post
	if opts.Source != SourceMock {
		for _, path := range opts.Inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			src := opts.Source
			if src == SourceAll {
				src = sourceForPath(path)
			}
			got, err := c.readFile(path, src, opts.HTMLSelector)
			if err != nil {
				c.logger.Warn("skipping input", "path", path, "source", src, "error", err)
				continue
			}
			c.logger.Info("read input", "path", path, "source", src, "posts", len(got))
			collected = append(collected, got...)
		}
	}

	if len(collected) == 0 {
		if opts.Source != SourceMock {
			c.logger.Warn("no posts collected, using mock data", "source", opts.Source)
		}
		collected = c.generator.GenerateUnlabeled(opts.Count)
	}
	if opts.Count > 0 && len(collected) > opts.Count {
		collected = collected[:opts.Count]
	}

	for i := range collected {
		if collected[i].ID == "" {
			collected[i].ID = c.generator.NewID()
		}
	}
	return collected, nil
}

// Analyze annotates every post with its sentiment and, when it has none, its
// first extracted topic, and returns the run statistics.
func (c *Collector) Analyze(collected []models.Post) Stats {
	stats := Stats{RunID: uuid.NewString(), Total: len(collected)}
	for i := range collected {
		p := &collected[i]
		p.ApplySentiment(c.analyzer.Analyze(p.Text))
		if p.Topic == "" && c.topics != nil {
			if found := c.topics.ExtractTopics(p.Text); len(found) > 0 {
				p.Topic = found[0]
			}
		}

		switch p.Sentiment {
		case models.SentimentPositive:
			stats.Positive++
		case models.SentimentNegative:
			stats.Negative++
		default:
			stats.Neutral++
		}
	}
	stats.PositivePercentage = posts.Percentage(stats.Positive, stats.Total)
	return stats
}

// Result describes a finished run.
type Result struct {
	Posts     []models.Post
	Stats     *Stats
	PostsFile string
	StatsFile string
}

// Run collects, optionally analyzes and saves posts into dir.
func (c *Collector) Run(ctx context.Context, opts Options, dir string, format Format) (*Result, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	collected, err := c.Collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{Posts: collected}
	if opts.Analyze {
		stats := c.Analyze(collected)
		res.Stats = &stats
		c.logger.Info("analysis complete",
			"positive", stats.Positive,
			"positive_percentage", stats.PositivePercentage,
			"negative", stats.Negative,
			"neutral", stats.Neutral,
		)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	res.PostsFile, res.StatsFile, err = Save(dir, c.clock.Now(), collected, res.Stats, format)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Collector) readFile(path string, src Source, selector string) ([]models.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch src {
	case SourceJSON:
		return ReadJSON(f)
	case SourceRSS:
		return ReadFeed(f)
	case SourceHTML:
		return ReadHTML(f, selector)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src)
	}
}

// sourceForPath picks a reader from the file extension for SourceAll.
func sourceForPath(path string) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceJSON
	case ".html", ".htm":
		return SourceHTML
	default:
		return SourceRSS
	}
}
