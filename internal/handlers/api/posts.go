package api

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"bizpulse/internal/models"
	"bizpulse/internal/posts"
	"bizpulse/internal/validation"
)

// Post listing bounds.
const (
	DefaultPostCount = 20
	MaxPostCount     = 500
)

// PostsHandler serves the post feed and its statistics.
type PostsHandler struct {
	generator  *posts.Generator
	analyzer   Analyzer
	postsFile  string
	sampleSize int
}

// NewPostsHandler creates a new posts handler. Posts are read from postsFile
// when it exists and generated otherwise.
func NewPostsHandler(generator *posts.Generator, analyzer Analyzer, postsFile string, sampleSize int) *PostsHandler {
	return &PostsHandler{
		generator:  generator,
		analyzer:   analyzer,
		postsFile:  postsFile,
		sampleSize: sampleSize,
	}
}

// List returns up to count posts, scoring those that carry no score.
func (h *PostsHandler) List(c fiber.Ctx) error {
	count := validation.ClampCount(fiber.Query[int](c, "count", DefaultPostCount), DefaultPostCount, MaxPostCount)

	source := models.DataSourceReal
	list, err := posts.Load(h.postsFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		source = models.DataSourceMock
		list = h.generator.Generate(count)
	case err != nil:
		slog.Error("failed to load posts", "path", h.postsFile, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to load posts")
	}

	if len(list) > count {
		list = list[:count]
	}
	h.score(list)

	return c.JSON(models.PostsResponse{
		Posts:      list,
		Total:      len(list),
		DataSource: source,
	})
}

// Statistics summarizes a freshly generated sample of posts. Breakdowns use
// the labels the sample was generated with.
func (h *PostsHandler) Statistics(c fiber.Ctx) error {
	sample := h.generator.Generate(h.sampleSize)
	h.score(sample)
	return c.JSON(posts.Summarize(sample))
}

func (h *PostsHandler) score(list []models.Post) {
	for i := range list {
		if list[i].IsScored() {
			continue
		}
		score := h.analyzer.Analyze(list[i].Text).Score
		list[i].SentimentScore = &score
	}
}
