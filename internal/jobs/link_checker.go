// Package jobs runs background work alongside the HTTP service.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"bizpulse/internal/catalog"
	"bizpulse/internal/models"
	"bizpulse/internal/validation"
)

// DefaultPause separates consecutive requests within a pass.
const DefaultPause = time.Second

const userAgent = "BizPulse-LinkChecker/1.0"

type linkKey struct {
	topic models.TopicTag
	id    int
	url   string
}

// LinkChecker periodically sends HEAD requests to every catalog URL and keeps
// the latest result per resource.
type LinkChecker struct {
	catalog  *catalog.Catalog
	interval time.Duration
	pause    time.Duration
	client   *http.Client
	clock    clockwork.Clock
	logger   *slog.Logger

	// validate guards against requests to private and metadata addresses.
	validate func(string) (bool, string)

	mu       sync.RWMutex
	statuses map[linkKey]models.LinkStatus
}

// NewLinkChecker creates a checker over c. A nil clock selects the real clock.
func NewLinkChecker(c *catalog.Catalog, interval time.Duration, clock clockwork.Clock) *LinkChecker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LinkChecker{
		catalog:  c,
		interval: interval,
		pause:    DefaultPause,
		clock:    clock,
		logger:   slog.Default().With("component", "link_checker"),
		validate: validation.ValidateURLForLinkCheck,
		statuses: make(map[linkKey]models.LinkStatus),
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Start runs a pass immediately and then every interval until ctx is done.
func (lc *LinkChecker) Start(ctx context.Context) {
	lc.logger.Info("link checker started", "interval", lc.interval, "resources", lc.catalog.Len())

	lc.CheckAll(ctx)

	ticker := lc.clock.NewTicker(lc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lc.logger.Info("link checker stopped")
			return
		case <-ticker.Chan():
			lc.CheckAll(ctx)
		}
	}
}

// CheckAll checks every catalog resource once. A URL shared by several
// resources is requested once per pass.
func (lc *LinkChecker) CheckAll(ctx context.Context) {
	type result struct {
		status string
		errMsg string
	}
	seen := make(map[string]result)
	unhealthy := 0

	lc.catalog.Each(func(topic models.TopicTag, rec models.ResourceRecord) {
		if ctx.Err() != nil {
			return
		}

		r, ok := seen[rec.URL]
		if !ok {
			if len(seen) > 0 && !lc.sleep(ctx) {
				return
			}
			r.status, r.errMsg = lc.checkURL(ctx, rec.URL)
			seen[rec.URL] = r
		}
		if r.status != models.LinkHealthy {
			unhealthy++
		}

		lc.record(models.LinkStatus{
			Topic:      topic,
			ResourceID: rec.ID,
			Name:       rec.Name,
			URL:        rec.URL,
			Status:     r.status,
			Error:      r.errMsg,
			CheckedAt:  lc.clock.Now(),
		})
	})

	lc.logger.Info("link check pass complete", "urls", len(seen), "not_healthy", unhealthy)
}

// Statuses returns the latest result for each checked resource in catalog order.
func (lc *LinkChecker) Statuses() []models.LinkStatus {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	out := make([]models.LinkStatus, 0, len(lc.statuses))
	lc.catalog.Each(func(topic models.TopicTag, rec models.ResourceRecord) {
		if s, ok := lc.statuses[linkKey{topic, rec.ID, rec.URL}]; ok {
			out = append(out, s)
		}
	})
	return out
}

func (lc *LinkChecker) record(s models.LinkStatus) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.statuses[linkKey{s.Topic, s.ResourceID, s.URL}] = s
}

func (lc *LinkChecker) sleep(ctx context.Context) bool {
	if lc.pause <= 0 {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-lc.clock.After(lc.pause):
		return true
	}
}

// checkURL sends a HEAD request. Responses below 500 are healthy and server
// errors unhealthy. Transport failures leave the status unknown.
func (lc *LinkChecker) checkURL(ctx context.Context, url string) (string, string) {
	if valid, msg := lc.validate(url); !valid {
		return models.LinkUnhealthy, msg
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return models.LinkUnhealthy, "invalid URL: " + err.Error()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := lc.client.Do(req)
	if err != nil {
		lc.logger.Warn("link check failed", "url", url, "error", err)
		return models.LinkUnknown, "connection failed: " + err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return models.LinkUnhealthy, resp.Status
	}
	return models.LinkHealthy, ""
}
