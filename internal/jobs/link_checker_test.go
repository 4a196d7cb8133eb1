package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"bizpulse/internal/catalog"
	"bizpulse/internal/models"
	"bizpulse/internal/testutil"
)

func allowAll(string) (bool, string) { return true, "" }

type linkServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newLinkServer(t *testing.T) *linkServer {
	t.Helper()
	ls := &linkServer{}
	ls.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ls.hits.Add(1)
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		switch r.URL.Path {
		case "/down":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(ls.Close)
	return ls
}

func newTestChecker(t *testing.T, c *catalog.Catalog) *LinkChecker {
	t.Helper()
	lc := NewLinkChecker(c, time.Hour, clockwork.NewFakeClockAt(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
	lc.pause = 0
	lc.validate = allowAll
	return lc
}

func TestLinkChecker_CheckAll(t *testing.T) {
	srv := newLinkServer(t)
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	ok := testutil.Resource(1, "ok", "a")
	ok.URL = srv.URL + "/ok"
	down := testutil.Resource(2, "down", "b")
	down.URL = srv.URL + "/down"
	missing := testutil.Resource(3, "missing", "c")
	missing.URL = srv.URL + "/missing"
	gone := testutil.Resource(4, "gone", "d")
	gone.URL = closedURL + "/"

	c, err := catalog.New(map[models.TopicTag][]models.ResourceRecord{
		"alpha": {ok, down},
		"beta":  {missing, gone, ok},
	})
	if err != nil {
		t.Fatal(err)
	}

	lc := newTestChecker(t, c)
	lc.CheckAll(context.Background())

	want := []struct {
		topic  models.TopicTag
		name   string
		status string
	}{
		{"alpha", "ok", models.LinkHealthy},
		{"alpha", "down", models.LinkUnhealthy},
		{"beta", "missing", models.LinkHealthy},
		{"beta", "gone", models.LinkUnknown},
		{"beta", "ok", models.LinkHealthy},
	}

	got := lc.Statuses()
	if len(got) != len(want) {
		t.Fatalf("Statuses() returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Topic != w.topic || got[i].Name != w.name || got[i].Status != w.status {
			t.Errorf("Statuses()[%d] = %s/%s %s, want %s/%s %s", i, got[i].Topic, got[i].Name, got[i].Status, w.topic, w.name, w.status)
		}
		if got[i].CheckedAt.IsZero() {
			t.Errorf("Statuses()[%d].CheckedAt is zero", i)
		}
	}
	if got[3].Error == "" {
		t.Error("unknown status carries no error")
	}

	// ok is shared by two topics but requested once.
	if n := srv.hits.Load(); n != 3 {
		t.Errorf("server hits = %d, want 3", n)
	}
}

func TestLinkChecker_RejectsPrivateAddresses(t *testing.T) {
	srv := newLinkServer(t)
	local := testutil.Resource(1, "local", "a")
	local.URL = srv.URL + "/ok"

	c, err := catalog.New(map[models.TopicTag][]models.ResourceRecord{"alpha": {local}})
	if err != nil {
		t.Fatal(err)
	}

	lc := NewLinkChecker(c, time.Hour, nil)
	lc.pause = 0
	lc.CheckAll(context.Background())

	got := lc.Statuses()
	if len(got) != 1 || got[0].Status != models.LinkUnhealthy {
		t.Fatalf("Statuses() = %+v, want one unhealthy entry", got)
	}
	if srv.hits.Load() != 0 {
		t.Error("checker requested a loopback address")
	}
}

func TestLinkChecker_StartStops(t *testing.T) {
	srv := newLinkServer(t)
	rec := testutil.Resource(1, "ok", "a")
	rec.URL = srv.URL + "/ok"

	c, err := catalog.New(map[models.TopicTag][]models.ResourceRecord{"alpha": {rec}})
	if err != nil {
		t.Fatal(err)
	}

	lc := NewLinkChecker(c, 10*time.Millisecond, nil)
	lc.pause = 0
	lc.validate = allowAll

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lc.Start(ctx)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for srv.hits.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("server hits = %d after 5s, want at least 2", srv.hits.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestLinkChecker_StatusesBeforeFirstPass(t *testing.T) {
	lc := newTestChecker(t, testutil.FixtureCatalog(t))
	if got := lc.Statuses(); len(got) != 0 {
		t.Errorf("Statuses() = %v, want empty", got)
	}
}
