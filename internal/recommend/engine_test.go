package recommend

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"bizpulse/internal/catalog"
	"bizpulse/internal/match"
	"bizpulse/internal/models"
	"bizpulse/internal/testutil"
	"bizpulse/internal/topics"
)

func TestNew_Validation(t *testing.T) {
	fixtureCatalog := testutil.FixtureCatalog(t)

	shortTable, err := topics.NewTable(testutil.FixtureEntries()[:2])
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	extraTable, err := topics.NewTable(append(testutil.FixtureEntries(), topics.Entry{Topic: "gamma", Keywords: []string{"grape"}}))
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	tests := []struct {
		name     string
		catalog  *catalog.Catalog
		table    *topics.Table
		fallback models.TopicTag
		mode     match.Mode
		wantErr  error
	}{
		{"valid", fixtureCatalog, testutil.FixtureTable(t), testutil.TopicHelp, match.ModeSubstring, nil},
		{"nil catalog", nil, testutil.FixtureTable(t), testutil.TopicHelp, match.ModeSubstring, ErrMissingComponent},
		{"catalog has extra topic", fixtureCatalog, shortTable, testutil.TopicAlpha, match.ModeSubstring, ErrTopicMismatch},
		{"table has extra topic", fixtureCatalog, extraTable, testutil.TopicHelp, match.ModeSubstring, ErrTopicMismatch},
		{"fallback not in catalog", fixtureCatalog, testutil.FixtureTable(t), "gamma", match.ModeSubstring, ErrUnknownFallback},
		{"unknown mode", fixtureCatalog, testutil.FixtureTable(t), testutil.TopicHelp, "regex", match.ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.catalog, tt.table, tt.fallback, tt.mode)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault_EmptyTextFallsBack(t *testing.T) {
	e := Default()

	got := e.ExtractTopics("")
	if !slices.Equal(got, []models.TopicTag{models.TopicSupport}) {
		t.Errorf("ExtractTopics(\"\") = %v, want [support]", got)
	}
	if e.Mode() != match.ModeSubstring {
		t.Errorf("Mode() = %q, want substring", e.Mode())
	}
}

func TestScenario_PermitAndLicense(t *testing.T) {
	e := Default()
	query := "I need help getting a business permit and license"

	topicsFound := e.ExtractTopics(query)
	permitsAt := slices.Index(topicsFound, models.TopicPermits)
	supportAt := slices.Index(topicsFound, models.TopicSupport)
	if permitsAt < 0 || supportAt < 0 {
		t.Fatalf("ExtractTopics() = %v, want permits and support", topicsFound)
	}
	if permitsAt > supportAt {
		t.Errorf("ExtractTopics() = %v, want permits before support", topicsFound)
	}

	recs := e.RecommendResources(query, topicsFound)
	if len(recs) != 3 {
		t.Fatalf("RecommendResources() returned %d entries, want 3", len(recs))
	}

	portalAt, workshopsAt := -1, -1
	for i, r := range recs {
		switch r.Name {
		case "Online Permit Portal":
			portalAt = i
			if r.RelevanceScore != 2 {
				t.Errorf("Online Permit Portal score = %d, want 2", r.RelevanceScore)
			}
		case "Virtual Permit Workshops":
			workshopsAt = i
		}
	}
	if portalAt < 0 {
		t.Fatalf("Online Permit Portal missing from %v", recs)
	}
	if workshopsAt >= 0 && workshopsAt < portalAt {
		t.Errorf("single-keyword resource ranked above the permit+license resource")
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].RelevanceScore > recs[i-1].RelevanceScore {
			t.Errorf("recommendations not sorted by descending score: %v", recs)
		}
	}
}

func TestScenario_NoOverlap(t *testing.T) {
	e, err := New(testutil.FixtureCatalog(t), testutil.FixtureTable(t), testutil.TopicHelp, match.ModeSubstring)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	topicsFound := e.ExtractTopics("zzz")
	if !slices.Equal(topicsFound, []models.TopicTag{testutil.TopicHelp}) {
		t.Fatalf("ExtractTopics() = %v, want [help]", topicsFound)
	}

	recs := e.RecommendResources("zzz", []models.TopicTag{testutil.TopicBeta, testutil.TopicAlpha})
	wantNames := []string{"beta-one", "shared", "alpha-one"}
	for i, r := range recs {
		if r.Name != wantNames[i] || r.RelevanceScore != 0 {
			t.Errorf("recs[%d] = %s (%d), want %s (0)", i, r.Name, r.RelevanceScore, wantNames[i])
		}
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := Default()
	want := e.RecommendResources("tax filing help", e.ExtractTopics("tax filing help"))

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := e.RecommendResources("tax filing help", e.ExtractTopics("tax filing help"))
			if len(got) != len(want) {
				errs <- "length mismatch"
				return
			}
			for j := range got {
				if got[j].Name != want[j].Name || got[j].Topic != want[j].Topic {
					errs <- "order mismatch"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
