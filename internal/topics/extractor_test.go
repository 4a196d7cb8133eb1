package topics

import (
	"errors"
	"slices"
	"testing"

	"bizpulse/internal/match"
	"bizpulse/internal/models"
)

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"empty table", nil, ErrEmptyTable},
		{"empty topic", []Entry{{Topic: "", Keywords: []string{"a"}}}, ErrEmptyTopic},
		{"no keywords", []Entry{{Topic: "permits"}}, ErrNoKeywords},
		{"uppercase keyword", []Entry{{Topic: "permits", Keywords: []string{"Permit"}}}, ErrInvalidTrigger},
		{"empty keyword", []Entry{{Topic: "permits", Keywords: []string{""}}}, ErrInvalidTrigger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.entries); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTable() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultTable_Order(t *testing.T) {
	topics := DefaultTable().Topics()
	if len(topics) != 14 {
		t.Fatalf("len(Topics()) = %d, want 14", len(topics))
	}
	if topics[0] != models.TopicPermits {
		t.Errorf("first topic = %s, want permits", topics[0])
	}
	if topics[len(topics)-1] != models.TopicSupport {
		t.Errorf("last topic = %s, want support", topics[len(topics)-1])
	}
}

func TestExtract(t *testing.T) {
	e := NewExtractor(DefaultTable(), models.FallbackTopic, nil)

	tests := []struct {
		name string
		text string
		want []models.TopicTag
	}{
		{"empty string", "", []models.TopicTag{models.TopicSupport}},
		{"punctuation and numbers", "!!! 42 ???", []models.TopicTag{models.TopicSupport}},
		{"no keywords", "good morning", []models.TopicTag{models.TopicSupport}},
		{"single topic", "Looking for a LOAN", []models.TopicTag{models.TopicFunding}},
		{
			// "permit" also contains "it", a technology trigger.
			name: "permit and help",
			text: "I need help getting a business permit and license",
			want: []models.TopicTag{models.TopicPermits, models.TopicTechnology, models.TopicSupport},
		},
		{
			name: "substring inside a word",
			text: "mediataxesinc",
			want: []models.TopicTag{models.TopicTaxes},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtract_TableOrderNotTextOrder(t *testing.T) {
	e := NewExtractor(DefaultTable(), models.FallbackTopic, nil)

	got := e.Extract("export help, a grant, and a license")
	want := []models.TopicTag{models.TopicPermits, models.TopicFunding, models.TopicExport, models.TopicSupport}
	if !slices.Equal(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_RepeatedTopicDeduplicated(t *testing.T) {
	table, err := NewTable([]Entry{
		{Topic: "b", Keywords: []string{"beta"}},
		{Topic: "a", Keywords: []string{"alpha"}},
		{Topic: "b", Keywords: []string{"alpha"}},
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	e := NewExtractor(table, "z", nil)

	got := e.Extract("alpha beta")
	want := []models.TopicTag{"b", "a"}
	if !slices.Equal(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}

	got = e.Extract("alpha")
	want = []models.TopicTag{"a", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("Extract(alpha) = %v, want %v", got, want)
	}
}

func TestExtract_NeverEmptyNoDuplicates(t *testing.T) {
	e := NewExtractor(DefaultTable(), models.FallbackTopic, nil)
	inputs := []string{
		"", " ", "tax tax tax taxes", "help support assistance",
		"insurance benefits for employee health",
		"Zoning code inspection for my office space lease",
	}

	for _, text := range inputs {
		got := e.Extract(text)
		if len(got) == 0 {
			t.Errorf("Extract(%q) returned no topics", text)
		}
		seen := map[models.TopicTag]bool{}
		for _, topic := range got {
			if seen[topic] {
				t.Errorf("Extract(%q) repeated topic %s", text, topic)
			}
			seen[topic] = true
		}
	}
}

func TestExtract_TokenMode(t *testing.T) {
	e := NewExtractor(DefaultTable(), models.FallbackTopic, match.Token{})

	got := e.Extract("Two permits are pending")
	if !slices.Equal(got, []models.TopicTag{models.TopicPermits}) {
		t.Errorf("Extract() = %v, want [permits]", got)
	}

	// Substring mode would report taxes here.
	got = e.Extract("hailing a taxi downtown")
	if !slices.Equal(got, []models.TopicTag{models.TopicSupport}) {
		t.Errorf("Extract(taxi) = %v, want [support]", got)
	}
}
