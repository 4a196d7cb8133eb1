package sentiment

import (
	"slices"
	"testing"

	"bizpulse/internal/models"
)

func TestAnalyze(t *testing.T) {
	a := Default()

	tests := []struct {
		name             string
		text             string
		wantScore        float64
		wantLabel        string
		wantSubjectivity float64
	}{
		{"empty", "", 0, models.SentimentNeutral, 0},
		{"no lexicon words", "The meeting is on Tuesday", 0, models.SentimentNeutral, 0},
		{"single positive word", "This is great", 0.8, models.SentimentPositive, 0.75},
		{"negated positive", "This is not great", -0.4, models.SentimentNegative, 0.75},
		{"negated negative", "not bad", 0.35, models.SentimentPositive, 0.67},
		{"intensifier", "very good", 0.91, models.SentimentPositive, 0.78},
		{"clamped", "extremely excellent", 1, models.SentimentPositive, 1},
		{"boundary is neutral", "great but terrible", -0.1, models.SentimentNeutral, 0.88},
		{"negation window skips filler", "I can't find the permit, so frustrating", -0.78, models.SentimentNegative, 1},
		{"typographic apostrophe", "Isn’t good", -0.35, models.SentimentNegative, 0.6},
		{"case insensitive", "GREAT", 0.8, models.SentimentPositive, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.text)
			if got.Score != tt.wantScore {
				t.Errorf("Analyze(%q).Score = %v, want %v", tt.text, got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Analyze(%q).Label = %q, want %q", tt.text, got.Label, tt.wantLabel)
			}
			if got.Subjectivity != tt.wantSubjectivity {
				t.Errorf("Analyze(%q).Subjectivity = %v, want %v", tt.text, got.Subjectivity, tt.wantSubjectivity)
			}
		})
	}
}

func TestAnalyze_NegationWindowExpires(t *testing.T) {
	a := Default()

	inside := a.Analyze("not at all good")
	if inside.Score >= 0 {
		t.Errorf("Analyze(inside window).Score = %v, want negative", inside.Score)
	}

	outside := a.Analyze("not that it matters much, good")
	if outside.Score <= 0 {
		t.Errorf("Analyze(outside window).Score = %v, want positive", outside.Score)
	}
}

func TestAnalyze_CommunityPosts(t *testing.T) {
	a := Default()

	tests := []struct {
		text string
		want string
	}{
		{"Just got my business license approved! The online portal made it so easy. Thank you Miami-Dade!", models.SentimentPositive},
		{"Still waiting on my permit approval. It's been 3 weeks. This is frustrating.", models.SentimentNegative},
		{"The small business grant workshop was incredibly helpful. Learned so much!", models.SentimentPositive},
		{"County website is confusing. Can't find information about health permits.", models.SentimentNegative},
		{"Applied for a grant 3 weeks ago. No response yet. Anyone else?", models.SentimentNeutral},
		{"The pandemic relief program saved my restaurant. Forever grateful.", models.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := a.Analyze(tt.text).Label; got != tt.want {
				t.Errorf("Analyze(%q).Label = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyze_Bounds(t *testing.T) {
	a := Default()
	texts := []string{
		"awful awful awful horrible worst",
		"extremely extremely extremely terrible",
		"super really very awesome perfect",
		"nothing is ever easy or simple or quick here",
	}

	for _, text := range texts {
		got := a.Analyze(text)
		if got.Score < -1 || got.Score > 1 {
			t.Errorf("Analyze(%q).Score = %v, out of [-1, 1]", text, got.Score)
		}
		if got.Subjectivity < 0 || got.Subjectivity > 1 {
			t.Errorf("Analyze(%q).Subjectivity = %v, out of [0, 1]", text, got.Subjectivity)
		}
	}
}

func TestNew_CustomWordLists(t *testing.T) {
	a := New(map[string]Entry{"Shiny": {Polarity: 0.5, Subjectivity: 0.4}}, map[string]float64{}, []string{})

	got := a.Analyze("not shiny")
	if got.Score != 0.5 {
		t.Errorf("Analyze(\"not shiny\").Score = %v, want 0.5 with no negators", got.Score)
	}
	if got := a.Analyze("great"); got.Score != 0 {
		t.Errorf("Analyze(\"great\").Score = %v, want 0 with custom lexicon", got.Score)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.11, models.SentimentPositive},
		{0.1, models.SentimentNeutral},
		{0, models.SentimentNeutral},
		{-0.1, models.SentimentNeutral},
		{-0.11, models.SentimentNegative},
	}

	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Can’t wait!! Permits, LICENSES & 2024")
	want := []string{"can't", "wait", "permits", "licenses"}
	if !slices.Equal(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}
