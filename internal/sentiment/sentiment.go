// Package sentiment scores English text for polarity and subjectivity with a
// word lexicon, averaging per-word values the way pattern-style analyzers do.
package sentiment

import (
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"

	"bizpulse/internal/models"
)

// Label thresholds on the polarity score.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

// NegationWindow is the number of tokens after a negator whose polarity is flipped.
const NegationWindow = 3

// negationFactor is applied to the polarity of a negated word.
const negationFactor = -0.5

var wordPattern = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

// Analyzer scores text against a lexicon. It is immutable after New and
// safe for concurrent use.
type Analyzer struct {
	lexicon      map[string]Entry
	intensifiers map[string]float64
	negators     map[string]struct{}
}

// New builds an analyzer from the given word lists. Nil arguments select
// the defaults.
func New(lexicon map[string]Entry, intensifiers map[string]float64, negators []string) *Analyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	if intensifiers == nil {
		intensifiers = DefaultIntensifiers()
	}
	if negators == nil {
		negators = DefaultNegators()
	}

	a := &Analyzer{
		lexicon:      make(map[string]Entry, len(lexicon)),
		intensifiers: make(map[string]float64, len(intensifiers)),
		negators:     make(map[string]struct{}, len(negators)),
	}
	for w, e := range lexicon {
		a.lexicon[strings.ToLower(w)] = e
	}
	for w, f := range intensifiers {
		a.intensifiers[strings.ToLower(w)] = f
	}
	for _, w := range negators {
		a.negators[strings.ToLower(w)] = struct{}{}
	}
	return a
}

// Default returns an analyzer over the built-in word lists.
func Default() *Analyzer {
	return New(nil, nil, nil)
}

// Analyze returns the polarity score in [-1, 1], its label and the
// subjectivity in [0, 1], both rounded to two decimals. Text with no
// lexicon words scores zero and is neutral.
func (a *Analyzer) Analyze(text string) models.SentimentResult {
	polarity, subjectivity := a.score(text)
	polarity = Round(polarity)
	return models.SentimentResult{
		Score:        polarity,
		Label:        Label(polarity),
		Subjectivity: Round(subjectivity),
	}
}

func (a *Analyzer) score(text string) (float64, float64) {
	var polarities, subjectivities []float64

	multiplier := 1.0
	negated := 0
	for _, word := range Tokenize(text) {
		if a.isNegator(word) {
			negated = NegationWindow
			continue
		}
		if f, ok := a.intensifiers[word]; ok {
			multiplier *= f
			continue
		}

		if e, ok := a.lexicon[word]; ok {
			p := clamp(e.Polarity*multiplier, -1, 1)
			if negated > 0 {
				p *= negationFactor
			}
			polarities = append(polarities, p)
			subjectivities = append(subjectivities, clamp(e.Subjectivity*multiplier, 0, 1))
		}
		multiplier = 1.0
		if negated > 0 {
			negated--
		}
	}

	if len(polarities) == 0 {
		return 0, 0
	}
	return clamp(stat.Mean(polarities, nil), -1, 1), clamp(stat.Mean(subjectivities, nil), 0, 1)
}

func (a *Analyzer) isNegator(word string) bool {
	if strings.HasSuffix(word, "n't") {
		return true
	}
	_, ok := a.negators[word]
	return ok
}

// Tokenize lowercases text and splits it into words. Typographic
// apostrophes are normalized so "can’t" and "can't" tokenize alike.
func Tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	return wordPattern.FindAllString(text, -1)
}

// Label classifies a polarity score.
func Label(score float64) string {
	switch {
	case score > PositiveThreshold:
		return models.SentimentPositive
	case score < NegativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Round rounds to two decimal places.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
