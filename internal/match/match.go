// Package match decides whether a trigger keyword occurs in a piece of text.
//
// Two modes exist. Substring mode is the default: the text is lowercased and
// a keyword matches when it is a literal substring, regardless of word
// boundaries ("tax" matches "taxi"). Token mode splits text and keyword into
// alphanumeric words, stems them with the snowball English stemmer and
// matches a keyword when its stems appear as a contiguous run in the text.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// Mode selects a matching strategy.
type Mode string

const (
	ModeSubstring Mode = "substring"
	ModeToken     Mode = "token"
)

// ErrUnknownMode is returned by ParseMode for unsupported values.
var ErrUnknownMode = errors.New("unknown match mode")

// ParseMode parses a mode name. The empty string selects substring mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeToken:
		return ModeToken, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Matcher prepares text once so many keywords can be tested against it.
type Matcher interface {
	Prepare(text string) Text
	Mode() Mode
}

// Text is prepared text. Keywords passed to Contains must be lowercase.
type Text interface {
	Contains(keyword string) bool
}

// New returns the matcher for mode.
func New(mode Mode) (Matcher, error) {
	switch mode {
	case ModeSubstring:
		return Substring{}, nil
	case ModeToken:
		return Token{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Substring matches keywords as raw substrings of the lowercased text.
type Substring struct{}

func (Substring) Mode() Mode { return ModeSubstring }

// Prepare lowercases text.
func (Substring) Prepare(text string) Text {
	return substringText(strings.ToLower(text))
}

type substringText string

func (s substringText) Contains(keyword string) bool {
	return keyword != "" && strings.Contains(string(s), keyword)
}

// Token matches stemmed keyword phrases against stemmed text words.
type Token struct{}

func (Token) Mode() Mode { return ModeToken }

// Prepare splits and stems text.
func (Token) Prepare(text string) Text {
	return tokenText(Stems(text))
}

type tokenText []string

func (t tokenText) Contains(keyword string) bool {
	phrase := Stems(keyword)
	if len(phrase) == 0 || len(phrase) > len(t) {
		return false
	}
	for i := 0; i+len(phrase) <= len(t); i++ {
		if equalRun(t[i:i+len(phrase)], phrase) {
			return true
		}
	}
	return false
}

func equalRun(a, b []string) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Stems lowercases text, splits it into alphanumeric words and stems each one.
// Words the stemmer rejects are kept as-is.
func Stems(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	stems := make([]string, len(words))
	for i, w := range words {
		stemmed, err := snowball.Stem(w, "english", true)
		if err != nil || stemmed == "" {
			stemmed = w
		}
		stems[i] = stemmed
	}
	return stems
}
