package textproc

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenize lowercases text and returns every run of letters, digits and
// underscores that is at least minLen runes long, in source order.
func Tokenize(text string, minLen int) []string {
	if text == "" {
		return nil
	}
	if minLen < 1 {
		minLen = 1
	}
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// StopWords is a set of lowercase words excluded from term weighting.
type StopWords map[string]struct{}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Filter returns the tokens that are not stop words.
func (s StopWords) Filter(tokens []string) []string {
	if len(s) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// DefaultLanguage is the stop-word set used when none is configured.
const DefaultLanguage = "english"

var languages = map[string]StopWords{
	"english": newStopWords(englishStopWords),
	"none":    {},
}

// ForLanguage returns the stop-word set registered under name.
func ForLanguage(name string) (StopWords, error) {
	sw, ok := languages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown stop-word language %q", name)
	}
	return sw, nil
}

func newStopWords(words []string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
