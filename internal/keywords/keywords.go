package keywords

import (
	"sort"

	"github.com/dgallion1/resumescore/internal/textproc"
)

// DefaultTopN is the number of keywords reported per document.
const DefaultTopN = 10

// Keyword is a lowercase word and the number of times it occurs.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Extract returns the topN most frequent words in text, ordered by count
// descending and then by word ascending.
func Extract(text string, topN int) []Keyword {
	if topN <= 0 {
		return []Keyword{}
	}
	counts := make(map[string]int)
	for _, tok := range textproc.Tokenize(text, 1) {
		counts[tok]++
	}

	ranked := make([]Keyword, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, Keyword{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Top is Extract without the counts.
func Top(text string, topN int) []string {
	kws := Extract(text, topN)
	words := make([]string, len(kws))
	for i, k := range kws {
		words[i] = k.Word
	}
	return words
}

// Missing returns the words of want that do not appear in have, in want's order.
func Missing(want, have []string) []string {
	present := make(map[string]bool, len(have))
	for _, w := range have {
		present[w] = true
	}
	missing := []string{}
	seen := make(map[string]bool, len(want))
	for _, w := range want {
		if !present[w] && !seen[w] {
			missing = append(missing, w)
			seen[w] = true
		}
	}
	return missing
}
