package similarity

import (
	"math"
	"sort"

	"github.com/dgallion1/resumescore/internal/textproc"
)

// Vectorizer turns a corpus into one weight vector per document. All vectors
// share the same dimension order.
type Vectorizer interface {
	FitTransform(docs ...string) [][]float64
}

// SimilarityFunc compares two equal-length vectors and returns a value in [0,1].
type SimilarityFunc func(a, b []float64) float64

// Scorer computes a 0-100 similarity score between two texts. It holds no
// state between calls.
type Scorer struct {
	Vectorizer Vectorizer
	Similarity SimilarityFunc
}

// NewScorer returns a TF-IDF/cosine scorer using the given stop words.
func NewScorer(stop textproc.StopWords) *Scorer {
	return &Scorer{
		Vectorizer: &TFIDF{StopWords: stop},
		Similarity: Cosine,
	}
}

// Score returns the similarity of a and b as a percentage. A text with no
// weighted terms scores 0.
func (s *Scorer) Score(a, b string) float64 {
	vecs := s.Vectorizer.FitTransform(a, b)
	if len(vecs) != 2 {
		return 0
	}
	sim := s.Similarity(vecs[0], vecs[1])
	if math.IsNaN(sim) {
		return 0
	}
	return clamp(sim) * 100
}

// TFIDF weights raw term counts by smoothed inverse document frequency,
// idf(t) = ln((1+n)/(1+df(t))) + 1, over the corpus passed to FitTransform.
type TFIDF struct {
	StopWords textproc.StopWords
}

// FitTransform builds the vocabulary from docs in ascending lexical order and
// returns each document's weight vector.
func (v *TFIDF) FitTransform(docs ...string) [][]float64 {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		counts[i] = make(map[string]int)
		for _, tok := range v.StopWords.Filter(textproc.Tokenize(d, 2)) {
			if counts[i][tok] == 0 {
				df[tok]++
			}
			counts[i][tok]++
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j, term := range vocab {
		idf[j] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vecs := make([][]float64, len(docs))
	for i := range docs {
		vec := make([]float64, len(vocab))
		for j, term := range vocab {
			if c := counts[i][term]; c > 0 {
				vec[j] = float64(c) * idf[j]
			}
		}
		vecs[i] = vec
	}
	return vecs
}

// Cosine returns the cosine of the angle between a and b, or 0 if either is a
// zero vector. The result is symmetric in its arguments bit for bit.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp(dot / math.Sqrt(na*nb))
}

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
