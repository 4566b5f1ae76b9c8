package similarity

import (
	"math"
	"testing"

	"github.com/dgallion1/resumescore/internal/textproc"
)

const (
	resumeText = "Python developer with five years of experience in backend systems"
	jobText    = "Looking for a Python backend developer with cloud experience"
)

func englishScorer(t *testing.T) *Scorer {
	t.Helper()
	sw, err := textproc.ForLanguage(textproc.DefaultLanguage)
	if err != nil {
		t.Fatalf("stop words: %v", err)
	}
	return NewScorer(sw)
}

func TestScore_Scenario(t *testing.T) {
	s := englishScorer(t)
	got := s.Score(resumeText, jobText)
	if got <= 0 || got >= 100 {
		t.Fatalf("expected score in (0,100), got %f", got)
	}
}

func TestScore_Symmetric(t *testing.T) {
	s := englishScorer(t)
	pairs := [][2]string{
		{resumeText, jobText},
		{"go go go kubernetes", "kubernetes operators in go"},
		{"alpha beta", "gamma delta"},
	}
	for _, p := range pairs {
		ab, ba := s.Score(p[0], p[1]), s.Score(p[1], p[0])
		if ab != ba {
			t.Errorf("score not symmetric for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestScore_SelfSimilarity(t *testing.T) {
	s := englishScorer(t)
	for _, text := range []string{resumeText, jobText, "kubernetes", "rust rust rust go"} {
		if got := s.Score(text, text); got != 100 {
			t.Errorf("expected self score 100 for %q, got %v", text, got)
		}
	}
}

func TestScore_Disjoint(t *testing.T) {
	s := englishScorer(t)
	if got := s.Score("golang kubernetes", "painting sculpture"); got != 0 {
		t.Errorf("expected 0 for disjoint vocabularies, got %v", got)
	}
}

func TestScore_DegenerateInputs(t *testing.T) {
	s := englishScorer(t)
	tests := []struct {
		name string
		a, b string
	}{
		{"both empty", "", ""},
		{"one empty", "", jobText},
		{"stop words only", "the and of is", jobText},
		{"single letters only", "a b c", "a b c"},
	}
	for _, tt := range tests {
		got := s.Score(tt.a, tt.b)
		if got != 0 || math.IsNaN(got) {
			t.Errorf("%s: expected 0, got %v", tt.name, got)
		}
	}
}

func TestScore_Range(t *testing.T) {
	s := englishScorer(t)
	texts := []string{"", resumeText, jobText, "python python python", "cloud", "the"}
	for _, a := range texts {
		for _, b := range texts {
			got := s.Score(a, b)
			if got < 0 || got > 100 || math.IsNaN(got) {
				t.Errorf("score(%q,%q) out of range: %v", a, b, got)
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := englishScorer(t)
	first := s.Score(resumeText, jobText)
	for i := 0; i < 20; i++ {
		if got := s.Score(resumeText, jobText); got != first {
			t.Fatalf("run %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestTFIDF_FitTransform(t *testing.T) {
	v := &TFIDF{}
	vecs := v.FitTransform("apple apple banana", "banana cherry")
	if len(vecs) != 2 || len(vecs[0]) != 3 {
		t.Fatalf("expected 2 vectors over 3 terms, got %v", vecs)
	}
	// vocab: apple, banana, cherry
	shared := 1.0
	unique := math.Log(3.0/2.0) + 1
	want0 := []float64{2 * unique, shared, 0}
	want1 := []float64{0, shared, unique}
	for j := range want0 {
		if math.Abs(vecs[0][j]-want0[j]) > 1e-12 || math.Abs(vecs[1][j]-want1[j]) > 1e-12 {
			t.Fatalf("unexpected weights: %v", vecs)
		}
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	if got := Cosine([]float64{0, 0}, []float64{1, 2}); got != 0 {
		t.Errorf("expected 0 for zero vector, got %v", got)
	}
	if got := Cosine(nil, nil); got != 0 {
		t.Errorf("expected 0 for empty vectors, got %v", got)
	}
}

type fixedVectorizer [][]float64

func (f fixedVectorizer) FitTransform(...string) [][]float64 { return f }

func TestScorer_PluggableVectorizer(t *testing.T) {
	s := &Scorer{
		Vectorizer: fixedVectorizer{{1, 0}, {1, 0}},
		Similarity: Cosine,
	}
	if got := s.Score("x", "y"); got != 100 {
		t.Errorf("expected 100 from fixed identical vectors, got %v", got)
	}
	s.Similarity = func(a, b []float64) float64 { return math.NaN() }
	if got := s.Score("x", "y"); got != 0 {
		t.Errorf("expected NaN similarity to score 0, got %v", got)
	}
}
