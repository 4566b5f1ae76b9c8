package compare

import (
	"fmt"

	"github.com/dgallion1/resumescore/internal/doctree"
	"github.com/dgallion1/resumescore/internal/keywords"
	"github.com/dgallion1/resumescore/internal/parser"
	"github.com/dgallion1/resumescore/internal/similarity"
	"github.com/dgallion1/resumescore/internal/textproc"
)

// Document roles, as reported by MissingInputError.
const (
	RoleResume = "resume"
	RoleJob    = "job_description"
)

// Report is the result of comparing a resume with a job description.
type Report struct {
	Score           float64  `json:"score"`
	ResumeKeywords  []string `json:"resumeKeywords"`
	JobKeywords     []string `json:"jobKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
}

// MissingInputError is returned when a document was not supplied.
type MissingInputError struct {
	Which string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s document is required", e.Which)
}

// Options configures a Comparer. Zero values fall back to defaults.
type Options struct {
	TopN        int
	Language    string
	PDFFallback bool
}

// Comparer scores resumes against job descriptions. It holds only immutable
// configuration and is safe for concurrent use.
type Comparer struct {
	topN    int
	scorer  *similarity.Scorer
	parsing parser.Options
}

// New builds a Comparer from opts.
func New(opts Options) (*Comparer, error) {
	if opts.TopN <= 0 {
		opts.TopN = keywords.DefaultTopN
	}
	if opts.Language == "" {
		opts.Language = textproc.DefaultLanguage
	}
	stop, err := textproc.ForLanguage(opts.Language)
	if err != nil {
		return nil, err
	}
	return &Comparer{
		topN:    opts.TopN,
		scorer:  similarity.NewScorer(stop),
		parsing: parser.Options{PDFFallbackPdftotext: opts.PDFFallback},
	}, nil
}

// TopN returns the configured keyword count.
func (c *Comparer) TopN() int {
	return c.topN
}

// Compare extracts both documents and builds a report. Any extraction error
// aborts the comparison.
func (c *Comparer) Compare(resume, job *doctree.Document) (*Report, error) {
	if isMissing(resume) {
		return nil, &MissingInputError{Which: RoleResume}
	}
	if isMissing(job) {
		return nil, &MissingInputError{Which: RoleJob}
	}

	resumeText, err := parser.Extract(*resume, c.parsing)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", RoleResume, err)
	}
	jobText, err := parser.Extract(*job, c.parsing)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", RoleJob, err)
	}

	return c.CompareText(resumeText, jobText), nil
}

// CompareText builds a report from already extracted text.
func (c *Comparer) CompareText(resumeText, jobText string) *Report {
	resumeKW := keywords.Top(resumeText, c.topN)
	jobKW := keywords.Top(jobText, c.topN)
	return &Report{
		Score:           c.scorer.Score(resumeText, jobText),
		ResumeKeywords:  resumeKW,
		JobKeywords:     jobKW,
		MissingKeywords: keywords.Missing(jobKW, resumeKW),
	}
}

func isMissing(doc *doctree.Document) bool {
	return doc == nil || (doc.Filename == "" && len(doc.Content) == 0)
}
