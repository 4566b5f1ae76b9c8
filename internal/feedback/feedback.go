package feedback

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/resumescore/internal/compare"
	"github.com/yuin/goldmark"
)

const (
	missingMsg  = "Consider adding the following keywords to your resume for better alignment:"
	coveredMsg  = "Your resume covers most of the critical keywords!"
	noneDisplay = "(none)"
)

// Markdown renders a report as the human-readable feedback shown to the user.
func Markdown(r *compare.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Your resume scored: %.2f%%**\n\n", r.Score)
	b.WriteString("### Feedback\n\n")
	fmt.Fprintf(&b, "**Top Keywords in Your Resume**: %s\n\n", joinWords(r.ResumeKeywords))
	fmt.Fprintf(&b, "**Top Keywords in the Job Description**: %s\n\n", joinWords(r.JobKeywords))
	if len(r.MissingKeywords) > 0 {
		fmt.Fprintf(&b, "> %s\n> %s\n", missingMsg, joinWords(r.MissingKeywords))
	} else {
		fmt.Fprintf(&b, "> %s\n", coveredMsg)
	}
	return b.String()
}

// HTML renders the Markdown feedback to an HTML fragment.
func HTML(r *compare.Report) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(Markdown(r)), &buf); err != nil {
		return "", fmt.Errorf("render feedback html: %w", err)
	}
	return buf.String(), nil
}

func joinWords(words []string) string {
	if len(words) == 0 {
		return noneDisplay
	}
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = strings.ReplaceAll(w, "_", `\_`)
	}
	return strings.Join(escaped, ", ")
}
