package entities

import (
	"fmt"
	"io"
)

// Report aggregates the issues of one run across namespaces, in discovery order.
type Report struct {
	Label   string
	Issues  []Issue
	Results []LocaleResult
}

// Passed is true iff no issue was collected.
func (r *Report) Passed() bool {
	return len(r.Issues) == 0
}

// Add appends issues, keeping their order.
func (r *Report) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

// WriteText prints the human readable report: a FAILED header and one
// indented line per issue, or a single ok line.
func (r *Report) WriteText(w io.Writer) error {
	if r.Passed() {
		_, err := fmt.Fprintf(w, "[%s] ok\n", r.Label)
		return err
	}
	if _, err := fmt.Fprintf(w, "[%s] FAILED:\n", r.Label); err != nil {
		return err
	}
	for _, issue := range r.Issues {
		if _, err := fmt.Fprintf(w, "  - %s\n", issue); err != nil {
			return err
		}
	}
	return nil
}
