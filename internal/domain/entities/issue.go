package entities

import "fmt"

// IssueKind classifies a reportable validation problem.
type IssueKind string

const (
	IssueMissingBase  IssueKind = "missing_base"
	IssueEmptyBase    IssueKind = "empty_base"
	IssueKeyMismatch  IssueKind = "key_mismatch"
	IssueEnglishClone IssueKind = "english_clone"
	IssueSameRatio    IssueKind = "same_ratio"
	IssueUnknownKey   IssueKind = "unknown_key"
)

// Issue is a reportable validation error tied to the file that produced it.
type Issue struct {
	Namespace string
	Kind      IssueKind
	Path      string
	Message   string
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueMissingBase, IssueEmptyBase:
		return fmt.Sprintf("%s: %s", i.Message, i.Path)
	default:
		return fmt.Sprintf("%s: %s", i.Path, i.Message)
	}
}

// LocaleResult records the comparison of one locale catalog against base.
// Only locales whose key set matches base carry a meaningful Same count.
type LocaleResult struct {
	Namespace string
	Locale    string
	Path      string
	Same      int
	Total     int
	KeysMatch bool
}

// Ratio is Same/Total, or 0 when Total is zero.
func (r LocaleResult) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Same) / float64(r.Total)
}
