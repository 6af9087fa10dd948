package domain

import (
	"errors"
	"fmt"
)

// Fatal errors. Any of these aborts the run before a report is printed.
var (
	ErrInvalidRatio      = errors.New("invalid same-value ratio")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrCatalogUnreadable = errors.New("catalog unreadable")
	ErrCatalogNotObject  = errors.New("catalog is not an object")
	ErrNonStringValue    = errors.New("catalog has non-string values")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrSourceUnreadable  = errors.New("source file unreadable")
)

// FatalError is an error that aborts the whole run. Msg is printed as-is;
// Kind is one of the sentinels above so callers can match it with errors.Is.
type FatalError struct {
	Kind error
	Msg  string
	Err  error
}

// Fatalf builds a FatalError of the given kind wrapping cause (may be nil).
func Fatalf(kind, cause error, format string, args ...any) *FatalError {
	return &FatalError{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

func (e *FatalError) Error() string { return e.Msg }

func (e *FatalError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
