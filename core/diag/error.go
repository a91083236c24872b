package diag

import "fmt"

// Error is a labeled error attributed to a span of the invocation source.
type Error struct {
	// Title is the one line summary of the failure.
	Title string
	// Label describes what is wrong with the text under Span.
	Label string
	Span  Span
	// Cause is the underlying error, if any.
	Cause error
}

// Labeled creates a labeled error.
func Labeled(title, label string, span Span) *Error {
	return &Error{Title: title, Label: label, Span: span}
}

// Wrap creates a labeled error caused by err. The label defaults to the text
// of err when empty.
func Wrap(err error, title, label string, span Span) *Error {
	if label == "" {
		label = err.Error()
	}
	return &Error{Title: title, Label: label, Span: span, Cause: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Label)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Show renders the error with an excerpt of the source it points at.
func (e *Error) Show(name, source string) string {
	return fmt.Sprintf("Error: %s\n  %s\n  %s", e.Title, e.Label, e.Span.Excerpt(name, source))
}
