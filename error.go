package lintric

import "fmt"

// Kind enumerates the fatal construction-error taxonomy. ResolverFallback is
// deliberately absent: it is never surfaced as an error, only as a resolver
// returning no dependency for one usage.
type Kind string

const (
	ParseError              Kind = "ParseError"
	GrammarMismatch         Kind = "GrammarMismatch"
	ScopeInvariantViolation Kind = "ScopeInvariantViolation"
	UnknownLanguage         Kind = "UnknownLanguage"
)

// Error is the single sum-type error Analyze, ParseToCST, and
// ExtractSExpression return. It wraps the underlying cause so callers can
// still use errors.Is/errors.As against it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lintric: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("lintric: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
