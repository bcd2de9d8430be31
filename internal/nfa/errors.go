package nfa

import (
	"errors"
	"fmt"
)

// BuildError represents a contract violation detected during automaton
// construction.
//
// Build errors are programming errors, not input rejection: an input
// sequence that fails to match is reported by Accepts returning false,
// never by an error.
type BuildError struct {
	// Code identifies the error category.
	Code BuildErrorCode

	// Message is a human-readable description.
	Message string

	// Fragment is the regex fragment being built, when known.
	Fragment string
}

// BuildErrorCode categorizes build errors.
type BuildErrorCode string

const (
	// ErrCodeEmptyFragment indicates FromRegex was called on an empty
	// fragment, which has no atom to build from.
	ErrCodeEmptyFragment BuildErrorCode = "EMPTY_FRAGMENT"

	// ErrCodeUnknownState indicates an edge referenced a state index
	// that was never created. Continuing would corrupt the
	// state-uniqueness invariant.
	ErrCodeUnknownState BuildErrorCode = "UNKNOWN_STATE"
)

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("%s: %s (fragment=%q)", e.Code, e.Message, e.Fragment)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsEmptyFragmentError returns true if the error is an empty-fragment
// build error. Uses errors.As to handle wrapped errors.
func IsEmptyFragmentError(err error) bool {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Code == ErrCodeEmptyFragment
	}
	return false
}

// newEmptyFragmentError creates the BuildError for FromRegex("").
func newEmptyFragmentError() *BuildError {
	return &BuildError{
		Code:    ErrCodeEmptyFragment,
		Message: "cannot build an automaton from an empty fragment",
	}
}
