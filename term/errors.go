package term

import (
	"errors"
	"fmt"
)

// Sentinel errors for term graph operations.
var (
	// ErrNilNode indicates that Intern was called with a nil node.
	ErrNilNode = errors.New("term: node is nil")

	// ErrUnknownTerm indicates a handle that was not issued by this graph.
	ErrUnknownTerm = errors.New("term: unknown term id")

	// ErrGraphMismatch indicates operands that belong to different graphs.
	ErrGraphMismatch = errors.New("term: terms belong to different graphs")

	// ErrNegativeWindowLength indicates a node declared window_length < 0.
	ErrNegativeWindowLength = errors.New("term: window length must be >= 0")

	// ErrWindowLengthNotSpecified indicates a node that requires a trailing
	// window was declared with window_length == 0.
	ErrWindowLengthNotSpecified = errors.New("term: window length not specified")

	// ErrUnknownDType indicates a dtype name outside {float64, int64, bool}.
	ErrUnknownDType = errors.New("term: unknown dtype")

	// ErrEmptyColumnName indicates a Column leaf without a name.
	ErrEmptyColumnName = errors.New("term: column name is empty")
)

// termErrorf wraps err with an operation tag, preserving the sentinel.
func termErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
