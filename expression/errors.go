package expression

import (
	"errors"
	"fmt"
)

// Sentinel errors for expression construction and evaluation.
var (
	// ErrInvariant indicates a template/binds pair that breaks the placeholder
	// contract: indices contiguous from 0, every bind referenced, no duplicates.
	ErrInvariant = errors.New("expression: placeholder invariant violated")

	// ErrNonFiniteConstant indicates a NaN or ±Inf constant, which has no literal form.
	ErrNonFiniteConstant = errors.New("expression: constant is not finite")

	// ErrEvaluation wraps every failure reported by the underlying evaluator
	// (compile or run time).
	ErrEvaluation = errors.New("expression: evaluation failed")

	// ErrShapeMismatch indicates evaluator inputs with differing shapes, or none at all.
	ErrShapeMismatch = errors.New("expression: input shape mismatch")
)

// expressionErrorf wraps err with an operation tag, preserving the sentinel.
func expressionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
