package factor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvfactor/rank"
)

// Sentinel errors for factor composition and validation.
var (
	// ErrUnsupportedOperator indicates an operand combination the composer does
	// not handle, e.g. comparing a factor with a string.
	ErrUnsupportedOperator = errors.New("factor: unsupported operand for operator")

	// ErrInvalidOperator indicates an operator factory built for a symbol
	// outside its allow-list.
	ErrInvalidOperator = errors.New("factor: invalid operator")

	// ErrUnknownRankMethod indicates a Rank whose method is not one of
	// rank.Methods(). It matches rank.ErrUnknownMethod as well.
	ErrUnknownRankMethod = fmt.Errorf("factor: %w", rank.ErrUnknownMethod)

	// ErrUnsupportedDataType indicates a custom factor declared with a dtype
	// other than float64.
	ErrUnsupportedDataType = errors.New("factor: unsupported data type")

	// ErrNotAFactor indicates a handle whose node is not Factor-kind.
	ErrNotAFactor = errors.New("factor: term is not a factor")

	// ErrMissingCompute indicates a custom factor without a compute function.
	ErrMissingCompute = errors.New("factor: custom factor has no compute function")

	// ErrWindowShape indicates windows or outputs that do not match the
	// custom factor's declaration.
	ErrWindowShape = errors.New("factor: window shape mismatch")
)

// factorErrorf wraps err with an operation tag, preserving the sentinel.
func factorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
