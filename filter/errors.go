package filter

import (
	"errors"
	"fmt"
)

// Sentinel errors for filter construction.
var (
	// ErrNotAFilter indicates a handle whose node does not produce booleans.
	ErrNotAFilter = errors.New("filter: term is not a filter")

	// ErrNotComparison indicates a NumExprFilter whose template is not boolean-valued.
	ErrNotComparison = errors.New("filter: expression is not a comparison")
)

func filterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
