// Package factor composes numeric terms lazily.
//
// A Factor is a handle into a term.Graph. Methods such as Sub, Div, Log or Lt
// never compute anything: they intern a new compound node (NumExprFactor or
// filter.NumExprFilter) whose template refers to the leaf factors it was
// built from. Leaves are deduplicated by handle, so
//
//	close.Sub(open)          -> "x_0 - x_1"            binds [close, open]
//	close.Sub(close)         -> "x_0 - x_0"            binds [close]
//	spread.Div(open)         -> "(x_0 - x_1) / (x_1)"  binds [close, open]
//	close.RSub(1)            -> "(1.0) - x_0"          binds [close]
//
// Operator dispatch (see binaryOperator) always lets the compound operand do
// the merge, so "leaf op compound" and "compound reflected-op leaf" produce
// the same term.
//
// The package also provides Rank (row-wise ranks with NaN for missing data),
// CustomFactor (user windowed compute with float64 output) and
// PercentileBetween.
package factor
