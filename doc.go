// Package lvfactor is a lazy, symbolic factor-expression engine for
// cross-sectional panel computations: rows are time steps, columns are
// entities (e.g., tradable assets).
//
// 🚀 What is lvfactor?
//
//	A small, deterministic library that lets you describe a computation
//	before running it:
//		• Factors: numeric terms (columns, custom windowed factors, ranks)
//		• Filters: boolean terms (comparisons, percentile ranges)
//		• Composer: +, -, *, /, **, %, comparisons, negation and math functions
//		  on factors build flat expression terms instead of nested trees
//		• Evaluation: compiled expressions over panels with NaN for missing data
//
// ✨ Why lvfactor?
//
//   - Structural dedup – building the same term twice yields the same node
//   - Flat expressions – (a + b) * a is one term over two leaves, not three
//   - Safe accessors – kernels return sentinel errors instead of panicking
//
// Under the hood, everything is organized in subpackages:
//
//	term/       — node arena (Graph), identities, windows, execution order
//	expression/ — expression templates, merge/renumber, compiled evaluator
//	factor/     — Factor handles, the operator composer, Rank, CustomFactor
//	filter/     — Filter handles, NumExprFilter, PercentileFilter
//	rank/       — row ranking primitive (average, min, max, dense, ordinal)
//	matrix/     — Dense/Mask panels, row kernels, percentiles, validators
//	factorset/  — YAML documents of named columns, factors and filters
//
// Quick example:
//
//	g := term.NewGraph()
//	px, _ := factor.Column(g, "close")
//	open, _ := factor.Column(g, "open")
//	spread, _ := px.Sub(open)           // x_0 - x_1 over (close, open)
//	wide, _ := spread.Gt(1.5)           // (x_0 - x_1) > (1.5) over (close, open)
//	top, _ := spread.PercentileBetween(90, 100)
//
// Nothing is computed until the terms are evaluated over panels.
package lvfactor
