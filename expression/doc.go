// Package expression holds compound numeric expressions and evaluates them.
//
// An Expression is a template such as "(x_0 - x_1) / (x_2)" plus the ordered
// term handles ("binds") its placeholders refer to. Expressions are values:
// composing two of them with Merge never mutates either side.
//
// Merge is the one place where leaves are deduplicated. Given A with binds
// [close, open] and B = "x_0 * x_1" with binds [open, volume]:
//
//	union binds:   [close, open, volume]
//	B rewritten:   "x_1 * x_2"
//	combined:      "(x_0 - x_1) + (x_1 * x_2)"
//
// Evaluator runs templates elementwise over matrix panels on top of
// github.com/expr-lang/expr. Templates use the operators in MathOps and
// Comparisons, unary "-", and the functions in MathFuncs. Float "%" is
// computed with math.Mod. Compiled programs are kept in a bounded LRU cache.
package expression
