package expression

import "slices"

// Operator sets understood by the composer and the evaluator. The sets are
// closed: every symbol here has a literal form in templates.
var (
	// MathOps are the arithmetic binary operators.
	MathOps = []string{"+", "-", "*", "/", "**", "%"}

	// Comparisons are the binary operators that yield a boolean result.
	Comparisons = []string{"<", "<=", ">", ">=", "!=", "=="}

	// UnaryOps are the supported prefix operators.
	UnaryOps = []string{"-"}

	// MathFuncs are the single-argument functions registered with the evaluator.
	MathFuncs = []string{
		"sin", "cos", "tan",
		"arcsin", "arccos", "arctan",
		"sinh", "cosh", "tanh",
		"arcsinh", "arccosh", "arctanh",
		"log", "log10", "log1p",
		"exp", "expm1",
		"sqrt", "abs",
	}
)

// IsMathOp reports whether op is an arithmetic binary operator.
func IsMathOp(op string) bool { return slices.Contains(MathOps, op) }

// IsComparison reports whether op is a comparison operator.
func IsComparison(op string) bool { return slices.Contains(Comparisons, op) }

// IsUnaryOp reports whether op is a supported unary operator.
func IsUnaryOp(op string) bool { return slices.Contains(UnaryOps, op) }

// IsMathFunc reports whether name is a registered math function.
func IsMathFunc(name string) bool { return slices.Contains(MathFuncs, name) }

// MirrorComparison returns the operator c' with (a c b) == (b c' a),
// e.g. "<" -> ">". ok is false for anything that is not a comparison.
func MirrorComparison(op string) (mirrored string, ok bool) {
	switch op {
	case "<":
		return ">", true
	case "<=":
		return ">=", true
	case ">":
		return "<", true
	case ">=":
		return "<=", true
	case "==", "!=":
		return op, true
	default:
		return "", false
	}
}
