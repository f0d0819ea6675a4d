package factor

import (
	"strconv"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/filter"
	"github.com/katalvlaran/lvfactor/term"
)

// Every operand argument below accepts a Factor from the same graph or a Go
// integer/float constant.

// Add returns f + other.
func (f Factor) Add(other any) (Factor, error) { return f.Arith("+", other) }

// Sub returns f - other.
func (f Factor) Sub(other any) (Factor, error) { return f.Arith("-", other) }

// Mul returns f * other.
func (f Factor) Mul(other any) (Factor, error) { return f.Arith("*", other) }

// Div returns f / other.
func (f Factor) Div(other any) (Factor, error) { return f.Arith("/", other) }

// Pow returns f ** other.
func (f Factor) Pow(other any) (Factor, error) { return f.Arith("**", other) }

// Mod returns f % other (floating-point remainder).
func (f Factor) Mod(other any) (Factor, error) { return f.Arith("%", other) }

// RAdd returns other + f.
func (f Factor) RAdd(other any) (Factor, error) { return f.Reflected("+", other) }

// RSub returns other - f.
func (f Factor) RSub(other any) (Factor, error) { return f.Reflected("-", other) }

// RMul returns other * f.
func (f Factor) RMul(other any) (Factor, error) { return f.Reflected("*", other) }

// RDiv returns other / f.
func (f Factor) RDiv(other any) (Factor, error) { return f.Reflected("/", other) }

// RPow returns other ** f.
func (f Factor) RPow(other any) (Factor, error) { return f.Reflected("**", other) }

// RMod returns other % f.
func (f Factor) RMod(other any) (Factor, error) { return f.Reflected("%", other) }

// Lt returns the filter f < other.
func (f Factor) Lt(other any) (filter.Filter, error) { return f.Compare("<", other) }

// Le returns the filter f <= other.
func (f Factor) Le(other any) (filter.Filter, error) { return f.Compare("<=", other) }

// Gt returns the filter f > other.
func (f Factor) Gt(other any) (filter.Filter, error) { return f.Compare(">", other) }

// Ge returns the filter f >= other.
func (f Factor) Ge(other any) (filter.Filter, error) { return f.Compare(">=", other) }

// Ne returns the filter f != other.
func (f Factor) Ne(other any) (filter.Filter, error) { return f.Compare("!=", other) }

// Eq returns the filter f == other.
func (f Factor) Eq(other any) (filter.Filter, error) { return f.Compare("==", other) }

// Neg returns -f.
func (f Factor) Neg() (Factor, error) { return f.unary(unaryOps, "-") }

func (f Factor) Sin() (Factor, error)     { return f.Apply("sin") }
func (f Factor) Cos() (Factor, error)     { return f.Apply("cos") }
func (f Factor) Tan() (Factor, error)     { return f.Apply("tan") }
func (f Factor) Arcsin() (Factor, error)  { return f.Apply("arcsin") }
func (f Factor) Arccos() (Factor, error)  { return f.Apply("arccos") }
func (f Factor) Arctan() (Factor, error)  { return f.Apply("arctan") }
func (f Factor) Sinh() (Factor, error)    { return f.Apply("sinh") }
func (f Factor) Cosh() (Factor, error)    { return f.Apply("cosh") }
func (f Factor) Tanh() (Factor, error)    { return f.Apply("tanh") }
func (f Factor) Arcsinh() (Factor, error) { return f.Apply("arcsinh") }
func (f Factor) Arccosh() (Factor, error) { return f.Apply("arccosh") }
func (f Factor) Arctanh() (Factor, error) { return f.Apply("arctanh") }
func (f Factor) Log() (Factor, error)     { return f.Apply("log") }
func (f Factor) Log10() (Factor, error)   { return f.Apply("log10") }
func (f Factor) Log1p() (Factor, error)   { return f.Apply("log1p") }
func (f Factor) Exp() (Factor, error)     { return f.Apply("exp") }
func (f Factor) Expm1() (Factor, error)   { return f.Apply("expm1") }
func (f Factor) Sqrt() (Factor, error)    { return f.Apply("sqrt") }
func (f Factor) Abs() (Factor, error)     { return f.Apply("abs") }

// Arith applies the arithmetic operator op ("+", "-", "*", "/", "**", "%").
func (f Factor) Arith(op string, other any) (Factor, error) {
	if !expression.IsMathOp(op) {
		return Factor{}, factorErrorf("Arith "+strconv.Quote(op), ErrInvalidOperator)
	}
	id, err := f.binary(binaryOps, op, other)
	if err != nil {
		return Factor{}, err
	}

	return Factor{g: f.g, id: id}, nil
}

// Reflected applies op with f on the right: other op f.
func (f Factor) Reflected(op string, other any) (Factor, error) {
	id, err := f.binary(reflectedOps, op, other)
	if err != nil {
		return Factor{}, err
	}

	return Factor{g: f.g, id: id}, nil
}

// Compare applies the comparison operator op ("<", "<=", ">", ">=", "!=", "==").
func (f Factor) Compare(op string, other any) (filter.Filter, error) {
	if !expression.IsComparison(op) {
		return filter.Filter{}, factorErrorf("Compare "+strconv.Quote(op), ErrInvalidOperator)
	}
	id, err := f.binary(binaryOps, op, other)
	if err != nil {
		return filter.Filter{}, err
	}

	return filter.Wrap(f.g, id)
}

// Apply applies the math function name (one of expression.MathFuncs).
func (f Factor) Apply(name string) (Factor, error) { return f.unary(funcOps, name) }

func (f Factor) binary(table map[string]binaryFunc, op string, other any) (term.ID, error) {
	fn, ok := table[op]
	if !ok {
		return 0, factorErrorf("operator "+strconv.Quote(op), ErrInvalidOperator)
	}
	if f.g == nil {
		return 0, factorErrorf("operator "+op, term.ErrUnknownTerm)
	}

	return fn(f, other)
}

func (f Factor) unary(table map[string]unaryFunc, op string) (Factor, error) {
	fn, ok := table[op]
	if !ok {
		return Factor{}, factorErrorf("operator "+strconv.Quote(op), ErrInvalidOperator)
	}
	if f.g == nil {
		return Factor{}, factorErrorf("operator "+op, term.ErrUnknownTerm)
	}
	id, err := fn(f)
	if err != nil {
		return Factor{}, err
	}

	return Factor{g: f.g, id: id}, nil
}
