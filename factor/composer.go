package factor

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/filter"
	"github.com/katalvlaran/lvfactor/term"
)

// binaryFunc implements one binary operator. The returned handle is a
// NumExprFactor for arithmetic and a NumExprFilter for comparisons.
type binaryFunc func(self Factor, other any) (term.ID, error)

// unaryFunc implements negation or one math function.
type unaryFunc func(self Factor) (term.ID, error)

// Operator tables, filled once by init from the closed sets in package
// expression. Every Factor method is a lookup into one of them.
var (
	binaryOps    = map[string]binaryFunc{}
	reflectedOps = map[string]binaryFunc{}
	unaryOps     = map[string]unaryFunc{}
	funcOps      = map[string]unaryFunc{}
)

func init() {
	for _, op := range append(slices.Clone(expression.MathOps), expression.Comparisons...) {
		binaryOps[op] = mustBuild(binaryOperator(op))
	}
	for _, op := range expression.MathOps {
		reflectedOps[op] = mustBuild(reflectedBinaryOperator(op))
	}
	for _, op := range expression.UnaryOps {
		unaryOps[op] = mustBuild(unaryOperator(op))
	}
	for _, name := range expression.MathFuncs {
		funcOps[name] = mustBuild(functionApplication(name))
	}
}

// mustBuild panics on a factory error; only reachable if the operator sets
// and the factories disagree.
func mustBuild[F any](fn F, err error) F {
	if err != nil {
		panic(err)
	}

	return fn
}

// binaryOperator builds the implementation of self <op> other.
//
// Dispatch, first match wins:
//  1. self is compound: merge other into self, "(left) op (right)".
//  2. other is compound: let other do the merge through its reflected form.
//     Comparisons have none, so other evaluates the mirrored comparison.
//  3. other is a leaf factor: "x_0 op x_0" when it is self, else "x_0 op x_1".
//  4. other is a number: "x_0 op (c)".
//  5. anything else: ErrUnsupportedOperator.
func binaryOperator(op string) (binaryFunc, error) {
	comparison := expression.IsComparison(op)
	if !comparison && !expression.IsMathOp(op) {
		return nil, factorErrorf("binaryOperator "+strconv.Quote(op), ErrInvalidOperator)
	}

	return func(self Factor, other any) (term.ID, error) {
		// 1
		if se, ok := self.numExpr(); ok {
			left, right, binds, err := mergeOperand(self, se, op, other)
			if err != nil {
				return 0, err
			}
			return internExpr(self.g, comparison, "("+left+") "+op+" ("+right+")", binds)
		}

		if o, ok := other.(Factor); ok {
			if err := sameGraph(self, o); err != nil {
				return 0, err
			}
			// 2
			if _, compound := o.numExpr(); compound {
				if comparison {
					mirrored, _ := expression.MirrorComparison(op)
					return binaryOps[mirrored](o, self)
				}
				return reflectedOps[op](o, self)
			}
			// 3
			if o.id == self.id {
				return internExpr(self.g, comparison, "x_0 "+op+" x_0", []term.ID{self.id})
			}
			return internExpr(self.g, comparison, "x_0 "+op+" x_1", []term.ID{self.id, o.id})
		}

		// 4, 5
		lit, err := constantLiteral(op, self, other)
		if err != nil {
			return 0, err
		}
		return internExpr(self.g, comparison, "x_0 "+op+" ("+lit+")", []term.ID{self.id})
	}, nil
}

// reflectedBinaryOperator builds the implementation of other <op> self for
// arithmetic operators. A compound self does the merge and renders
// "(other) op (self)"; a leaf self only accepts a number, "(c) op x_0".
func reflectedBinaryOperator(op string) (binaryFunc, error) {
	if !expression.IsMathOp(op) {
		return nil, factorErrorf("reflectedBinaryOperator "+strconv.Quote(op), ErrInvalidOperator)
	}

	return func(self Factor, other any) (term.ID, error) {
		if se, ok := self.numExpr(); ok {
			left, right, binds, err := mergeOperand(self, se, op, other)
			if err != nil {
				return 0, err
			}
			return internExpr(self.g, false, "("+right+") "+op+" ("+left+")", binds)
		}
		if !isNumeric(other) {
			return 0, unsupported(op, other, self)
		}
		lit, err := constantLiteral(op, self, other)
		if err != nil {
			return 0, err
		}

		return internExpr(self.g, false, "("+lit+") "+op+" x_0", []term.ID{self.id})
	}, nil
}

// unaryOperator builds prefix negation: "-(expr)" or "-x_0".
func unaryOperator(op string) (unaryFunc, error) {
	if !expression.IsUnaryOp(op) {
		return nil, factorErrorf("unaryOperator "+strconv.Quote(op), ErrInvalidOperator)
	}

	return func(self Factor) (term.ID, error) {
		if se, ok := self.numExpr(); ok {
			return internExpr(self.g, false, op+"("+se.Template()+")", se.Binds())
		}
		return internExpr(self.g, false, op+"x_0", []term.ID{self.id})
	}, nil
}

// functionApplication builds name(expr) / name(x_0) for a MathFuncs entry.
func functionApplication(name string) (unaryFunc, error) {
	if !expression.IsMathFunc(name) {
		return nil, factorErrorf("functionApplication "+strconv.Quote(name), ErrInvalidOperator)
	}

	return func(self Factor) (term.ID, error) {
		if se, ok := self.numExpr(); ok {
			return internExpr(self.g, false, name+"("+se.Template()+")", se.Binds())
		}
		return internExpr(self.g, false, name+"(x_0)", []term.ID{self.id})
	}, nil
}

// mergeOperand renders self's expression and other against the union binds.
// A leaf other is merged as the one-leaf expression "x_0"; a number is
// rendered as a literal and leaves the binds unchanged.
func mergeOperand(self Factor, se expression.Expression, op string, other any) (left, right string, binds []term.ID, err error) {
	if o, ok := other.(Factor); ok {
		if err = sameGraph(self, o); err != nil {
			return "", "", nil, err
		}
		oe, compound := o.numExpr()
		if !compound {
			oe = expression.Leaf(o.id)
		}
		left, right, binds = se.Merge(oe)
		return left, right, binds, nil
	}
	lit, err := constantLiteral(op, self, other)
	if err != nil {
		return "", "", nil, err
	}

	return se.Template(), lit, se.Binds(), nil
}

// internExpr validates the template and interns the node of the right kind.
func internExpr(g *term.Graph, boolean bool, template string, binds []term.ID) (term.ID, error) {
	e, err := expression.New(template, binds)
	if err != nil {
		return 0, err
	}
	if boolean {
		return g.Intern(filter.NumExprFilter{Expr: e})
	}

	return g.Intern(NumExprFactor{Expr: e})
}

// constantLiteral renders a numeric other as a float literal.
func constantLiteral(op string, self Factor, other any) (string, error) {
	v, ok := toFloat(other)
	if !ok {
		return "", unsupported(op, self, other)
	}
	lit, err := expression.FormatConstant(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedOperator, err)
	}

	return lit, nil
}

func isNumeric(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// toFloat accepts Go's built-in integer and float types.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func sameGraph(a, b Factor) error {
	if a.g != b.g {
		return factorErrorf(a.String()+" and "+b.String(), term.ErrGraphMismatch)
	}

	return nil
}

// unsupported names the operator and both operand kinds, left to right.
func unsupported(op string, left, right any) error {
	return fmt.Errorf("%w: %s %s %s", ErrUnsupportedOperator, operandKind(left), op, operandKind(right))
}

func operandKind(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case Factor:
		if x.g == nil {
			return "Factor"
		}
		return x.kindName()
	case filter.Filter:
		return "Filter"
	default:
		return fmt.Sprintf("%T", v)
	}
}
