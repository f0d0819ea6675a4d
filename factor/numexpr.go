package factor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/term"
)

// NumExprFactor is a numeric compound expression. Users rarely build one
// directly: the arithmetic, unary and function methods of Factor do.
type NumExprFactor struct {
	Expr expression.Expression
}

var (
	_ term.Node      = NumExprFactor{}
	_ term.Validator = NumExprFactor{}
	_ term.Describer = NumExprFactor{}
)

func (n NumExprFactor) Kind() term.Kind { return term.KindFactor }

func (n NumExprFactor) StaticIdentity() string {
	return "NumExprFactor(expr=" + strconv.Quote(n.Expr.Template()) + ")"
}

func (n NumExprFactor) Inputs() []term.ID { return n.Expr.Binds() }

func (n NumExprFactor) DType() term.DType { return term.Float64 }

func (n NumExprFactor) WindowLength() int { return 0 }

func (n NumExprFactor) Domain() term.Domain { return term.GenericDomain }

// Validate re-checks the placeholder contract; the zero Expression fails it.
func (n NumExprFactor) Validate() error {
	if _, err := expression.New(n.Expr.Template(), n.Expr.Binds()); err != nil {
		return factorErrorf("NumExprFactor", err)
	}

	return nil
}

// Describe renders "NumExprFactor(expr='x_0 - x_1', bindings={'x_0': close, 'x_1': open})".
func (n NumExprFactor) Describe(inputs []string) string {
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = fmt.Sprintf("'%s': %s", expression.VarName(i), in)
	}

	return "NumExprFactor(expr='" + n.Expr.Template() + "', bindings={" + strings.Join(parts, ", ") + "})"
}

// Compute evaluates the template over inputs, one per bind in bind order.
// Evaluator failures are returned unchanged.
func (n NumExprFactor) Compute(ev *expression.Evaluator, inputs []matrix.Matrix) (*matrix.Dense, error) {
	if len(inputs) != n.Expr.Len() {
		return nil, factorErrorf(fmt.Sprintf("NumExprFactor.Compute: %d inputs for %d binds", len(inputs), n.Expr.Len()), expression.ErrShapeMismatch)
	}

	return ev.EvaluateFloat(n.Expr.Template(), expression.Bind(inputs))
}
