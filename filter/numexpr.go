package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/term"
)

// NumExprFilter is a boolean compound expression, produced by the comparison
// methods of factor.Factor.
type NumExprFilter struct {
	Expr expression.Expression
}

var (
	_ term.Node      = NumExprFilter{}
	_ term.Validator = NumExprFilter{}
	_ term.Describer = NumExprFilter{}
)

// NewNumExpr interns a NumExprFilter for e.
func NewNumExpr(g *term.Graph, e expression.Expression) (Filter, error) {
	id, err := g.Intern(NumExprFilter{Expr: e})
	if err != nil {
		return Filter{}, err
	}

	return Filter{g: g, id: id}, nil
}

func (n NumExprFilter) Kind() term.Kind { return term.KindFilter }

func (n NumExprFilter) StaticIdentity() string {
	return "NumExprFilter(expr=" + strconv.Quote(n.Expr.Template()) + ")"
}

func (n NumExprFilter) Inputs() []term.ID { return n.Expr.Binds() }

func (n NumExprFilter) DType() term.DType { return term.Bool }

func (n NumExprFilter) WindowLength() int { return 0 }

func (n NumExprFilter) Domain() term.Domain { return term.GenericDomain }

// Validate re-checks the placeholder contract (the zero Expression fails it)
// and requires a comparison in the template.
func (n NumExprFilter) Validate() error {
	if _, err := expression.New(n.Expr.Template(), n.Expr.Binds()); err != nil {
		return filterErrorf("NumExprFilter", err)
	}
	for _, op := range expression.Comparisons {
		if strings.Contains(n.Expr.Template(), op) {
			return nil
		}
	}

	return filterErrorf("NumExprFilter "+strconv.Quote(n.Expr.Template()), ErrNotComparison)
}

// Describe renders "NumExprFilter(expr='x_0 > (1.0)', bindings={'x_0': close})".
func (n NumExprFilter) Describe(inputs []string) string {
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = fmt.Sprintf("'%s': %s", expression.VarName(i), in)
	}

	return "NumExprFilter(expr='" + n.Expr.Template() + "', bindings={" + strings.Join(parts, ", ") + "})"
}

// Compute evaluates the template over inputs (one per bind, in bind order)
// and ANDs the result with mask, so invalid cells are always false.
func (n NumExprFilter) Compute(ev *expression.Evaluator, inputs []matrix.Matrix, mask *matrix.Mask) (*matrix.Mask, error) {
	if len(inputs) != n.Expr.Len() {
		return nil, filterErrorf(fmt.Sprintf("NumExprFilter.Compute: %d inputs for %d binds", len(inputs), n.Expr.Len()), expression.ErrShapeMismatch)
	}
	out, err := ev.EvaluateBool(n.Expr.Template(), expression.Bind(inputs))
	if err != nil {
		return nil, err
	}
	if mask == nil {
		return out, nil
	}

	return out.And(mask)
}
