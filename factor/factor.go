package factor

import (
	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/filter"
	"github.com/katalvlaran/lvfactor/term"
)

// Factor is a handle to a numeric term in a term.Graph. Handles are cheap
// values; two handles are the same factor iff they share graph and ID.
type Factor struct {
	g  *term.Graph
	id term.ID
}

// Wrap returns the Factor handle for id, checking that the node is Factor-kind.
func Wrap(g *term.Graph, id term.ID) (Factor, error) {
	n, err := g.Node(id)
	if err != nil {
		return Factor{}, factorErrorf("Wrap", err)
	}
	if n.Kind() != term.KindFactor {
		return Factor{}, factorErrorf("Wrap "+n.StaticIdentity(), ErrNotAFactor)
	}

	return Factor{g: g, id: id}, nil
}

// Column interns the float64 column leaf name.
func Column(g *term.Graph, name string) (Factor, error) {
	return NewColumn(g, term.Column{Name: name, Type: term.Float64})
}

// NewColumn interns c. Bool columns are filters; use filter.Column for them.
func NewColumn(g *term.Graph, c term.Column) (Factor, error) {
	if c.Type == term.Bool {
		return Factor{}, factorErrorf("NewColumn "+c.Name, ErrNotAFactor)
	}
	id, err := g.Intern(c)
	if err != nil {
		return Factor{}, err
	}

	return Factor{g: g, id: id}, nil
}

// ID returns the handle of the underlying term.
func (f Factor) ID() term.ID { return f.id }

// Graph returns the owning graph.
func (f Factor) Graph() *term.Graph { return f.g }

// Node returns the underlying term.
func (f Factor) Node() (term.Node, error) { return f.g.Node(f.id) }

// Inputs returns the handles f is computed from.
func (f Factor) Inputs() []term.ID {
	n, err := f.g.Node(f.id)
	if err != nil {
		return nil
	}

	return n.Inputs()
}

// String renders the factor with its inputs, e.g. "Rank(close, method='ordinal')".
func (f Factor) String() string {
	if f.g == nil {
		return "Factor(<nil>)"
	}

	return f.g.Describe(f.id)
}

// numExpr returns f's expression when f is a compound NumExprFactor.
func (f Factor) numExpr() (expression.Expression, bool) {
	n, err := f.g.Node(f.id)
	if err != nil {
		return expression.Expression{}, false
	}
	ne, ok := n.(NumExprFactor)

	return ne.Expr, ok
}

// kindName names f's node type for error messages.
func (f Factor) kindName() string {
	if _, ok := f.numExpr(); ok {
		return "NumExprFactor"
	}

	return "Factor"
}

// PercentileBetween returns a filter selecting, per row, the entities whose
// value lies between the two percentiles of f (inclusive). Bounds are passed
// through unchecked; see filter.PercentileFilter.
func (f Factor) PercentileBetween(minPercentile, maxPercentile float64) (filter.Filter, error) {
	return filter.NewPercentileBetween(f.g, f.id, minPercentile, maxPercentile)
}
