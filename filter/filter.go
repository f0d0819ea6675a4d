package filter

import (
	"github.com/katalvlaran/lvfactor/term"
)

// Filter is a handle to a boolean-valued term in a term.Graph.
type Filter struct {
	g  *term.Graph
	id term.ID
}

// Wrap returns the Filter handle for id, checking that the node is Filter-kind.
func Wrap(g *term.Graph, id term.ID) (Filter, error) {
	n, err := g.Node(id)
	if err != nil {
		return Filter{}, filterErrorf("Wrap", err)
	}
	if n.Kind() != term.KindFilter {
		return Filter{}, filterErrorf("Wrap "+n.StaticIdentity(), ErrNotAFilter)
	}

	return Filter{g: g, id: id}, nil
}

// Column interns a bool column leaf, e.g. a precomputed universe flag.
func Column(g *term.Graph, name string) (Filter, error) {
	id, err := g.Intern(term.Column{Name: name, Type: term.Bool})
	if err != nil {
		return Filter{}, err
	}

	return Filter{g: g, id: id}, nil
}

// ID returns the handle of the underlying term.
func (f Filter) ID() term.ID { return f.id }

// Graph returns the owning graph.
func (f Filter) Graph() *term.Graph { return f.g }

// Node returns the underlying term.
func (f Filter) Node() (term.Node, error) { return f.g.Node(f.id) }

// Inputs returns the handles the filter is computed from.
func (f Filter) Inputs() []term.ID {
	n, err := f.g.Node(f.id)
	if err != nil {
		return nil
	}

	return n.Inputs()
}

// String renders the filter with its inputs.
func (f Filter) String() string {
	if f.g == nil {
		return "Filter(<nil>)"
	}

	return f.g.Describe(f.id)
}
