package term

import "strconv"

// Describer is implemented by nodes whose human-readable rendering depends on
// the renderings of their inputs, e.g. "Rank(close, method='ordinal')".
type Describer interface {
	Describe(inputs []string) string
}

// Describe renders id for humans. Nodes implementing Describer get their
// inputs rendered recursively; fmt.Stringer nodes use String; anything else
// falls back to StaticIdentity. Unknown handles render as "<unknown term N>".
func (g *Graph) Describe(id ID) string {
	n, err := g.Node(id)
	if err != nil {
		return "<unknown term " + strconv.Itoa(int(id)) + ">"
	}
	if d, ok := n.(Describer); ok {
		ins := n.Inputs()
		names := make([]string, len(ins))
		for i, in := range ins {
			names[i] = g.Describe(in)
		}

		return d.Describe(names)
	}
	if s, ok := n.(interface{ String() string }); ok {
		return s.String()
	}

	return n.StaticIdentity()
}
