package factorset

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/filter"
	"github.com/katalvlaran/lvfactor/rank"
	"github.com/katalvlaran/lvfactor/term"
)

// Set is a built document: every declared name resolved to a handle.
type Set struct {
	g       *term.Graph
	factors map[string]factor.Factor
	filters map[string]filter.Filter
	names   []string // declaration order
}

// Build interns every entry of doc into g, in declaration order.
func Build(g *term.Graph, doc *Document) (*Set, error) {
	s := &Set{
		g:       g,
		factors: make(map[string]factor.Factor),
		filters: make(map[string]filter.Filter),
	}

	for _, c := range doc.Columns {
		if err := s.addColumn(c); err != nil {
			return nil, err
		}
	}
	for _, f := range doc.Factors {
		if err := s.addFactor(f); err != nil {
			return nil, err
		}
	}
	for _, f := range doc.Filters {
		if err := s.addFilter(f); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Factor returns the factor declared as name.
func (s *Set) Factor(name string) (factor.Factor, bool) {
	f, ok := s.factors[name]
	return f, ok
}

// Filter returns the filter declared as name.
func (s *Set) Filter(name string) (filter.Filter, bool) {
	f, ok := s.filters[name]
	return f, ok
}

// Names returns every declared name in declaration order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// ExecutionOrder lists the terms behind every declared name, inputs first.
func (s *Set) ExecutionOrder(ctx context.Context) ([]term.ID, error) {
	roots := make([]term.ID, 0, len(s.names))
	for _, name := range s.names {
		if f, ok := s.factors[name]; ok {
			roots = append(roots, f.ID())
		} else {
			roots = append(roots, s.filters[name].ID())
		}
	}

	return s.g.ExecutionOrder(ctx, roots...)
}

func (s *Set) declare(name string) error {
	if name == "" {
		return factorsetErrorf("entry without name", ErrInvalidEntry)
	}
	_, isFactor := s.factors[name]
	_, isFilter := s.filters[name]
	if isFactor || isFilter {
		return factorsetErrorf(strconv.Quote(name), ErrDuplicateName)
	}
	s.names = append(s.names, name)

	return nil
}

func (s *Set) addColumn(c ColumnSpec) error {
	if err := s.declare(c.Name); err != nil {
		return err
	}
	dt, err := term.ParseDType(c.DType)
	if err != nil {
		return factorsetErrorf("column "+strconv.Quote(c.Name), err)
	}
	col := term.Column{Name: c.Name, Type: dt, Scope: term.Domain(c.Domain)}
	if dt == term.Bool {
		id, err := s.g.Intern(col)
		if err != nil {
			return factorsetErrorf("column "+strconv.Quote(c.Name), err)
		}
		if s.filters[c.Name], err = filter.Wrap(s.g, id); err != nil {
			return factorsetErrorf("column "+strconv.Quote(c.Name), err)
		}
		return nil
	}
	f, err := factor.NewColumn(s.g, col)
	if err != nil {
		return factorsetErrorf("column "+strconv.Quote(c.Name), err)
	}
	s.factors[c.Name] = f

	return nil
}

func (s *Set) addFactor(spec FactorSpec) error {
	tag := "factor " + strconv.Quote(spec.Name)
	if err := s.declare(spec.Name); err != nil {
		return err
	}

	var (
		f   factor.Factor
		err error
	)
	switch {
	case spec.Rank != "" && spec.Op == "" && spec.Func == "" && len(spec.Args) == 0:
		in, ok := s.factors[spec.Rank]
		if !ok {
			return factorsetErrorf(tag+": rank "+strconv.Quote(spec.Rank), ErrUnknownReference)
		}
		f, err = in.Rank(rank.Method(spec.Method))

	case spec.Func != "" && spec.Op == "" && spec.Rank == "" && len(spec.Args) == 1:
		in, rerr := s.factorArg(spec.Args[0])
		if rerr != nil {
			return factorsetErrorf(tag, rerr)
		}
		f, err = in.Apply(spec.Func)

	case spec.Op != "" && spec.Func == "" && spec.Rank == "" && len(spec.Args) == 1:
		if spec.Op != "-" {
			return factorsetErrorf(tag+": unary "+strconv.Quote(spec.Op), ErrInvalidEntry)
		}
		in, rerr := s.factorArg(spec.Args[0])
		if rerr != nil {
			return factorsetErrorf(tag, rerr)
		}
		f, err = in.Neg()

	case spec.Op != "" && spec.Func == "" && spec.Rank == "" && len(spec.Args) == 2:
		left, right, reflected, rerr := s.binaryArgs(spec.Args)
		if rerr != nil {
			return factorsetErrorf(tag, rerr)
		}
		if reflected {
			f, err = left.Reflected(spec.Op, right)
		} else {
			f, err = left.Arith(spec.Op, right)
		}

	default:
		return factorsetErrorf(tag, ErrInvalidEntry)
	}
	if err != nil {
		return factorsetErrorf(tag, err)
	}
	s.factors[spec.Name] = f

	return nil
}

func (s *Set) addFilter(spec FilterSpec) error {
	tag := "filter " + strconv.Quote(spec.Name)
	if err := s.declare(spec.Name); err != nil {
		return err
	}

	var (
		f   filter.Filter
		err error
	)
	switch {
	case spec.PercentileBetween != nil && spec.Op == "" && len(spec.Args) == 0:
		p := spec.PercentileBetween
		in, ok := s.factors[p.Factor]
		if !ok {
			return factorsetErrorf(tag+": factor "+strconv.Quote(p.Factor), ErrUnknownReference)
		}
		f, err = in.PercentileBetween(p.Min, p.Max)

	case spec.PercentileBetween == nil && spec.Op != "" && len(spec.Args) == 2:
		left, right, reflected, rerr := s.binaryArgs(spec.Args)
		if rerr != nil {
			return factorsetErrorf(tag, rerr)
		}
		op := spec.Op
		if reflected {
			// number op factor == factor op' number
			mirrored, ok := expression.MirrorComparison(op)
			if !ok {
				return factorsetErrorf(tag+": "+strconv.Quote(op), factor.ErrInvalidOperator)
			}
			op = mirrored
		}
		f, err = left.Compare(op, right)

	default:
		return factorsetErrorf(tag, ErrInvalidEntry)
	}
	if err != nil {
		return factorsetErrorf(tag, err)
	}
	s.filters[spec.Name] = f

	return nil
}

// binaryArgs resolves [a, b]. When a is a number and b a factor the factor is
// returned as left with reflected set.
func (s *Set) binaryArgs(args []any) (left factor.Factor, right any, reflected bool, err error) {
	if name, ok := args[0].(string); ok {
		left, err = s.factorArg(name)
		if err != nil {
			return factor.Factor{}, nil, false, err
		}
		right, err = s.operandArg(args[1])
		return left, right, false, err
	}
	name, ok := args[1].(string)
	if !ok {
		return factor.Factor{}, nil, false, fmt.Errorf("%w: at least one arg must name a factor", ErrInvalidEntry)
	}
	left, err = s.factorArg(name)
	if err != nil {
		return factor.Factor{}, nil, false, err
	}

	return left, args[0], true, nil
}

func (s *Set) factorArg(arg any) (factor.Factor, error) {
	name, ok := arg.(string)
	if !ok {
		return factor.Factor{}, fmt.Errorf("%w: %v is not a name", ErrInvalidEntry, arg)
	}
	f, ok := s.factors[name]
	if !ok {
		return factor.Factor{}, fmt.Errorf("%w %q", ErrUnknownReference, name)
	}

	return f, nil
}

// operandArg resolves a name to its factor; numbers pass through.
func (s *Set) operandArg(arg any) (any, error) {
	if _, ok := arg.(string); ok {
		return s.factorArg(arg)
	}

	return arg, nil
}
