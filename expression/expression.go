package expression

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfactor/term"
)

// placeholderRE matches the positional variables x_0, x_1, ...
var placeholderRE = regexp.MustCompile(`x_(\d+)`)

// Expression is a template with positional placeholders plus the ordered
// leaf handles they are bound to: "x_i" refers to Binds()[i].
//
// Invariants (checked by New):
//   - the placeholder indices used are exactly 0..len(binds)-1;
//   - binds holds no duplicate handles.
//
// The zero value is not a valid Expression; use New or Leaf.
type Expression struct {
	template string
	binds    []term.ID
}

// New validates template against binds and returns the Expression.
// binds is copied.
func New(template string, binds []term.ID) (Expression, error) {
	if err := checkInvariant(template, binds); err != nil {
		return Expression{}, err
	}

	return Expression{template: template, binds: slices.Clone(binds)}, nil
}

// Leaf returns the trivial one-leaf expression "x_0" bound to id.
func Leaf(id term.ID) Expression {
	return Expression{template: "x_0", binds: []term.ID{id}}
}

// Template returns the template text.
func (e Expression) Template() string { return e.template }

// Binds returns a copy of the bound leaf handles.
func (e Expression) Binds() []term.ID { return slices.Clone(e.binds) }

// Len returns the number of bound leaves.
func (e Expression) Len() int { return len(e.binds) }

// String renders "<template> <- [binds]".
func (e Expression) String() string {
	parts := make([]string, len(e.binds))
	for i, b := range e.binds {
		parts[i] = strconv.Itoa(int(b))
	}

	return e.template + " <- [" + strings.Join(parts, " ") + "]"
}

// Merge unions other's leaves into e's and renumbers other's placeholders.
//
// Implementation:
//   - Stage 1: the union starts as e's binds, unchanged, so e's template keeps
//     its indices.
//   - Stage 2: each of other's binds is looked up in the union; a handle that is
//     already placed reuses its index, otherwise it is appended.
//   - Stage 3: other's template is rewritten in one pass, so x_1 -> x_0 and
//     x_0 -> x_1 in the same template cannot collide.
//
// It returns e's template, other's rewritten template and the union binds.
// Complexity: O(m*n + len(template)) for m, n binds.
func (e Expression) Merge(other Expression) (self, rewritten string, binds []term.ID) {
	// Stage 1
	binds = slices.Clone(e.binds)

	// Stage 2
	remap := make([]int, len(other.binds))
	for j, b := range other.binds {
		if i := slices.Index(binds, b); i >= 0 {
			remap[j] = i
			continue
		}
		remap[j] = len(binds)
		binds = append(binds, b)
	}

	// Stage 3
	rewritten = placeholderRE.ReplaceAllStringFunc(other.template, func(m string) string {
		j, err := strconv.Atoi(m[2:])
		if err != nil || j >= len(remap) {
			return m // unreachable for validated expressions
		}

		return "x_" + strconv.Itoa(remap[j])
	})

	return e.template, rewritten, binds
}

// FormatConstant renders v as a float literal the evaluator parses as float64:
// 2 -> "2.0", 0.5 -> "0.5", 1e21 -> "1e+21".
func FormatConstant(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", expressionErrorf("FormatConstant "+strconv.FormatFloat(v, 'g', -1, 64), ErrNonFiniteConstant)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s, nil
}

// Placeholders returns the distinct placeholder indices used by template, ascending.
func Placeholders(template string) ([]int, error) {
	var out []int
	for _, m := range placeholderRE.FindAllStringSubmatch(template, -1) {
		i, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, expressionErrorf("Placeholders "+m[0], ErrInvariant)
		}
		out = append(out, i)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

// VarName returns the placeholder name for index i.
func VarName(i int) string { return "x_" + strconv.Itoa(i) }

func checkInvariant(template string, binds []term.ID) error {
	if len(binds) == 0 {
		return expressionErrorf("New: no binds", ErrInvariant)
	}
	used, err := Placeholders(template)
	if err != nil {
		return err
	}
	if len(used) != len(binds) || used[len(used)-1] != len(binds)-1 {
		return expressionErrorf("New: placeholders "+strconv.Quote(template)+" vs "+strconv.Itoa(len(binds))+" binds", ErrInvariant)
	}
	seen := make(map[term.ID]struct{}, len(binds))
	for _, b := range binds {
		if _, dup := seen[b]; dup {
			return expressionErrorf("New: duplicate bind "+strconv.Itoa(int(b)), ErrInvariant)
		}
		seen[b] = struct{}{}
	}

	return nil
}
