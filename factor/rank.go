package factor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/rank"
	"github.com/katalvlaran/lvfactor/term"
)

// DefaultRankMethod is used by Factor.Rank when no method is given.
const DefaultRankMethod = rank.Ordinal

// Rank is the row-wise rank of its single input. It only looks at the
// current cross-section (window length 0) and always produces float64,
// since average ranks can be fractional.
type Rank struct {
	Input  term.ID
	Method rank.Method
}

var (
	_ term.Node      = Rank{}
	_ term.Validator = Rank{}
	_ term.Describer = Rank{}
)

// Rank returns the row-wise rank of f. An empty method selects DefaultRankMethod.
//
// Ranks are ascending and start at 1. Cells that are missing on a given step
// (mask false in Compute) rank as NaN rather than last.
func (f Factor) Rank(method rank.Method) (Factor, error) {
	if f.g == nil {
		return Factor{}, factorErrorf("Rank", term.ErrUnknownTerm)
	}
	if method == "" {
		method = DefaultRankMethod
	}
	id, err := f.g.Intern(Rank{Input: f.id, Method: method})
	if err != nil {
		return Factor{}, err
	}

	return Factor{g: f.g, id: id}, nil
}

func (r Rank) Kind() term.Kind { return term.KindFactor }

func (r Rank) StaticIdentity() string { return "Rank(method=" + string(r.Method) + ")" }

func (r Rank) Inputs() []term.ID { return []term.ID{r.Input} }

func (r Rank) DType() term.DType { return term.Float64 }

func (r Rank) WindowLength() int { return 0 }

func (r Rank) Domain() term.Domain { return term.GenericDomain }

// Validate rejects methods outside rank.Methods(), naming the valid set.
func (r Rank) Validate() error {
	if !r.Method.Valid() {
		return fmt.Errorf("Rank: %w %q (choices: {%s})", ErrUnknownRankMethod, string(r.Method), rank.Choices())
	}

	return nil
}

// Describe renders "Rank(<input>, method='<method>')".
func (r Rank) Describe(inputs []string) string {
	in := "?"
	if len(inputs) == 1 {
		in = inputs[0]
	}

	return "Rank(" + in + ", method='" + string(r.Method) + "')"
}

// Compute ranks every row of inputs[0] and then sets each cell whose mask
// entry is false to NaN. The ranking primitive puts NaN inputs last; the
// mask override is what turns "missing" into "not ranked".
//
// Errors: ErrUnknownRankMethod, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(r * c log c).
func (r Rank) Compute(inputs []matrix.Matrix, mask *matrix.Mask) (*matrix.Dense, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) != 1 {
		return nil, factorErrorf(fmt.Sprintf("Rank.Compute: %d inputs", len(inputs)), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateMaskShape(inputs[0], mask); err != nil {
		return nil, factorErrorf("Rank.Compute", err)
	}

	ranked, err := matrix.MapRows(inputs[0], func(_ int, row, out []float64) error {
		ranks, err := rank.Data(row, r.Method)
		if err != nil {
			return err
		}
		copy(out, ranks)
		return nil
	})
	if err != nil {
		return nil, factorErrorf("Rank.Compute", err)
	}

	return matrix.FillMasked(ranked, mask, math.NaN())
}
