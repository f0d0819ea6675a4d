package filter

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/term"
)

// PercentileFilter selects, per row, the entities whose value lies between
// the MinPercentile-th and MaxPercentile-th percentile of that row's valid
// values (both ends inclusive).
//
// Bounds are stored as given: range and ordering are not checked when the
// filter is built. Compute rejects bounds outside [0, 100] with
// matrix.ErrOutOfRange; min > max simply selects nothing.
type PercentileFilter struct {
	Input         term.ID
	MinPercentile float64
	MaxPercentile float64
}

var (
	_ term.Node      = PercentileFilter{}
	_ term.Describer = PercentileFilter{}
)

// NewPercentileBetween interns a PercentileFilter over input.
func NewPercentileBetween(g *term.Graph, input term.ID, minPercentile, maxPercentile float64) (Filter, error) {
	id, err := g.Intern(PercentileFilter{Input: input, MinPercentile: minPercentile, MaxPercentile: maxPercentile})
	if err != nil {
		return Filter{}, err
	}

	return Filter{g: g, id: id}, nil
}

func (p PercentileFilter) Kind() term.Kind { return term.KindFilter }

func (p PercentileFilter) StaticIdentity() string {
	return "PercentileFilter(min_percentile=" + formatBound(p.MinPercentile) +
		",max_percentile=" + formatBound(p.MaxPercentile) + ")"
}

func (p PercentileFilter) Inputs() []term.ID { return []term.ID{p.Input} }

func (p PercentileFilter) DType() term.DType { return term.Bool }

func (p PercentileFilter) WindowLength() int { return 0 }

func (p PercentileFilter) Domain() term.Domain { return term.GenericDomain }

// Bounds returns (MinPercentile, MaxPercentile).
func (p PercentileFilter) Bounds() (minPercentile, maxPercentile float64) {
	return p.MinPercentile, p.MaxPercentile
}

func (p PercentileFilter) Describe(inputs []string) string {
	in := "?"
	if len(inputs) == 1 {
		in = inputs[0]
	}

	return "PercentileFilter(" + in + ", min_percentile=" + formatBound(p.MinPercentile) +
		", max_percentile=" + formatBound(p.MaxPercentile) + ")"
}

// Compute returns the membership mask for data.
//
// Implementation:
//   - Stage 1: NaN-out invalid cells so they never count towards a percentile.
//   - Stage 2: per row, linear-interpolated lower and upper percentile values.
//   - Stage 3: a cell passes when it is valid and lo <= v <= hi.
//
// mask may be nil (every cell valid). Rows without valid values select nothing.
// Complexity: O(r * c log c).
func (p PercentileFilter) Compute(data matrix.Matrix, mask *matrix.Mask) (*matrix.Mask, error) {
	// Stage 1
	X := data
	if mask != nil {
		filled, err := matrix.FillMasked(data, mask, math.NaN())
		if err != nil {
			return nil, filterErrorf("PercentileFilter.Compute", err)
		}
		X = filled
	}

	// Stage 2
	lo, err := matrix.RowPercentile(X, nil, p.MinPercentile)
	if err != nil {
		return nil, filterErrorf("PercentileFilter.Compute: min_percentile", err)
	}
	hi, err := matrix.RowPercentile(X, nil, p.MaxPercentile)
	if err != nil {
		return nil, filterErrorf("PercentileFilter.Compute: max_percentile", err)
	}

	// Stage 3
	r, c := X.Rows(), X.Cols()
	out, err := matrix.NewMask(r, c)
	if err != nil {
		return nil, filterErrorf("PercentileFilter.Compute", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := X.At(i, j)
			if v >= lo[i] && v <= hi[i] { // false for NaN v or NaN bounds
				_ = out.Set(i, j, true)
			}
		}
	}

	return out, nil
}

func formatBound(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
