// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common panel tasks.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "math"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewNaN returns a rows×cols *Dense with every cell set to NaN ("nothing computed yet").
func NewNaN(rows, cols int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	d.Fill(math.NaN())

	return d, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// MapRows applies f to each row of X (read-only input row, pre-allocated output row)
// and returns the collected panel. Errors returned by f abort the pass and are wrapped.
// Time: O(r*c + cost(f)). Space: O(r*c).
//
// AI-Hints: cross-sectional transforms (rank, demean) are one MapRows call.
func MapRows(X Matrix, f RowFunc) (*Dense, error) { return ewMapRows(X, f) }

// FillMasked returns a copy of X where every cell with mask=false is replaced by val.
// Shapes must match. val may be NaN.
// Time: O(r*c). Space: O(r*c).
func FillMasked(X Matrix, mask *Mask, val float64) (*Dense, error) {
	return ewFillMasked(X, mask, val)
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by 'val' (finite).
// Policy: 'val' must be finite; otherwise ErrNaNInf is returned.
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) { return ewReplaceInfNaN(m, val) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol, false)
}

// AllCloseNaN is AllClose with NaN treated as equal to NaN, which is the
// comparison panels with missing data need.
func AllCloseNaN(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol, true)
}

// RowPercentile returns the q-th percentile (q ∈ [0,100], linear interpolation)
// of each row's valid values. mask may be nil. Rows with no valid value yield NaN.
// Time: O(r * c log c).
func RowPercentile(X Matrix, mask *Mask, q float64) ([]float64, error) {
	return rowPercentile(X, mask, q)
}

// AsDense returns m itself when it is a *Dense, otherwise a *Dense copy of it.
// Kernels that slice rows (SliceRows) accept any Matrix through this.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, matrixErrorf("AsDense", e)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}
