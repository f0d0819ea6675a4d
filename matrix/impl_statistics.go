// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide cross-sectional (per-row) statistics over panels with missing data.
//   - Missing cells are those that are NaN or masked out; they never contribute.
//
// Exposed API:
//   - RowPercentile(X, mask, q) -> per-row q-th percentile (linear interpolation)
//
// Determinism & Performance:
//   - Fixed i→j traversal; one scratch buffer reused across rows.

package matrix

import (
	"math"
	"slices"
)

const opRowPercentile = "RowPercentile"

// rowPercentile computes, for every row i, the q-th percentile of the valid
// (mask true and non-NaN) values of X[i,*].
// Implementation:
//   - Stage 1: validate X/mask shapes and q ∈ [0,100].
//   - Stage 2: per row, gather valid values into scratch and sort ascending.
//   - Stage 3: linear interpolation between closest ranks:
//     pos = q/100*(n-1); v[lo] + (v[hi]-v[lo])*(pos-lo).
//
// Behavior highlights:
//   - A row without any valid value yields NaN.
//   - mask == nil means "every cell valid".
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from validation.
//   - ErrNaNInf when q is not finite; ErrOutOfRange when q ∉ [0,100].
//
// Complexity:
//   - Time O(r * c log c), Space O(c) scratch + O(r) result.
func rowPercentile(X Matrix, mask *Mask, q float64) ([]float64, error) {
	if mask == nil {
		if err := ValidateNotNil(X); err != nil {
			return nil, matrixErrorf(opRowPercentile, err)
		}
	} else if err := ValidateMaskShape(X, mask); err != nil {
		return nil, matrixErrorf(opRowPercentile, err)
	}
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return nil, matrixErrorf(opRowPercentile, ErrNaNInf)
	}
	if q < 0 || q > 100 {
		return nil, matrixErrorf(opRowPercentile, ErrOutOfRange)
	}

	r, c := X.Rows(), X.Cols()
	out := make([]float64, r)
	scratch := make([]float64, 0, c)
	for i := 0; i < r; i++ {
		scratch = scratch[:0]
		for j := 0; j < c; j++ {
			if mask != nil && !mask.data[i*c+j] {
				continue
			}
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowPercentile, err)
			}
			if !math.IsNaN(v) {
				scratch = append(scratch, v)
			}
		}
		out[i] = interpolatedPercentile(scratch, q)
	}

	return out, nil
}

// interpolatedPercentile sorts vals in place and returns the q-th percentile.
// Returns NaN for an empty slice.
func interpolatedPercentile(vals []float64, q float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	slices.Sort(vals)
	pos := q / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return vals[lo]
	}

	return vals[lo] + (vals[hi]-vals[lo])*(pos-float64(lo))
}
