// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and row-wise kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (rank, masking, compare).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED by design (internal micro-kernels).
//   - Public API uses these via thin wrappers in api.go.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.

package matrix

import "math"

// RowFunc maps one input row to one output row of the same length.
// row must be treated as read-only; out is pre-allocated with len(out) == len(row).
type RowFunc func(i int, row, out []float64) error

// ewMapRows applies f to every row of X and collects the results in a new Dense.
// Time: O(r*c + cost(f)). Space: O(r*c). Deterministic i order.
//
// AI-Hint: the per-row primitive for cross-sectional transforms (rank, demean, zscore).
func ewMapRows(X Matrix, f RowFunc) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("MapRows", err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("MapRows", err)
	}

	// Dense fast-path: hand out sub-slices of the flat buffers.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			if err = f(i, d.rowSlice(i), out.rowSlice(i)); err != nil {
				return nil, matrixErrorf("MapRows", err)
			}
		}
		return out, nil
	}

	// Generic fallback: stage each row into a scratch buffer via At.
	scratch := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("MapRows", e)
			}
			scratch[j] = v
		}
		if err = f(i, scratch, out.rowSlice(i)); err != nil {
			return nil, matrixErrorf("MapRows", err)
		}
	}

	return out, nil
}

// ewFillMasked copies X and overwrites every cell whose mask flag is false with val.
// Time: O(r*c). Space: O(r*c). val may be NaN (the missing-data marker).
func ewFillMasked(X Matrix, mask *Mask, val float64) (*Dense, error) {
	if err := ValidateMaskShape(X, mask); err != nil {
		return nil, matrixErrorf("FillMasked", err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FillMasked", err)
	}

	if d, ok := X.(*Dense); ok {
		n := r * c
		for idx := 0; idx < n; idx++ {
			if mask.data[idx] {
				out.data[idx] = d.data[idx]
			} else {
				out.data[idx] = val
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("FillMasked", e)
			}
			if !mask.data[i*c+j] {
				v = val
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ewReplaceInfNaN copies X replacing any {±Inf, NaN} by val (finite).
// Time: O(r*c). Space: O(r*c).
func ewReplaceInfNaN(X Matrix, val float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("ReplaceInfNaN", err)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, matrixErrorf("ReplaceInfNaN", ErrNaNInf)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("ReplaceInfNaN", err)
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("ReplaceInfNaN", e)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = val
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - equalNaN=true treats NaN==NaN (panel outputs use NaN as "not applicable").
//   - +Inf equals +Inf; -Inf equals -Inf.
func ewAllClose(a, b Matrix, rtol, atol float64, equalNaN bool) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // shapes validated; bounds are safe
			bv, _ = b.At(i, j)
			if !closeEnough(av, bv, rtol, atol, equalNaN) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind ewAllClose.
func closeEnough(a, b, rtol, atol float64, equalNaN bool) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return equalNaN && aNaN && bNaN
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
