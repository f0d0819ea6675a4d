// SPDX-License-Identifier: MIT

// Package matrix - Mask: boolean panel parallel to a Dense.
//
// Purpose:
//   - Carry per-cell validity ("this entity has data on this step") and the
//     outputs of boolean terms (filters) with the same row-major layout as Dense.
//
// AI-Hints:
//   - A Mask and the Dense it describes MUST have the same shape; use ValidateMaskShape.
//   - NewMaskFilled(r, c, true) is the neutral "everything valid" mask.

package matrix

import (
	"fmt"
	"strings"
)

// Mask is a row-major r×c panel of booleans.
type Mask struct {
	r, c int
	data []bool
}

// NewMask allocates an r×c mask with every cell false.
// Errors: ErrInvalidDimensions.
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Mask{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// NewMaskFilled allocates an r×c mask with every cell set to v.
func NewMaskFilled(rows, cols int, v bool) (*Mask, error) {
	mk, err := NewMask(rows, cols)
	if err != nil {
		return nil, err
	}
	if v {
		for idx := range mk.data {
			mk.data[idx] = true
		}
	}

	return mk, nil
}

// MaskFromRows builds a mask from a rectangular [][]bool (copied).
// Errors: ErrInvalidDimensions on empty input, ErrBadShape on ragged rows.
func MaskFromRows(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("MaskFromRows", ErrInvalidDimensions)
	}
	c := len(rows[0])
	mk := &Mask{r: len(rows), c: c, data: make([]bool, 0, len(rows)*c)}
	for i := range rows {
		if len(rows[i]) != c {
			return nil, matrixErrorf("MaskFromRows", ErrBadShape)
		}
		mk.data = append(mk.data, rows[i]...)
	}

	return mk, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (mk *Mask) Rows() int { return mk.r }

// Cols returns the number of columns. Complexity: O(1).
func (mk *Mask) Cols() int { return mk.c }

// At returns the flag at (i,j) or ErrOutOfRange.
func (mk *Mask) At(i, j int) (bool, error) {
	if i < 0 || i >= mk.r || j < 0 || j >= mk.c {
		return false, fmt.Errorf("Mask.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return mk.data[i*mk.c+j], nil
}

// Set writes the flag at (i,j) or returns ErrOutOfRange.
func (mk *Mask) Set(i, j int, v bool) error {
	if i < 0 || i >= mk.r || j < 0 || j >= mk.c {
		return fmt.Errorf("Mask.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	mk.data[i*mk.c+j] = v

	return nil
}

// Row returns a copy of row i.
func (mk *Mask) Row(i int) ([]bool, error) {
	if i < 0 || i >= mk.r {
		return nil, fmt.Errorf("Mask.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]bool, mk.c)
	copy(out, mk.data[i*mk.c:(i+1)*mk.c])

	return out, nil
}

// rowSlice returns row i without copying or bounds checks (package kernels only).
func (mk *Mask) rowSlice(i int) []bool {
	return mk.data[i*mk.c : (i+1)*mk.c]
}

// SliceRows returns rows [r0, r0+n) sharing storage with mk.
// Errors: ErrBadShape.
func (mk *Mask) SliceRows(r0, n int) (*Mask, error) {
	if r0 < 0 || n <= 0 || r0+n > mk.r {
		return nil, fmt.Errorf("Mask.SliceRows(%d,%d): %w", r0, n, ErrBadShape)
	}

	return &Mask{r: n, c: mk.c, data: mk.data[r0*mk.c : (r0+n)*mk.c : (r0+n)*mk.c]}, nil
}

// Clone returns a deep copy.
func (mk *Mask) Clone() *Mask {
	cp := make([]bool, len(mk.data))
	copy(cp, mk.data)

	return &Mask{r: mk.r, c: mk.c, data: cp}
}

// Count returns the number of true cells.
func (mk *Mask) Count() int {
	n := 0
	for _, v := range mk.data {
		if v {
			n++
		}
	}

	return n
}

// And returns the cell-wise conjunction of mk and other.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (mk *Mask) And(other *Mask) (*Mask, error) {
	if other == nil {
		return nil, matrixErrorf("Mask.And", ErrNilMatrix)
	}
	if mk.r != other.r || mk.c != other.c {
		return nil, matrixErrorf("Mask.And", ErrDimensionMismatch)
	}
	out := &Mask{r: mk.r, c: mk.c, data: make([]bool, len(mk.data))}
	for idx := range mk.data {
		out.data[idx] = mk.data[idx] && other.data[idx]
	}

	return out, nil
}

// Not returns the cell-wise negation of mk.
func (mk *Mask) Not() *Mask {
	out := &Mask{r: mk.r, c: mk.c, data: make([]bool, len(mk.data))}
	for idx, v := range mk.data {
		out.data[idx] = !v
	}

	return out
}

// String renders rows as 0/1 digits for diagnostics.
func (mk *Mask) String() string {
	var b strings.Builder
	for i := 0; i < mk.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range mk.rowSlice(i) {
			if v {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
			if j+1 < mk.c {
				b.WriteString(DefaultRowSeparator)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
