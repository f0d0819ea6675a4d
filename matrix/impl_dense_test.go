// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/matrix"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct {
		name string
		r, c int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative rows", -1, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.r, tc.c)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

// TestDense_AtSetBounds checks safe accessors and the wrapped coordinates.
func TestDense_AtSetBounds(t *testing.T) {
	d := MustDense(t, 2, 3)
	require.NoError(t, d.Set(1, 2, 7.5))

	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.At(2,0)")

	err = d.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = d.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_NaNPolicy checks that NaN is legal by default and rejected under WithFiniteOnly.
func TestDense_NaNPolicy(t *testing.T) {
	d := MustDense(t, 1, 2)
	require.NoError(t, d.Set(0, 0, nan))

	strict, err := matrix.NewDense(1, 2, matrix.WithFiniteOnly())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Apply(func(_, _ int, _ float64) float64 { return nan }), matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, nan}, matrix.WithFiniteOnly())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFrom_Shape checks buffer length validation and copy semantics.
func TestNewDenseFrom_Shape(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	src := []float64{1, 2, 3, 4}
	d, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 100
	v, _ := d.At(0, 0)
	require.Equal(t, 1.0, v, "constructor must copy the buffer")

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_CloneAndRawDataAreCopies verifies deep-copy semantics.
func TestDense_CloneAndRawDataAreCopies(t *testing.T) {
	d := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cl := d.Clone()
	require.NoError(t, cl.Set(0, 0, 9))

	raw := d.RawData()
	raw[1] = 9

	requirePanel(t, [][]float64{{1, 2}, {3, 4}}, d)
	requirePanel(t, [][]float64{{9, 2}, {3, 4}}, cl)
}

// TestDense_SliceRows verifies zero-copy windows and their bounds.
func TestDense_SliceRows(t *testing.T) {
	d := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	w, err := d.SliceRows(1, 2)
	require.NoError(t, err)
	r, c := w.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	requirePanel(t, [][]float64{{3, 4}, {5, 6}}, w)

	// Writes through the window land in the base.
	require.NoError(t, w.Set(0, 0, 30))
	v, _ := d.At(1, 0)
	require.Equal(t, 30.0, v)

	for _, bad := range [][2]int{{-1, 1}, {0, 0}, {2, 2}, {3, 1}} {
		_, err = d.SliceRows(bad[0], bad[1])
		require.ErrorIs(t, err, matrix.ErrBadShape, "window %v", bad)
	}
}

// TestDense_String pins the diagnostic layout.
func TestDense_String(t *testing.T) {
	d := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", d.String())
}

// TestDense_DoApply verifies row-major traversal and early exit.
func TestDense_DoApply(t *testing.T) {
	d := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	d.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, d.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i+j) }))
	requirePanel(t, [][]float64{{10, 21}, {31, 42}}, d)
}

// TestFacades_Constructors covers NewZeros, NewNaN, ZerosLike and AsDense.
func TestFacades_Constructors(t *testing.T) {
	z, err := matrix.NewZeros(1, 2)
	require.NoError(t, err)
	requirePanel(t, [][]float64{{0, 0}}, z)

	n, err := matrix.NewNaN(2, 1)
	require.NoError(t, err)
	requirePanel(t, [][]float64{{nan}, {nan}}, n)

	zl, err := matrix.ZerosLike(hide{n})
	require.NoError(t, err)
	require.Equal(t, 2, zl.Rows())
	require.Equal(t, 1, zl.Cols())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	same, err := matrix.AsDense(z)
	require.NoError(t, err)
	require.Same(t, z, same)

	src := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp, err := matrix.AsDense(hide{src})
	require.NoError(t, err)
	require.NotSame(t, src, cp)
	requirePanel(t, [][]float64{{1, 2}, {3, 4}}, cp)

	var typedNil *matrix.Dense
	_, err = matrix.AsDense(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
