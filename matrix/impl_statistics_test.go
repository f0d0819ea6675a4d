// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/matrix"
)

// TestRowPercentile_Interpolation checks linear interpolation between closest ranks.
func TestRowPercentile_Interpolation(t *testing.T) {
	X := MustRows(t, [][]float64{
		{4, 1, 3, 2},
		{10, 20, 30, 40},
	})

	for _, tc := range []struct {
		q    float64
		want []float64
	}{
		{0, []float64{1, 10}},
		{50, []float64{2.5, 25}},
		{100, []float64{4, 40}},
		{25, []float64{1.75, 17.5}},
	} {
		got, err := matrix.RowPercentile(X, nil, tc.q)
		require.NoError(t, err)
		require.InDeltaSlice(t, tc.want, got, 1e-12, "q=%v", tc.q)
	}

	// Input order is untouched by the in-place scratch sort.
	requirePanel(t, [][]float64{{4, 1, 3, 2}, {10, 20, 30, 40}}, X)
}

// TestRowPercentile_MissingData verifies that NaN and masked cells never contribute.
func TestRowPercentile_MissingData(t *testing.T) {
	X := MustRows(t, [][]float64{
		{1, nan, 3, 100},
		{nan, nan, 5, 6},
	})
	mk := MustMask(t, [][]bool{
		{true, true, true, false},
		{true, true, false, false},
	})

	got, err := matrix.RowPercentile(hide{X}, mk, 50)
	require.NoError(t, err)
	require.Equal(t, 2.0, got[0])
	require.True(t, math.IsNaN(got[1]), "row without valid values yields NaN")
}

func TestRowPercentile_Errors(t *testing.T) {
	X := MustDense(t, 1, 2)

	_, err := matrix.RowPercentile(X, nil, -0.1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.RowPercentile(X, nil, 100.5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.RowPercentile(X, nil, nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.RowPercentile(nil, nil, 50)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.RowPercentile(X, MustMask(t, [][]bool{{true}}), 50)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
