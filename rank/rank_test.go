package rank_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/rank"
)

func TestData_TieBreakMethods(t *testing.T) {
	t.Parallel()

	row := []float64{3, 1, 1}
	cases := []struct {
		method rank.Method
		want   []float64
	}{
		{rank.Average, []float64{3, 1.5, 1.5}},
		{rank.Min, []float64{3, 1, 1}},
		{rank.Max, []float64{3, 2, 2}},
		{rank.Dense, []float64{2, 1, 1}},
		{rank.Ordinal, []float64{3, 1, 2}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.method), func(t *testing.T) {
			t.Parallel()
			got, err := rank.Data(row, tc.method)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestData_OrdinalDistinct(t *testing.T) {
	t.Parallel()

	got, err := rank.Data([]float64{3, 1, 2}, rank.Ordinal)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, got)
}

func TestData_InputUntouched(t *testing.T) {
	t.Parallel()

	row := []float64{5, 4, 3}
	_, err := rank.Data(row, rank.Average)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 3}, row)
}

func TestData_NaNRankedLast(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	row := []float64{nan, 2, nan, 1}

	got, err := rank.Data(row, rank.Ordinal)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 4, 1}, got)

	// NaNs never tie with each other.
	got, err = rank.Data(row, rank.Average)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 4, 1}, got)

	got, err = rank.Data(row, rank.Dense)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 4, 1}, got)
}

func TestData_AllTied(t *testing.T) {
	t.Parallel()

	got, err := rank.Data([]float64{7, 7, 7, 7}, rank.Average)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, got)

	got, err = rank.Data([]float64{7, 7, 7, 7}, rank.Max)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, got)
}

func TestData_Empty(t *testing.T) {
	t.Parallel()

	got, err := rank.Data(nil, rank.Dense)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestData_UnknownMethod(t *testing.T) {
	t.Parallel()

	_, err := rank.Data([]float64{1}, rank.Method("bogus"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, rank.ErrUnknownMethod))
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Contains(t, err.Error(), "{average, min, max, dense, ordinal}")
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	for _, m := range rank.Methods() {
		got, err := rank.ParseMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := rank.ParseMethod("Ordinal")
	assert.ErrorIs(t, err, rank.ErrUnknownMethod)
}
