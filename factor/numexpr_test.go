package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/filter"
	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/term"
)

func TestNumExprFactor_ComputeEndToEnd(t *testing.T) {
	t.Parallel()

	g := term.NewGraph()
	cols := columns(t, g, "close", "open")
	closeF, openF := cols[0], cols[1]

	spread, err := closeF.Sub(openF)
	require.NoError(t, err)
	ret, err := spread.Div(openF) // (close - open) / open
	require.NoError(t, err)

	n, err := ret.Node()
	require.NoError(t, err)
	ne := n.(factor.NumExprFactor)

	closeX, err := matrix.FromRows([][]float64{{11, 18}, {12, 30}})
	require.NoError(t, err)
	openX, err := matrix.FromRows([][]float64{{10, 20}, {10, 20}})
	require.NoError(t, err)

	// Inputs are supplied in bind order.
	arrays := map[term.ID]matrix.Matrix{closeF.ID(): closeX, openF.ID(): openX}
	inputs := make([]matrix.Matrix, 0, 2)
	for _, id := range ret.Inputs() {
		inputs = append(inputs, arrays[id])
	}

	out, err := ne.Compute(expression.NewEvaluator(), inputs)
	require.NoError(t, err)
	want, err := matrix.FromRows([][]float64{{0.1, -0.1}, {0.2, 0.5}})
	require.NoError(t, err)
	ok, err := matrix.AllClose(out, want, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok, out.String())

	_, err = ne.Compute(expression.NewEvaluator(), inputs[:1])
	assert.ErrorIs(t, err, expression.ErrShapeMismatch)
}

func TestNumExprFilter_ComputeFromComparison(t *testing.T) {
	t.Parallel()

	g := term.NewGraph()
	closeF := columns(t, g, "close")[0]
	up, err := closeF.Gt(10)
	require.NoError(t, err)

	n, err := up.Node()
	require.NoError(t, err)
	nf := n.(filter.NumExprFilter)

	X, err := matrix.FromRows([][]float64{{5, 11, 12}})
	require.NoError(t, err)
	mask, err := matrix.MaskFromRows([][]bool{{true, true, false}})
	require.NoError(t, err)

	got, err := nf.Compute(expression.NewEvaluator(), []matrix.Matrix{X}, mask)
	require.NoError(t, err)
	row, err := got.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, row)
}

func TestPercentileBetween(t *testing.T) {
	t.Parallel()

	g := term.NewGraph()
	closeF := columns(t, g, "close")[0]

	band, err := closeF.PercentileBetween(10, 90)
	require.NoError(t, err)
	assert.Equal(t, []term.ID{closeF.ID()}, band.Inputs())

	n, err := band.Node()
	require.NoError(t, err)
	pf, ok := n.(filter.PercentileFilter)
	require.True(t, ok)
	lo, hi := pf.Bounds()
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 90.0, hi)
	assert.Equal(t, "PercentileFilter(close, min_percentile=10, max_percentile=90)", band.String())

	// Bounds are passed through unchecked.
	odd, err := closeF.PercentileBetween(95, 5)
	require.NoError(t, err)
	assert.NotEqual(t, band.ID(), odd.ID())
}
