package expression_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

func TestEvaluateFloat_Arithmetic(t *testing.T) {
	t.Parallel()

	ev := expression.NewEvaluator()
	a := dense(t, [][]float64{{1, 2}, {3, 4}})
	b := dense(t, [][]float64{{10, 20}, {30, 40}})

	cases := []struct {
		template string
		want     [][]float64
	}{
		{"(x_0) + (x_1)", [][]float64{{11, 22}, {33, 44}}},
		{"x_1 / x_0", [][]float64{{10, 10}, {10, 10}}},
		{"x_0 ** (2.0)", [][]float64{{1, 4}, {9, 16}}},
		{"x_1 % (7.0)", [][]float64{{3, 6}, {2, 5}}},
		{"-(x_0 - x_1)", [][]float64{{9, 18}, {27, 36}}},
		{"(2.0) - x_0", [][]float64{{1, 0}, {-1, -2}}},
		{"abs(x_0 - x_1)", [][]float64{{9, 18}, {27, 36}}},
		{"sqrt(x_0 * x_0)", [][]float64{{1, 2}, {3, 4}}},
	}
	for _, tc := range cases {
		got, err := ev.EvaluateFloat(tc.template, expression.Bind([]matrix.Matrix{a, b}))
		require.NoError(t, err, tc.template)
		ok, err := matrix.AllClose(got, dense(t, tc.want), 1e-12, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok, "%s: %v", tc.template, got)
	}
}

func TestEvaluateFloat_MathFuncs(t *testing.T) {
	t.Parallel()

	ev := expression.NewEvaluator()
	x := dense(t, [][]float64{{0.5}})
	for _, name := range expression.MathFuncs {
		got, err := ev.EvaluateFloat(name+"(x_0)", expression.Bind([]matrix.Matrix{x}))
		require.NoError(t, err, name)
		v, _ := got.At(0, 0)
		if name == "arccosh" {
			assert.True(t, math.IsNaN(v), "arccosh(0.5) is NaN")
			continue
		}
		assert.False(t, math.IsNaN(v), name)
	}
}

func TestEvaluateFloat_NaNPropagates(t *testing.T) {
	t.Parallel()

	ev := expression.NewEvaluator()
	x := dense(t, [][]float64{{math.NaN(), 1}})
	got, err := ev.EvaluateFloat("x_0 + (1.0)", expression.Bind([]matrix.Matrix{x}))
	require.NoError(t, err)
	v0, _ := got.At(0, 0)
	v1, _ := got.At(0, 1)
	assert.True(t, math.IsNaN(v0))
	assert.Equal(t, 2.0, v1)
}

func TestEvaluateBool_Comparisons(t *testing.T) {
	t.Parallel()

	ev := expression.NewEvaluator()
	a := dense(t, [][]float64{{1, 5, math.NaN()}})
	b := dense(t, [][]float64{{2, 5, 0}})

	cases := map[string][]bool{
		"x_0 < x_1":  {true, false, false},
		"x_0 <= x_1": {true, true, false},
		"x_0 > x_1":  {false, false, false},
		"x_0 >= x_1": {false, true, false},
		"x_0 == x_1": {false, true, false},
		"x_0 != x_1": {true, false, true},
	}
	for tmpl, want := range cases {
		got, err := ev.EvaluateBool(tmpl, expression.Bind([]matrix.Matrix{a, b}))
		require.NoError(t, err, tmpl)
		row, _ := got.Row(0)
		assert.Equal(t, want, row, tmpl)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	ev := expression.NewEvaluator()
	a := dense(t, [][]float64{{1, 2}})
	b := dense(t, [][]float64{{1}, {2}})

	_, err := ev.EvaluateFloat("x_0 + x_1", expression.Bind([]matrix.Matrix{a, b}))
	assert.ErrorIs(t, err, expression.ErrShapeMismatch)

	_, err = ev.EvaluateFloat("x_0", nil)
	assert.ErrorIs(t, err, expression.ErrShapeMismatch)

	_, err = ev.EvaluateFloat("x_0 + x_1", expression.Bind([]matrix.Matrix{a}))
	assert.ErrorIs(t, err, expression.ErrEvaluation)

	_, err = ev.EvaluateFloat("x_0 +", expression.Bind([]matrix.Matrix{a}))
	assert.ErrorIs(t, err, expression.ErrEvaluation)

	// A comparison cannot be returned as float.
	_, err = ev.EvaluateFloat("x_0 < (1.0)", expression.Bind([]matrix.Matrix{a}))
	assert.ErrorIs(t, err, expression.ErrEvaluation)
}

func TestEvaluator_LogsCompilation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ev := expression.NewEvaluator(expression.WithLogger(logger), expression.WithCacheSize(1))
	a := dense(t, [][]float64{{1}})

	_, err := ev.EvaluateFloat("x_0 * (3.0)", expression.Bind([]matrix.Matrix{a}))
	require.NoError(t, err)
	_, err = ev.EvaluateFloat("x_0 * (3.0)", expression.Bind([]matrix.Matrix{a}))
	require.NoError(t, err)

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("program compiled")))
}
