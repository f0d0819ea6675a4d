package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/expression"
	"github.com/katalvlaran/lvfactor/term"
)

func TestNew_Invariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		template string
		binds    []term.ID
		ok       bool
	}{
		{"single", "x_0 + (1.0)", []term.ID{4}, true},
		{"repeated placeholder", "x_0 * x_0", []term.ID{4}, true},
		{"two leaves", "(x_1) - (x_0)", []term.ID{4, 7}, true},
		{"no binds", "1.0", nil, false},
		{"gap", "x_0 + x_2", []term.ID{1, 2, 3}, false},
		{"unused bind", "x_0", []term.ID{1, 2}, false},
		{"missing bind", "x_0 + x_1", []term.ID{1}, false},
		{"duplicate bind", "x_0 + x_1", []term.ID{3, 3}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, err := expression.New(tc.template, tc.binds)
			if !tc.ok {
				assert.ErrorIs(t, err, expression.ErrInvariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.template, e.Template())
			assert.Equal(t, tc.binds, e.Binds())
		})
	}
}

func TestNew_CopiesBinds(t *testing.T) {
	t.Parallel()

	binds := []term.ID{1, 2}
	e, err := expression.New("x_0 + x_1", binds)
	require.NoError(t, err)
	binds[0] = 9
	assert.Equal(t, []term.ID{1, 2}, e.Binds())

	got := e.Binds()
	got[1] = 9
	assert.Equal(t, []term.ID{1, 2}, e.Binds())
}

func TestMerge_SharedLeafCollapses(t *testing.T) {
	t.Parallel()

	// A = close - open, B = open * volume
	a, err := expression.New("x_0 - x_1", []term.ID{10, 11})
	require.NoError(t, err)
	b, err := expression.New("x_0 * x_1", []term.ID{11, 12})
	require.NoError(t, err)

	left, right, binds := a.Merge(b)
	assert.Equal(t, "x_0 - x_1", left)
	assert.Equal(t, "x_1 * x_2", right)
	assert.Equal(t, []term.ID{10, 11, 12}, binds)

	merged, err := expression.New("("+left+") + ("+right+")", binds)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len())
}

func TestMerge_SimultaneousRenumbering(t *testing.T) {
	t.Parallel()

	// B's x_0 and x_1 swap places in the union; a sequential rewrite would collide.
	a, err := expression.New("x_0 / x_1", []term.ID{1, 2})
	require.NoError(t, err)
	b, err := expression.New("x_0 - x_1", []term.ID{2, 1})
	require.NoError(t, err)

	_, right, binds := a.Merge(b)
	assert.Equal(t, "x_1 - x_0", right)
	assert.Equal(t, []term.ID{1, 2}, binds)
}

func TestMerge_LeafAndManyPlaceholders(t *testing.T) {
	t.Parallel()

	ids := make([]term.ID, 12)
	tmpl := "x_0"
	for i := range ids {
		ids[i] = term.ID(i)
		if i > 0 {
			tmpl += " + " + expression.VarName(i)
		}
	}
	a, err := expression.New(tmpl, ids)
	require.NoError(t, err)

	// Existing leaf keeps its index, x_10 and x_1 are not confused.
	_, right, binds := a.Merge(expression.Leaf(10))
	assert.Equal(t, "x_10", right)
	assert.Len(t, binds, 12)

	_, right, binds = a.Merge(expression.Leaf(99))
	assert.Equal(t, "x_12", right)
	assert.Equal(t, term.ID(99), binds[12])
}

func TestFormatConstant(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		2:       "2.0",
		-3:      "-3.0",
		0.5:     "0.5",
		1e21:    "1e+21",
		1.25e-7: "1.25e-07",
	}
	for v, want := range cases {
		got, err := expression.FormatConstant(v)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	got, err := expression.Placeholders("abs(x_2) + x_0 * x_2 - x_10")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 10}, got)
}

func TestMirrorComparison(t *testing.T) {
	t.Parallel()

	for _, op := range expression.Comparisons {
		m, ok := expression.MirrorComparison(op)
		require.True(t, ok, op)
		back, _ := expression.MirrorComparison(m)
		assert.Equal(t, op, back)
	}
	_, ok := expression.MirrorComparison("+")
	assert.False(t, ok)
}
