package expression

import (
	"testing"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compiled(t *testing.T, src string) *vm.Program {
	t.Helper()
	p, err := expr.Compile(src)
	require.NoError(t, err)

	return p
}

func TestProgramCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := newProgramCache(2)
	c.set("a", compiled(t, "1"))
	c.set("b", compiled(t, "2"))

	// touch "a" so "b" becomes the eviction candidate
	_, ok := c.get("a")
	require.True(t, ok)
	c.set("c", compiled(t, "3"))

	_, ok = c.get("b")
	assert.False(t, ok)
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestProgramCache_ReplaceAndDefaultCapacity(t *testing.T) {
	t.Parallel()

	c := newProgramCache(0)
	assert.Equal(t, DefaultCacheSize, c.capacity)

	p1, p2 := compiled(t, "1"), compiled(t, "2")
	c.set("k", p1)
	c.set("k", p2)
	got, ok := c.get("k")
	require.True(t, ok)
	assert.Same(t, p2, got)
	assert.Equal(t, 1, c.len())
}
