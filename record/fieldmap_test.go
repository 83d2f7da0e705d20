package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMapOrder(t *testing.T) {
	fm := NewFieldMap()
	fm.Set("b", 1)
	fm.Set("a", 2)
	fm.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, fm.Keys())

	// re-setting keeps position
	fm.Set("a", 20)
	assert.Equal(t, []string{"b", "a", "c"}, fm.Keys())

	// delete + re-add moves to the end
	assert.True(t, fm.Delete("b"))
	fm.Set("b", 10)
	assert.Equal(t, []string{"a", "c", "b"}, fm.Keys())
}

func TestFieldMapGet(t *testing.T) {
	fm := NewFieldMap()
	fm.Set("k", "v")

	v, ok := fm.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = fm.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, "v", fm.GetOr("k", "fallback"))
	assert.Equal(t, "fallback", fm.GetOr("missing", "fallback"))
}

func TestFieldMapDelete(t *testing.T) {
	fm := NewFieldMap()
	fm.Set("k", "v")

	assert.True(t, fm.Delete("k"))
	assert.False(t, fm.Delete("k"))
	assert.Equal(t, 0, fm.Len())
}

func TestFieldMapClear(t *testing.T) {
	fm := FromMap(map[string]any{"a": 1, "b": 2})
	require.Equal(t, 2, fm.Len())

	fm.Clear()
	assert.Equal(t, 0, fm.Len())
	assert.Empty(t, fm.Keys())

	// usable after clearing
	fm.Set("c", 3)
	assert.Equal(t, []string{"c"}, fm.Keys())
}

func TestFieldMapClone(t *testing.T) {
	fm := NewFieldMap()
	fm.Set("a", 1)
	fm.Set("b", 2)

	clone := fm.Clone()
	assert.Equal(t, fm.Keys(), clone.Keys())
	assert.True(t, fm.Equal(clone))

	clone.Set("c", 3)
	assert.False(t, fm.Has("c"))
}

func TestFieldMapEqualIgnoresOrder(t *testing.T) {
	a := NewFieldMap()
	a.Set("x", 1)
	a.Set("y", 2)

	b := NewFieldMap()
	b.Set("y", 2)
	b.Set("x", 1)

	assert.True(t, a.Equal(b))
	assert.True(t, a.EqualMap(map[string]any{"x": 1, "y": 2}))
	assert.False(t, a.EqualMap(map[string]any{"x": 1}))
	assert.False(t, a.Equal(nil))
}

func TestFieldMapAllStopsEarly(t *testing.T) {
	fm := FromMap(map[string]any{"a": 1, "b": 2, "c": 3})

	count := 0
	for range fm.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)

	// restartable
	count = 0
	for range fm.All() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestFieldMapMap(t *testing.T) {
	fm := NewFieldMap()
	fm.Set("a", 1)

	m := fm.Map()
	assert.Equal(t, map[string]any{"a": 1}, m)

	m["b"] = 2
	assert.False(t, fm.Has("b"))
}

func TestFieldMapString(t *testing.T) {
	fm := NewFieldMap()
	fm.Set("k1", "v1")
	fm.Set("k2", 2)

	assert.Equal(t, "map[k1:v1 k2:2]", fm.String())
	assert.Equal(t, "map[]", NewFieldMap().String())
}
