package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueGet(t *testing.T) {
	t.Parallel()

	root := ValueOf(map[string]any{
		"name": "LAN",
		"nested": map[string]any{
			"type": "Internal",
		},
	})

	t.Run("present key", func(t *testing.T) {
		t.Parallel()
		v, ok := root.Get("name")
		require.True(t, ok)
		s, ok := v.Str()
		require.True(t, ok)
		assert.Equal(t, "LAN", s)
	})

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()
		_, ok := root.Get("missing")
		assert.False(t, ok)
	})

	t.Run("nested lookup", func(t *testing.T) {
		t.Parallel()
		nested, ok := root.Get("nested")
		require.True(t, ok)
		v, ok := nested.Get("type")
		require.True(t, ok)
		s, _ := v.Str()
		assert.Equal(t, "Internal", s)
	})

	t.Run("get on non-mapping", func(t *testing.T) {
		t.Parallel()
		v, _ := root.Get("name")
		_, ok := v.Get("anything")
		assert.False(t, ok)
	})

	t.Run("get on zero value", func(t *testing.T) {
		t.Parallel()
		_, ok := Value{}.Get("anything")
		assert.False(t, ok)
	})
}

func TestValueHas(t *testing.T) {
	t.Parallel()

	root := ValueOf(map[string]any{"subnet": "10.0.0.0/24"})
	assert.True(t, root.Has("subnet"))
	assert.False(t, root.Has("gateway"))
}

func TestValueStr(t *testing.T) {
	t.Parallel()

	s, ok := ValueOf("Debian").Str()
	require.True(t, ok)
	assert.Equal(t, "Debian", s)

	_, ok = ValueOf(42).Str()
	assert.False(t, ok)

	_, ok = Value{}.Str()
	assert.False(t, ok)
}

func TestValueArray(t *testing.T) {
	t.Parallel()

	t.Run("sequence of strings", func(t *testing.T) {
		t.Parallel()
		values, ok := ValueOf([]any{"LAN", "DMZ"}).Array()
		require.True(t, ok)
		require.Len(t, values, 2)
		first, _ := values[0].Str()
		second, _ := values[1].Str()
		assert.Equal(t, "LAN", first)
		assert.Equal(t, "DMZ", second)
	})

	t.Run("not a sequence", func(t *testing.T) {
		t.Parallel()
		_, ok := ValueOf("LAN").Array()
		assert.False(t, ok)
	})

	t.Run("order preserved", func(t *testing.T) {
		t.Parallel()
		values, ok := ValueOf([]any{"a", "b", "c"}).Array()
		require.True(t, ok)
		var got []string
		for _, v := range values {
			s, _ := v.Str()
			got = append(got, s)
		}
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})
}
