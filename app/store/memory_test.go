package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Open(t *testing.T) {
	m := NewMemory()

	t.Run("missing section", func(t *testing.T) {
		_, err := m.Open(`Software\Missing`)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty section", func(t *testing.T) {
		m.AddSection(`Software\Empty`)
		sec, err := m.Open(`Software\Empty`)
		require.NoError(t, err)
		defer sec.Close()
		_, err = sec.GetUint32("AppsUseLightTheme")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory()
	m.Put(`Software\Test`, "a", 5)

	sec, err := m.Open(`Software\Test`)
	require.NoError(t, err)

	v, err := sec.GetUint32("a")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	require.NoError(t, sec.SetUint32("a", 0))
	require.NoError(t, sec.SetUint32("b", 1))

	v, ok := m.Lookup(`Software\Test`, "a")
	assert.True(t, ok)
	assert.Equal(t, uint32(0), v)
	v, ok = m.Lookup(`Software\Test`, "b")
	assert.True(t, ok)
	assert.Equal(t, uint32(1), v)

	_, ok = m.Lookup(`Software\Test`, "c")
	assert.False(t, ok)
}

func TestMemory_ClosedSection(t *testing.T) {
	m := NewMemory()
	m.Put(`Software\Test`, "a", 1)

	sec, err := m.Open(`Software\Test`)
	require.NoError(t, err)
	require.NoError(t, sec.Close())

	_, err = sec.GetUint32("a")
	require.Error(t, err)
	require.Error(t, sec.SetUint32("a", 0))

	v, _ := m.Lookup(`Software\Test`, "a")
	assert.Equal(t, uint32(1), v, "closed section must not write")
}
