//go:build windows

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows/registry"
)

const testKeyPath = `Software\themetoggle-test`

func prepareTestKey(t *testing.T) {
	t.Helper()
	k, _, err := registry.CreateKey(registry.CURRENT_USER, testKeyPath, registry.ALL_ACCESS)
	require.NoError(t, err)
	require.NoError(t, k.SetDWordValue("AppsUseLightTheme", 1))
	require.NoError(t, k.SetQWordValue("Wide", 1))
	require.NoError(t, k.SetStringValue("Name", "light"))
	require.NoError(t, k.Close())
	t.Cleanup(func() { _ = registry.DeleteKey(registry.CURRENT_USER, testKeyPath) })
}

func TestRegistry_OpenMissing(t *testing.T) {
	_, err := NewRegistry().Open(`Software\themetoggle-test-missing`)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_GetSet(t *testing.T) {
	prepareTestKey(t)

	sec, err := NewRegistry().Open(testKeyPath)
	require.NoError(t, err)
	defer sec.Close()

	v, err := sec.GetUint32("AppsUseLightTheme")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	require.NoError(t, sec.SetUint32("AppsUseLightTheme", 0))
	v, err = sec.GetUint32("AppsUseLightTheme")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	_, err = sec.GetUint32("SystemUsesLightTheme")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = sec.GetUint32("Wide")
	require.ErrorIs(t, err, ErrWrongType, "qword is not accepted")

	_, err = sec.GetUint32("Name")
	require.ErrorIs(t, err, ErrWrongType)
}
