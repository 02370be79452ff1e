//go:build !windows

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OpenUnsupported(t *testing.T) {
	sec, err := NewRegistry().Open(`Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`)
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Nil(t, sec)
}
