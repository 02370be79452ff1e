//go:build !windows

package store

import "fmt"

// Registry is a stub on platforms without the Windows registry, every Open fails with ErrUnsupported.
type Registry struct{}

// NewRegistry creates a store that can't open anything.
func NewRegistry() *Registry {
	return &Registry{}
}

// Open always returns ErrUnsupported.
func (r *Registry) Open(path string) (Section, error) {
	return nil, fmt.Errorf("open %s: %w", path, ErrUnsupported)
}
