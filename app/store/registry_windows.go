//go:build windows

package store

import (
	"errors"
	"fmt"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/sys/windows/registry"
)

// Registry implements Interface on top of HKEY_CURRENT_USER.
type Registry struct {
	root registry.Key
}

// NewRegistry creates a store rooted at HKEY_CURRENT_USER.
func NewRegistry() *Registry {
	return &Registry{root: registry.CURRENT_USER}
}

// Open opens an existing key with read and write access. Keys are never created.
func (r *Registry) Open(path string) (Section, error) {
	k, err := registry.OpenKey(r.root, path, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	log.Printf("[DEBUG] opened registry key %s", path)
	return &regSection{key: k, path: path}, nil
}

type regSection struct {
	key  registry.Key
	path string
}

// GetUint32 reads a REG_DWORD value. Other value types, including REG_QWORD, are rejected.
func (s *regSection) GetUint32(name string) (uint32, error) {
	v, typ, err := s.key.GetIntegerValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, fmt.Errorf("get %s: %w", name, ErrNotFound)
		}
		if errors.Is(err, registry.ErrUnexpectedType) {
			return 0, fmt.Errorf("get %s: %w", name, ErrWrongType)
		}
		return 0, fmt.Errorf("get %s: %w", name, err)
	}
	if typ != registry.DWORD {
		return 0, fmt.Errorf("get %s: type %d: %w", name, typ, ErrWrongType)
	}
	return uint32(v), nil
}

// SetUint32 writes a REG_DWORD value.
func (s *regSection) SetUint32(name string, val uint32) error {
	if err := s.key.SetDWordValue(name, val); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}

func (s *regSection) Close() error {
	if err := s.key.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return nil
}
