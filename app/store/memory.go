package store

import (
	"fmt"
	"sync"
)

// Memory implements Interface with sections kept in memory. Sections must be added with
// Put before they can be opened, matching the registry where sections are never created by Open.
type Memory struct {
	mu       sync.RWMutex
	sections map[string]map[string]uint32
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sections: make(map[string]map[string]uint32)}
}

// Put sets a value in the section, creating the section if needed.
func (m *Memory) Put(path, name string, val uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sections[path] == nil {
		m.sections[path] = make(map[string]uint32)
	}
	m.sections[path][name] = val
}

// AddSection creates an empty section.
func (m *Memory) AddSection(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sections[path] == nil {
		m.sections[path] = make(map[string]uint32)
	}
}

// Lookup returns a value and whether it exists, bypassing Open.
func (m *Memory) Lookup(path, name string) (uint32, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.sections[path][name]
	return v, ok
}

// Open returns the section at path or ErrNotFound.
func (m *Memory) Open(path string) (Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sections[path]; !ok {
		return nil, fmt.Errorf("open %s: %w", path, ErrNotFound)
	}
	return &memSection{store: m, path: path}, nil
}

type memSection struct {
	store  *Memory
	path   string
	closed bool
}

// GetUint32 returns the value or ErrNotFound if it is not set.
func (s *memSection) GetUint32(name string) (uint32, error) {
	if s.closed {
		return 0, fmt.Errorf("get %s: section closed", name)
	}
	v, ok := s.store.Lookup(s.path, name)
	if !ok {
		return 0, fmt.Errorf("get %s: %w", name, ErrNotFound)
	}
	return v, nil
}

// SetUint32 sets the value, creating it if missing.
func (s *memSection) SetUint32(name string, val uint32) error {
	if s.closed {
		return fmt.Errorf("set %s: section closed", name)
	}
	s.store.Put(s.path, name, val)
	return nil
}

func (s *memSection) Close() error {
	s.closed = true
	return nil
}
