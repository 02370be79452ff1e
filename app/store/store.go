// Package store provides access to the per-user preference store holding the appearance flags.
// Registry is backed by the Windows registry, Memory keeps sections in memory.
package store

import "errors"

//go:generate moq -out mocks/section.go -pkg mocks -skip-ensure -fmt goimports . Section

// ErrNotFound is returned when a section or a value is not found in the store.
var ErrNotFound = errors.New("not found")

// ErrWrongType is returned when a value exists but is not a 32-bit integer.
var ErrWrongType = errors.New("unexpected value type")

// ErrUnsupported is returned by stores on platforms without a preference store.
var ErrUnsupported = errors.New("preference store not supported on this platform")

var (
	_ Interface = (*Registry)(nil)
	_ Interface = (*Memory)(nil)
)

// Interface opens sections of the preference store.
type Interface interface {
	Open(path string) (Section, error)
}

// Section is an opened, writable section of the preference store.
type Section interface {
	GetUint32(name string) (uint32, error)
	SetUint32(name string, val uint32) error
	Close() error
}
