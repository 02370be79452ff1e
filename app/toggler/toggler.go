// Package toggler flips the per-user appearance mode between light and dark and announces the change.
package toggler

import (
	"errors"
	"fmt"
	"io"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themetoggle/app/enum"
	"github.com/umputun/themetoggle/app/notify"
	"github.com/umputun/themetoggle/app/store"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// registry layout of the appearance flags
const (
	PersonalizePath      = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	AppsUseLightTheme    = "AppsUseLightTheme"
	SystemUsesLightTheme = "SystemUsesLightTheme"
)

// ErrUnsupportedPlatform is returned when the personalize section can't be opened,
// or AppsUseLightTheme can't be read or written.
var ErrUnsupportedPlatform = errors.New("This program requires Windows 14393 or above") //nolint:staticcheck // user-facing message

// PrefStore defines the preference store operations needed by Service.
type PrefStore interface {
	Open(path string) (store.Section, error)
}

// Notifier defines the setting-change broadcast needed by Service.
type Notifier interface {
	SettingChanged(area string) uintptr
}

// Result reports the theme before and after the toggle.
type Result struct {
	Before    enum.Theme
	After     enum.Theme
	Broadcast uintptr // raw broadcast result, informational only
}

// Service performs the toggle over an injected store and notifier.
type Service struct {
	store    PrefStore
	notifier Notifier
	out      io.Writer
}

// New creates a toggle service. Status lines are written to out, nil out discards them.
func New(st PrefStore, n Notifier, out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{store: st, notifier: n, out: out}
}

// Toggle reads AppsUseLightTheme, writes the opposite theme to it, mirrors the value into
// SystemUsesLightTheme if that flag exists, and broadcasts ImmersiveColorSet.
// All failures on the primary flag are returned as ErrUnsupportedPlatform wrapping the cause.
func (s *Service) Toggle() (Result, error) {
	sec, err := s.store.Open(PersonalizePath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}
	defer func() {
		if cerr := sec.Close(); cerr != nil {
			log.Printf("[DEBUG] can't close %s: %v", PersonalizePath, cerr)
		}
	}()

	current, err := s.current(sec)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}
	target := current.Toggle()

	if err := sec.SetUint32(AppsUseLightTheme, target.Value()); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}
	s.mirrorSystem(sec, target)

	res := Result{Before: current, After: target}
	res.Broadcast = s.notifier.SettingChanged(notify.ImmersiveColorSet)

	fmt.Fprintf(s.out, "Current theme: %s\n", current.Title())
	fmt.Fprintf(s.out, "New theme: %s\n", target.Title())

	log.Printf("[DEBUG] theme switched %s -> %s, broadcast result %d", current, target, res.Broadcast)
	return res, nil
}

// current returns the theme stored in AppsUseLightTheme.
func (s *Service) current(sec store.Section) (enum.Theme, error) {
	v, err := sec.GetUint32(AppsUseLightTheme)
	if err != nil {
		return enum.Theme{}, err
	}
	log.Printf("[DEBUG] %s=%d", AppsUseLightTheme, v)
	return enum.ThemeFromValue(v), nil
}

// mirrorSystem copies the new value into SystemUsesLightTheme only if it already exists.
// Failures here are not reported, the flag is optional.
func (s *Service) mirrorSystem(sec store.Section, target enum.Theme) {
	if _, err := sec.GetUint32(SystemUsesLightTheme); err != nil {
		log.Printf("[DEBUG] skip %s: %v", SystemUsesLightTheme, err)
		return
	}
	if err := sec.SetUint32(SystemUsesLightTheme, target.Value()); err != nil {
		log.Printf("[DEBUG] can't set %s: %v", SystemUsesLightTheme, err)
	}
}
