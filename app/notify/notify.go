// Package notify broadcasts setting-change notifications to top-level windows of the session.
package notify

import "time"

// ImmersiveColorSet is the setting area announced after an appearance change.
const ImmersiveColorSet = "ImmersiveColorSet"

// DefaultTimeout is how long the broadcast waits for each window to respond.
const DefaultTimeout = 100 * time.Millisecond

// Broadcaster sends WM_SETTINGCHANGE to all top-level windows, best-effort.
type Broadcaster struct {
	timeout time.Duration
}

// New makes a Broadcaster. Non-positive timeout replaced by DefaultTimeout.
func New(timeout time.Duration) *Broadcaster {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Broadcaster{timeout: timeout}
}
