//go:build !windows

package notify

import log "github.com/go-pkgz/lgr"

// SettingChanged is a no-op without a windowing session to notify, always returns 0.
func (b *Broadcaster) SettingChanged(area string) uintptr {
	log.Printf("[DEBUG] broadcast %s skipped, not supported on this platform", area)
	return 0
}
