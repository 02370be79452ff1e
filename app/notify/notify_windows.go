//go:build windows

package notify

import (
	"runtime"
	"unsafe"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001A
	smtoBlock       = 0x0001
	smtoAbortIfHung = 0x0002
)

// SettingChanged sends WM_SETTINGCHANGE with area as lParam to every top-level window.
// It waits up to the timeout for each window and skips hung ones. The returned value is
// the raw SendMessageTimeoutW result, nonzero if all windows processed the message.
func (b *Broadcaster) SettingChanged(area string) uintptr {
	if err := procSendMessageTimeoutW.Find(); err != nil {
		log.Printf("[WARN] can't find SendMessageTimeoutW: %v", err)
		return 0
	}

	p, err := windows.UTF16PtrFromString(area)
	if err != nil {
		log.Printf("[WARN] invalid setting area %q: %v", area, err)
		return 0
	}

	res, _, _ := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(p)),
		smtoBlock|smtoAbortIfHung,
		uintptr(b.timeout.Milliseconds()),
		0,
	)
	runtime.KeepAlive(p)

	log.Printf("[DEBUG] broadcast %s, result %d", area, res)
	return res
}
