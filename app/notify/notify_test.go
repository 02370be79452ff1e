package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		expected time.Duration
	}{
		{"default for zero", 0, DefaultTimeout},
		{"default for negative", -time.Second, DefaultTimeout},
		{"custom", 250 * time.Millisecond, 250 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, New(tc.timeout).timeout)
		})
	}
}

func TestBroadcaster_SettingChangedReturns(t *testing.T) {
	// must return within bounded time on any platform, the result value is informational
	done := make(chan struct{})
	go func() {
		New(DefaultTimeout).SettingChanged(ImmersiveColorSet)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("broadcast did not return")
	}
}
