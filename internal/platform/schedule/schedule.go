// Package schedule models the deferred callbacks used to simulate latency
// (chat replies, nurse-call auto-reset) as explicit cancellable handles. The
// owning component cancels its handle on teardown so no callback acts on
// disposed state.
package schedule

import (
	"sync"
	"time"
)

// Handle is a single pending scheduled callback.
type Handle struct {
	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
	fired     bool
}

// After runs fn once after d. With d <= 0 the callback runs synchronously
// before After returns.
func After(d time.Duration, fn func()) *Handle {
	h := &Handle{}
	if d <= 0 {
		h.fired = true
		fn()
		return h
	}
	h.timer = time.AfterFunc(d, func() {
		h.mu.Lock()
		if h.cancelled {
			h.mu.Unlock()
			return
		}
		h.fired = true
		h.mu.Unlock()
		fn()
	})
	return h
}

// Cancel prevents the callback from running. It reports whether the callback
// was still pending; cancelling an already-fired or already-cancelled handle
// is a no-op.
func (h *Handle) Cancel() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled || h.fired {
		return false
	}
	h.cancelled = true
	if h.timer != nil {
		h.timer.Stop()
	}
	return true
}

// Fired reports whether the callback has run.
func (h *Handle) Fired() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fired
}
