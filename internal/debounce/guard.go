// Package debounce suppresses rapid repeats of one physical scan.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow matches the capture UI's decode burst length.
const DefaultWindow = 5000 * time.Millisecond

// Guard keeps the single most recent (signature, time) pair. Scans are
// processed serially at the point of capture, so one slot is enough.
// It is not a substitute for the resolver's own atomicity guarantee.
type Guard struct {
	mu      sync.Mutex
	window  time.Duration
	lastSig string
	lastAt  time.Time
}

func New(window time.Duration) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Guard{window: window}
}

// SetWindow adjusts the window at runtime (dynamic config).
func (g *Guard) SetWindow(window time.Duration) {
	if window <= 0 {
		return
	}
	g.mu.Lock()
	g.window = window
	g.mu.Unlock()
}

// ShouldSuppress reports whether the signature was last seen inside the
// window. The slot is refreshed on every call, so a scanner firing a burst
// keeps being suppressed until it goes quiet.
func (g *Guard) ShouldSuppress(signature string, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	suppress := signature == g.lastSig && !g.lastAt.IsZero() && now.Sub(g.lastAt) < g.window
	g.lastSig = signature
	g.lastAt = now
	return suppress
}
