package session

import "sync"

var (
	defaultMu      sync.Mutex
	defaultTracker *Tracker
)

// Default returns the process-wide tracker, creating it with default options
// on first use. Hosts that need specific options should build their own
// tracker with New and install it with SetDefault, or pass it explicitly.
func Default() *Tracker {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultTracker == nil {
		defaultTracker = New(Options{})
	}
	return defaultTracker
}

// SetDefault replaces the process-wide tracker and returns the previous one.
// Passing nil makes the next Default call build a fresh tracker.
func SetDefault(t *Tracker) *Tracker {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultTracker
	defaultTracker = t
	return prev
}
