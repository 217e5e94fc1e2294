// Package watchdog supervises the render task and reports its liveness to
// the event thread.
package watchdog

import (
	"sync"
)

// Flag records whether the render thread is alive. It starts true and is
// set false at most once; it never goes back to true.
type Flag struct {
	mu    sync.RWMutex
	alive bool
}

func NewFlag() *Flag {
	return &Flag{alive: true}
}

// Alive is read by the event thread every iteration.
func (f *Flag) Alive() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.alive
}

// MarkDead clears the flag. It reports whether this call made the
// transition.
func (f *Flag) MarkDead() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.alive {
		return false
	}
	f.alive = false
	return true
}
