package input

import (
	"log/slog"
)

// Liveness is polled by the event loop on every iteration.
type Liveness interface {
	Alive() bool
}

// ExitReason tells the caller why the event loop stopped.
type ExitReason int

const (
	ExitQuitKey ExitReason = iota
	ExitCloseRequested
	ExitRenderFault
)

func (r ExitReason) String() string {
	switch r {
	case ExitQuitKey:
		return "quit key"
	case ExitCloseRequested:
		return "close requested"
	case ExitRenderFault:
		return "render fault"
	}
	return "unknown"
}

// EventLoop runs on the event thread. It translates events into State
// updates and never waits on the render thread.
type EventLoop struct {
	state    *State
	source   EventSource
	liveness Liveness
	quitKeys map[Key]struct{}
}

// NewEventLoop creates a loop that quits on Escape and Q.
func NewEventLoop(state *State, source EventSource, liveness Liveness) *EventLoop {
	l := &EventLoop{
		state:    state,
		source:   source,
		liveness: liveness,
	}
	l.SetQuitKeys(KeyEscape, KeyQ)
	return l
}

// SetQuitKeys replaces the keys that trigger an immediate shutdown.
func (l *EventLoop) SetQuitKeys(keys ...Key) {
	l.quitKeys = make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		l.quitKeys[k] = struct{}{}
	}
}

// Run blocks until a quit key, a close request or a dead render thread.
func (l *EventLoop) Run() ExitReason {
	for {
		if !l.liveness.Alive() {
			slog.Error("render thread is no longer alive, shutting down")
			return ExitRenderFault
		}
		if reason, done := l.Handle(l.source.WaitEvent()); done {
			slog.Info("event loop exiting", "reason", reason)
			return reason
		}
	}
}

// Handle applies one event. It returns done=true when the event requests
// shutdown.
func (l *EventLoop) Handle(ev Event) (ExitReason, bool) {
	if !ev.Valid() {
		return 0, false
	}

	switch ev.Kind {
	case EventClose:
		return ExitCloseRequested, true
	case EventKeyDown:
		if _, quit := l.quitKeys[ev.Key]; quit {
			return ExitQuitKey, true
		}
		l.state.Press(ev.Key)
	case EventKeyUp:
		if _, quit := l.quitKeys[ev.Key]; quit {
			return 0, false
		}
		l.state.Release(ev.Key)
	case EventMouseMotion:
		l.state.AddMouseDelta(float32(ev.DX), float32(ev.DY))
	}
	return 0, false
}
