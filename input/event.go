package input

import (
	"math"
)

type EventKind int

const (
	// EventWake carries no payload; sources return it when woken so the
	// loop can re-check liveness.
	EventWake EventKind = iota
	EventKeyDown
	EventKeyUp
	EventMouseMotion
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventWake:
		return "wake"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventMouseMotion:
		return "mouse-motion"
	case EventClose:
		return "close"
	}
	return "unknown"
}

// Event is one raw window/input event.
type Event struct {
	Kind   EventKind
	Key    Key
	DX, DY float64
}

func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

func MouseMotion(dx, dy float64) Event { return Event{Kind: EventMouseMotion, DX: dx, DY: dy} }

func Close() Event { return Event{Kind: EventClose} }

// Valid reports whether the payload is usable. Invalid events are dropped.
func (e Event) Valid() bool {
	switch e.Kind {
	case EventWake, EventClose:
		return true
	case EventKeyDown, EventKeyUp:
		return e.Key >= 0
	case EventMouseMotion:
		return finite(e.DX) && finite(e.DY)
	}
	return false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// EventSource delivers window events to the event thread.
type EventSource interface {
	// WaitEvent blocks until an event is available or the source is woken.
	WaitEvent() Event
}
