package input

import (
	"slices"
	"sync"
)

// State is the input record shared between the event thread (writer) and
// the render thread (reader). Keys and mouse motion are guarded by separate
// locks; each read-modify-write is atomic with respect to the other thread.
type State struct {
	keysMu sync.Mutex
	keys   map[Key]struct{}

	mouseMu sync.Mutex
	dx, dy  float32
}

func NewState() *State {
	return &State{keys: make(map[Key]struct{}, 10)}
}

// Press adds k to the pressed set. Repeated presses are idempotent.
func (s *State) Press(k Key) {
	s.keysMu.Lock()
	defer s.keysMu.Unlock()
	s.keys[k] = struct{}{}
}

// Release removes k from the pressed set. Releasing a key that is not held
// is a no-op, which tolerates lost or reordered events.
func (s *State) Release(k Key) {
	s.keysMu.Lock()
	defer s.keysMu.Unlock()
	delete(s.keys, k)
}

func (s *State) IsPressed(k Key) bool {
	s.keysMu.Lock()
	defer s.keysMu.Unlock()
	_, ok := s.keys[k]
	return ok
}

// PressedKeys returns a sorted snapshot of the currently held keys.
func (s *State) PressedKeys() []Key {
	s.keysMu.Lock()
	keys := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	s.keysMu.Unlock()

	slices.Sort(keys)
	return keys
}

// AddMouseDelta accumulates relative mouse motion.
func (s *State) AddMouseDelta(dx, dy float32) {
	s.mouseMu.Lock()
	defer s.mouseMu.Unlock()
	s.dx += dx
	s.dy += dy
}

// ConsumeMouseDelta returns the motion accumulated since the last call and
// resets the accumulator to zero in the same critical section.
func (s *State) ConsumeMouseDelta() (dx, dy float32) {
	s.mouseMu.Lock()
	defer s.mouseMu.Unlock()
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}
