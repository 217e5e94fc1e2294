package renderer

import "time"

// Clock supplies frame timestamps. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
