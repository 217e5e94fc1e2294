// Package animation computes procedural motion from elapsed time.
package animation

import "github.com/chewxy/math32"

// Heading is a pose on the flight path: ground position plus body angles.
type Heading struct {
	X, Z  float32
	Roll  float32
	Pitch float32
	Yaw   float32
}

const (
	pathSize     = 15.0
	circuitSpeed = 0.8
	lookAhead    = 0.05
)

// FlightPath returns the heading at time t (seconds). The path is a
// figure-eight in the XZ plane; yaw points the nose (-Z) along the
// direction of travel and pitch grows with ground speed.
func FlightPath(t float32) Heading {
	x := pathX(t)
	z := pathZ(t)
	dx := pathX(t+lookAhead) - x
	dz := pathZ(t+lookAhead) - z

	return Heading{
		X:     x,
		Z:     z,
		Roll:  math32.Cos(t*circuitSpeed) * 0.5,
		Pitch: -0.175 * math32.Hypot(dx, dz),
		Yaw:   math32.Pi + math32.Atan2(dx, dz),
	}
}

func pathX(t float32) float32 {
	return pathSize * math32.Sin(2*t*circuitSpeed)
}

func pathZ(t float32) float32 {
	return 3 * pathSize * math32.Cos(t*circuitSpeed)
}

// Spin is the rotor angle after t seconds at speed radians per second,
// wrapped to [0, 2π).
func Spin(t, speed float32) float32 {
	a := math32.Mod(t*speed, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}
