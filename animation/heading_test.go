package animation

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestFlightPathStart(t *testing.T) {
	h := FlightPath(0)
	assert.InDelta(t, 0, h.X, 1e-5)
	assert.InDelta(t, 45, h.Z, 1e-5)
	assert.InDelta(t, 0.5, h.Roll, 1e-5)
	assert.Less(t, h.Pitch, float32(0), "nose dips while moving")
}

func TestFlightPathYawFollowsTravel(t *testing.T) {
	for _, tm := range []float32{0, 0.7, 1.9, 3.3, 5} {
		h := FlightPath(tm)
		next := FlightPath(tm + 0.01)

		// the nose points down -Z rotated by yaw about +Y
		nose := [2]float32{-math32.Sin(h.Yaw), -math32.Cos(h.Yaw)}
		travel := [2]float32{next.X - h.X, next.Z - h.Z}
		dot := nose[0]*travel[0] + nose[1]*travel[1]
		assert.Greater(t, dot, float32(0), "t=%v", tm)
	}
}

func TestFlightPathIsPeriodic(t *testing.T) {
	period := 2 * math32.Pi / circuitSpeed
	a := FlightPath(1.25)
	b := FlightPath(1.25 + period)
	assert.InDelta(t, a.X, b.X, 1e-3)
	assert.InDelta(t, a.Z, b.Z, 1e-3)
	assert.InDelta(t, a.Roll, b.Roll, 1e-3)
}

func TestSpin(t *testing.T) {
	assert.InDelta(t, 0, Spin(0, 10), 1e-6)
	assert.InDelta(t, 1.5, Spin(0.5, 3), 1e-6)

	a := Spin(100, 30)
	assert.GreaterOrEqual(t, a, float32(0))
	assert.Less(t, a, 2*math32.Pi)

	assert.InDelta(t, 2*math32.Pi-1, Spin(1, -1), 1e-5)
}
