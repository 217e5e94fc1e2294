package scene

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gloom-engine/math"
)

func TestCameraViewAtOrigin(t *testing.T) {
	c := NewCamera(0.75, 1, 1, 1000)
	assertVecInDelta(t, math.Vec3{0, 0, -5}, math.TransformPoint(c.ViewMatrix(), math.Vec3{0, 0, -5}))
}

func TestCameraYawTurnsLeft(t *testing.T) {
	c := NewCamera(0.75, 1, 1, 1000)
	c.Turn(0, stdmath.Pi/2)

	assertVecInDelta(t, math.Vec3{-1, 0, 0}, c.Forward())
	assertVecInDelta(t, math.Vec3{0, 0, -1}, c.Right())
	// what is now in front of the camera sits on the view -Z axis
	assertVecInDelta(t, math.Vec3{0, 0, -5}, math.TransformPoint(c.ViewMatrix(), math.Vec3{-5, 0, 0}))
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(0.75, 1, 1, 1000)
	c.Move(10, 2, 3)
	assertVecInDelta(t, math.Vec3{2, 3, -10}, c.Position)

	assertVecInDelta(t, math.Vec3Zero, math.TransformPoint(c.ViewMatrix(), c.Position))
}

func TestCameraPitchIsClamped(t *testing.T) {
	c := NewCamera(0.75, 1, 1, 1000)
	c.Turn(10, 0)
	assert.InDelta(t, MaxPitch, c.Pitch, 1e-6)
	c.Turn(-20, 0)
	assert.InDelta(t, -MaxPitch, c.Pitch, 1e-6)
}

func TestCameraViewProjection(t *testing.T) {
	c := NewCamera(0.75, 4.0/3.0, 1, 1000)
	c.Position = math.Vec3{1, 2, 3}
	c.UpdateAspectRatio(800, 600)

	want := math.Mat4Perspective(0.75, 800.0/600.0, 1, 1000).Mul4(c.ViewMatrix())
	assertMatInDelta(t, want, c.ViewProjectionMatrix())
}
