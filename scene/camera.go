package scene

import (
	"github.com/chewxy/math32"

	"gloom-engine/math"
)

// MaxPitch keeps the camera from flipping over the vertical.
const MaxPitch = math32.Pi / 2

// Camera is a free-flying camera described by a position and yaw/pitch
// angles. At zero yaw and pitch it looks down -Z.
type Camera struct {
	Position    math.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
	}
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

// Forward is the horizontal viewing direction; pitch does not tilt it.
func (c *Camera) Forward() math.Vec3 {
	s, co := math32.Sincos(c.Yaw)
	return math.Vec3{-s, 0, -co}
}

func (c *Camera) Right() math.Vec3 {
	s, co := math32.Sincos(c.Yaw)
	return math.Vec3{co, 0, -s}
}

// Move translates the camera along its horizontal axes and world up.
func (c *Camera) Move(forward, right, up float32) {
	c.Position = c.Position.
		Add(c.Forward().Mul(forward)).
		Add(c.Right().Mul(right)).
		Add(math.Vec3Up.Mul(up))
}

// Turn adds to pitch and yaw, clamping pitch to ±MaxPitch.
func (c *Camera) Turn(pitch, yaw float32) {
	c.Yaw += yaw
	c.Pitch = math32.Max(-MaxPitch, math32.Min(MaxPitch, c.Pitch+pitch))
}

// ViewMatrix is Rx(-pitch) · Ry(-yaw) · T(-position).
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4RotationX(-c.Pitch).
		Mul4(math.Mat4RotationY(-c.Yaw)).
		Mul4(math.Mat4Translation(c.Position.Mul(-1)))
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) ViewProjectionMatrix() math.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}
