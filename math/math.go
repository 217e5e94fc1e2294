package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vectors and matrices are mgl32 values: column-major, column vectors,
// so A.Mul4(B) applies B first.
type (
	Vec2 = mgl32.Vec2
	Vec3 = mgl32.Vec3
	Vec4 = mgl32.Vec4
	Mat4 = mgl32.Mat4
)

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3One   = Vec3{1, 1, 1}
	Vec3Up    = Vec3{0, 1, 0}
	Vec3Right = Vec3{1, 0, 0}
	Vec3Front = Vec3{0, 0, 1}
	Vec3Back  = Vec3{0, 0, -1}
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func Mat4Identity() Mat4 {
	return mgl32.Ident4()
}

func Mat4Translation(t Vec3) Mat4 {
	return mgl32.Translate3D(t[0], t[1], t[2])
}

func Mat4RotationX(angle float32) Mat4 {
	return mgl32.HomogRotate3DX(angle)
}

func Mat4RotationY(angle float32) Mat4 {
	return mgl32.HomogRotate3DY(angle)
}

func Mat4RotationZ(angle float32) Mat4 {
	return mgl32.HomogRotate3DZ(angle)
}

func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	return mgl32.Perspective(fovY, aspect, near, far)
}

// TransformPoint maps p through m as a position (w = 1).
func TransformPoint(m Mat4, p Vec3) Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

// ApproxEqual compares two matrices component-wise within eps.
func ApproxEqual(a, b Mat4, eps float32) bool {
	return a.ApproxEqualThreshold(b, eps)
}
