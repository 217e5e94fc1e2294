package math

// Mat4EulerZYX returns the rotation that turns a point about Z by r.Z,
// then about Y by r.Y, then about X by r.X.
func Mat4EulerZYX(r Vec3) Mat4 {
	return Mat4RotationX(r[0]).Mul4(Mat4RotationY(r[1])).Mul4(Mat4RotationZ(r[2]))
}

// Mat4PivotRotation rotates by the Euler angles r about pivot instead of
// the origin: translate pivot to origin, rotate Z→Y→X, translate back.
// The pivot is a fixed point of the result.
func Mat4PivotRotation(r, pivot Vec3) Mat4 {
	return Mat4Translation(pivot).
		Mul4(Mat4EulerZYX(r)).
		Mul4(Mat4Translation(pivot.Mul(-1)))
}
