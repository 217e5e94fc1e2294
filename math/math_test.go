package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec3InDelta(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d: want %v, got %v", i, want, got)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			assert.Equal(t, want, m.At(row, col))
		}
	}
	assert.Equal(t, m, m.Mul4(Mat4Identity()))
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	assert.Equal(t, translation, m.Col(3).Vec3())
	assertVec3InDelta(t, translation, TransformPoint(m, Vec3Zero))
	assertVec3InDelta(t, NewVec3(2, 3, 4), TransformPoint(m, Vec3One))
}

func TestMat4RotationY(t *testing.T) {
	r := Mat4RotationY(math.Pi / 2)
	// right-handed: +X turns toward -Z about +Y
	assertVec3InDelta(t, Vec3Back, TransformPoint(r, Vec3Right))
	assertVec3InDelta(t, Vec3Up, TransformPoint(r, Vec3Up))
}

func TestMat4EulerZYXOrder(t *testing.T) {
	// Z first takes +X to +Y, then X takes +Y to +Z.
	r := Mat4EulerZYX(NewVec3(math.Pi/2, 0, math.Pi/2))
	assertVec3InDelta(t, Vec3Front, TransformPoint(r, Vec3Right))

	// The reverse order would leave +X at +Y.
	reversed := Mat4RotationZ(math.Pi / 2).Mul4(Mat4RotationX(math.Pi / 2))
	assertVec3InDelta(t, Vec3Up, TransformPoint(reversed, Vec3Right))
}

func TestMat4EulerZYXZeroIsIdentity(t *testing.T) {
	assert.True(t, ApproxEqual(Mat4Identity(), Mat4EulerZYX(Vec3Zero), tol))
}

func TestMat4PivotRotation(t *testing.T) {
	pivot := NewVec3(3, -1, 5)
	theta := float32(0.7)
	m := Mat4PivotRotation(NewVec3(0, theta, 0), pivot)

	assertVec3InDelta(t, pivot, TransformPoint(m, pivot))

	d := NewVec3(2, 0, -1)
	want := pivot.Add(TransformPoint(Mat4RotationY(theta), d))
	assertVec3InDelta(t, want, TransformPoint(m, pivot.Add(d)))
}

func TestMat4PivotRotationAtOrigin(t *testing.T) {
	r := NewVec3(0.3, -0.2, 1.1)
	assert.True(t, ApproxEqual(Mat4EulerZYX(r), Mat4PivotRotation(r, Vec3Zero), tol))
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(math.Pi/4, 16.0/9.0, 0.1, 100.0)

	assert.NotZero(t, m.At(0, 0), "expected non-zero X scale")
	assert.NotZero(t, m.At(1, 1), "expected non-zero Y scale")
	assert.Equal(t, float32(-1), m.At(3, 2))
}

func BenchmarkMat4PivotRotation(b *testing.B) {
	r := NewVec3(0.1, 0.2, 0.3)
	p := NewVec3(1, 2, 3)
	for i := 0; i < b.N; i++ {
		_ = Mat4PivotRotation(r, p)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul4(m2)
	}
}
