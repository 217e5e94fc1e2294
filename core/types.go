package core

import (
	"gloom-engine/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGrey  = Color{0.6, 0.6, 0.6, 1}
	// ColorMoonRaker is the default clear colour.
	ColorMoonRaker = Color{0.76862745, 0.71372549, 0.94901961, 1}
)

// Vertex is the interleaved GPU vertex layout:
// location 0 position, location 1 colour, location 2 normal.
type Vertex struct {
	Position math.Vec3
	Color    Color
	Normal   math.Vec3
}

// MeshData is CPU-side geometry ready for upload.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of indexed triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Recolor sets every vertex to c.
func (m *MeshData) Recolor(c Color) {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
}
