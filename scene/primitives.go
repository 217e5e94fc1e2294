package scene

import (
	"gloom-engine/core"
	"gloom-engine/math"
)

// CreatePlane generates a flat plane in XZ centred on the origin.
func CreatePlane(width, depth float32, subdivisions int, color core.Color) core.MeshData {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfD := depth / 2.0

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{-halfW + u*width, 0, -halfD + v*depth},
				Normal:   math.Vec3Up,
				Color:    color,
			})
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return core.MeshData{Name: "Plane", Vertices: vertices, Indices: indices}
}

// CreateBox generates an axis-aligned box with the given size around center.
func CreateBox(center, size math.Vec3, color core.Color) core.MeshData {
	h := size.Mul(0.5)
	corner := func(sx, sy, sz float32) math.Vec3 {
		return center.Add(math.Vec3{sx * h[0], sy * h[1], sz * h[2]})
	}

	faces := []struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}{
		{math.Vec3{0, 0, 1}, [4]math.Vec3{corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)}},
		{math.Vec3{0, 0, -1}, [4]math.Vec3{corner(1, -1, -1), corner(-1, -1, -1), corner(-1, 1, -1), corner(1, 1, -1)}},
		{math.Vec3{0, 1, 0}, [4]math.Vec3{corner(-1, 1, 1), corner(1, 1, 1), corner(1, 1, -1), corner(-1, 1, -1)}},
		{math.Vec3{0, -1, 0}, [4]math.Vec3{corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1)}},
		{math.Vec3{1, 0, 0}, [4]math.Vec3{corner(1, -1, 1), corner(1, -1, -1), corner(1, 1, -1), corner(1, 1, 1)}},
		{math.Vec3{-1, 0, 0}, [4]math.Vec3{corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)}},
	}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, p := range f.corners {
			vertices = append(vertices, core.Vertex{Position: p, Normal: f.normal, Color: color})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return core.MeshData{Name: "Box", Vertices: vertices, Indices: indices}
}
