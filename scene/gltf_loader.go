package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"gloom-engine/core"
	"gloom-engine/math"
)

// LoadGLTF opens a .glb or .gltf file and returns one MeshData per mesh
// primitive, named after the mesh. Node transforms in the file are not
// applied; geometry is returned in mesh space.
func LoadGLTF(path string) ([]core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var meshes []core.MeshData
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				return nil, fmt.Errorf("gltf %q: mesh %d prim %d: %w", path, mi, pi, err)
			}
			meshes = append(meshes, m)
		}
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no geometry found in %q", path)
	}
	return meshes, nil
}

// loadGLTFPrimitive converts one glTF mesh primitive into MeshData.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (core.MeshData, error) {
	name := meshName
	if name == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	} else if primIdx > 0 {
		name = fmt.Sprintf("%s_p%d", meshName, primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return core.MeshData{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return core.MeshData{}, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	var colors [][4]uint8
	if idx, ok := prim.Attributes["COLOR_0"]; ok {
		colors, _ = modeler.ReadColor(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{p[0], p[1], p[2]},
			Normal:   math.Vec3Up,
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			v.Normal = math.Vec3(normals[i])
		}
		if i < len(colors) {
			c := colors[i]
			v.Color = core.Color{R: float32(c[0]) / 255, G: float32(c[1]) / 255, B: float32(c[2]) / 255, A: float32(c[3]) / 255}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return core.MeshData{}, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	m := core.MeshData{Name: name, Vertices: verts, Indices: indices}
	if len(normals) == 0 {
		generateNormals(m.Vertices, m.Indices)
	}
	return m, nil
}
