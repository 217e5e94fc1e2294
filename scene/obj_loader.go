package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gloom-engine/core"
	"gloom-engine/math"
)

// objFace is an already-triangulated face (three vertex references).
type objFace struct {
	vIdx, vnIdx [3]int // 0-based position / normal indices (-1 = absent)
}

type objGroup struct {
	name  string
	faces []objFace
}

// LoadOBJ parses a Wavefront .obj file and returns one MeshData per object
// or group, named after it. Texture coordinates and materials are ignored.
func LoadOBJ(path string) ([]core.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	meshes, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	return meshes, nil
}

// ParseOBJ reads OBJ text from r.
func ParseOBJ(r io.Reader) ([]core.MeshData, error) {
	var positions []math.Vec3
	var normals []math.Vec3

	var groups []objGroup
	cur := &objGroup{name: "default"}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if v, ok := parseVec3(fields); ok {
				positions = append(positions, v)
			}

		case "vn":
			if v, ok := parseVec3(fields); ok {
				normals = append(normals, v)
			}

		case "o", "g":
			if len(cur.faces) > 0 {
				groups = append(groups, *cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			cur = &objGroup{name: name}

		case "f":
			if len(fields) < 4 {
				continue
			}
			type fv struct{ v, vn int }
			fverts := make([]fv, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				v, vn := parseFaceVertex(tok, len(positions), len(normals))
				fverts = append(fverts, fv{v, vn})
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(fverts); i++ {
				f0, f1, f2 := fverts[0], fverts[i], fverts[i+1]
				cur.faces = append(cur.faces, objFace{
					vIdx:  [3]int{f0.v, f1.v, f2.v},
					vnIdx: [3]int{f0.vn, f1.vn, f2.vn},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if len(cur.faces) > 0 {
		groups = append(groups, *cur)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no geometry found")
	}

	meshes := make([]core.MeshData, 0, len(groups))
	for _, grp := range groups {
		meshes = append(meshes, buildMeshFromOBJ(grp.name, grp.faces, positions, normals))
	}
	return meshes, nil
}

func parseVec3(fields []string) (math.Vec3, bool) {
	if len(fields) < 4 {
		return math.Vec3{}, false
	}
	var v math.Vec3
	for i := range v {
		f, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return math.Vec3{}, false
		}
		v[i] = float32(f)
	}
	return v, true
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn",
// "v/vt/vn". OBJ indices are 1-based; negative ones count back from the
// end. Returns 0-based indices, -1 if absent.
func parseFaceVertex(tok string, nPos, nNorm int) (v, vn int) {
	parseIdx := func(s string, n int) int {
		if s == "" {
			return -1
		}
		i, err := strconv.Atoi(s)
		switch {
		case err != nil:
			return -1
		case i > 0:
			return i - 1
		case i < 0:
			return n + i
		}
		return -1
	}
	parts := strings.Split(tok, "/")
	v, vn = parseIdx(parts[0], nPos), -1
	if len(parts) > 2 {
		vn = parseIdx(parts[2], nNorm)
	}
	return v, vn
}

// buildMeshFromOBJ converts parsed face data into deduplicated MeshData.
func buildMeshFromOBJ(name string, faces []objFace, positions, normals []math.Vec3) core.MeshData {
	type key struct{ v, vn int }
	vertMap := map[key]uint32{}
	var vertices []core.Vertex
	var indices []uint32

	safePos := func(i int) math.Vec3 {
		if i >= 0 && i < len(positions) {
			return positions[i]
		}
		return math.Vec3Zero
	}
	hasNormals := len(normals) > 0

	for _, face := range faces {
		for c := 0; c < 3; c++ {
			k := key{face.vIdx[c], face.vnIdx[c]}
			if idx, ok := vertMap[k]; ok {
				indices = append(indices, idx)
				continue
			}
			vert := core.Vertex{
				Position: safePos(k.v),
				Normal:   math.Vec3Up,
				Color:    core.ColorWhite,
			}
			if k.vn >= 0 && k.vn < len(normals) {
				vert.Normal = normals[k.vn]
			}
			idx := uint32(len(vertices))
			vertices = append(vertices, vert)
			vertMap[k] = idx
			indices = append(indices, idx)
		}
	}

	if !hasNormals {
		generateNormals(vertices, indices)
	}

	return core.MeshData{Name: name, Vertices: vertices, Indices: indices}
}

// generateNormals computes area-weighted vertex normals.
func generateNormals(vertices []core.Vertex, indices []uint32) {
	accum := make([]math.Vec3, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Position
		v1 := vertices[i1].Position
		v2 := vertices[i2].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if accum[i].Len() > 0 {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}
