package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"gloom-engine/core"
	"gloom-engine/math"
)

var (
	terrainColor   = core.Color{R: 0.55, G: 0.55, B: 0.58, A: 1}
	bodyColor      = core.Color{R: 0.25, G: 0.35, B: 0.22, A: 1}
	doorColor      = core.Color{R: 0.2, G: 0.28, B: 0.18, A: 1}
	mainRotorColor = core.Color{R: 0.15, G: 0.15, B: 0.15, A: 1}
	tailRotorColor = core.Color{R: 0.8, G: 0.2, B: 0.15, A: 1}
)

// HelicopterMeshes is the CPU-side helicopter model, one mesh per part.
type HelicopterMeshes struct {
	Body      core.MeshData
	Door      core.MeshData
	MainRotor core.MeshData
	TailRotor core.MeshData
}

// LoadMeshes dispatches on the file extension: .obj, .gltf or .glb.
func LoadMeshes(path string) ([]core.MeshData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("%q: unsupported mesh format", path)
}

// LoadTerrain loads the terrain mesh, falling back to a flat plane when
// the file does not exist.
func LoadTerrain(path string) (core.MeshData, error) {
	meshes, err := LoadMeshes(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("terrain mesh missing, using a flat plane", "path", path)
		return CreatePlane(400, 400, 16, terrainColor), nil
	}
	if err != nil {
		return core.MeshData{}, err
	}
	terrain := MergeMeshes("terrain", meshes)
	terrain.Recolor(terrainColor)
	return terrain, nil
}

// LoadHelicopter loads the helicopter model and sorts its groups into parts
// by name. Missing files fall back to a box model.
func LoadHelicopter(path string) (HelicopterMeshes, error) {
	meshes, err := LoadMeshes(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("helicopter mesh missing, using box model", "path", path)
		return BoxHelicopter(), nil
	}
	if err != nil {
		return HelicopterMeshes{}, err
	}
	return SortHelicopterParts(meshes)
}

// SortHelicopterParts assigns each mesh to a part by its group name.
func SortHelicopterParts(meshes []core.MeshData) (HelicopterMeshes, error) {
	var h HelicopterMeshes
	found := map[Role]bool{}
	for _, m := range meshes {
		role := partRole(m.Name)
		switch role {
		case RoleBody:
			h.Body = m
			h.Body.Recolor(bodyColor)
		case RoleDoor:
			h.Door = m
			h.Door.Recolor(doorColor)
		case RoleMainRotor:
			h.MainRotor = m
			h.MainRotor.Recolor(mainRotorColor)
		case RoleTailRotor:
			h.TailRotor = m
			h.TailRotor.Recolor(tailRotorColor)
		default:
			slog.Debug("ignoring helicopter group", "name", m.Name)
			continue
		}
		found[role] = true
	}
	for _, r := range []Role{RoleBody, RoleDoor, RoleMainRotor, RoleTailRotor} {
		if !found[r] {
			return HelicopterMeshes{}, fmt.Errorf("helicopter model has no %v group", r)
		}
	}
	return h, nil
}

func partRole(name string) Role {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "tail"):
		return RoleTailRotor
	case strings.Contains(n, "main") || strings.Contains(n, "rotor"):
		return RoleMainRotor
	case strings.Contains(n, "door"):
		return RoleDoor
	case strings.Contains(n, "body"):
		return RoleBody
	}
	return RoleNone
}

// BoxHelicopter is a coarse stand-in model built from boxes, laid out like
// the real one: nose toward -Z, tail rotor hub at TailRotorPivot.
func BoxHelicopter() HelicopterMeshes {
	return HelicopterMeshes{
		Body:      named("body", CreateBox(math.Vec3{0, 1.2, 3}, math.Vec3{1.6, 1.8, 14}, bodyColor)),
		Door:      named("door", CreateBox(math.Vec3{0.85, 1.2, 0}, math.Vec3{0.1, 1.2, 1.4}, doorColor)),
		MainRotor: named("main-rotor", CreateBox(math.Vec3{0, 2.3, 0}, math.Vec3{14, 0.05, 0.4}, mainRotorColor)),
		TailRotor: named("tail-rotor", CreateBox(TailRotorPivot, math.Vec3{0.05, 2.4, 0.25}, tailRotorColor)),
	}
}

func named(name string, m core.MeshData) core.MeshData {
	m.Name = name
	return m
}

// MergeMeshes concatenates meshes into one, rebasing indices.
func MergeMeshes(name string, meshes []core.MeshData) core.MeshData {
	out := core.MeshData{Name: name}
	for _, m := range meshes {
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}
