package main

import (
	"fmt"

	"gloom-engine/config"
	"gloom-engine/core"
	"gloom-engine/math"
	"gloom-engine/scene"
)

// uploader turns CPU meshes into drawable handles.
type uploader interface {
	Upload(core.MeshData) (scene.GeometryHandle, error)
}

// cruiseAltitude is the height of every flight path above the terrain.
const cruiseAltitude = 20

// loadModels reads the meshes named in cfg, with fallbacks for missing files.
func loadModels(cfg config.Scene) (core.MeshData, scene.HelicopterMeshes, error) {
	terrain, err := scene.LoadTerrain(cfg.TerrainPath)
	if err != nil {
		return core.MeshData{}, scene.HelicopterMeshes{}, fmt.Errorf("terrain: %w", err)
	}
	heli, err := scene.LoadHelicopter(cfg.HelicopterPath)
	if err != nil {
		return core.MeshData{}, scene.HelicopterMeshes{}, fmt.Errorf("helicopter: %w", err)
	}
	return terrain, heli, nil
}

// buildWorld uploads the geometry once and builds root → terrain plus
// cfg.Helicopters helicopter instances sharing it.
func buildWorld(up uploader, cfg config.Scene, terrain core.MeshData, heli scene.HelicopterMeshes) (*scene.Graph, error) {
	upload := func(m core.MeshData) (scene.GeometryHandle, error) {
		h, err := up.Upload(m)
		if err != nil {
			return scene.NoGeometry, fmt.Errorf("upload %q: %w", m.Name, err)
		}
		return h, nil
	}

	terrainGeo, err := upload(terrain)
	if err != nil {
		return nil, err
	}
	var geo scene.HelicopterGeometry
	for _, p := range []struct {
		dst  *scene.GeometryHandle
		mesh core.MeshData
	}{
		{&geo.Body, heli.Body},
		{&geo.Door, heli.Door},
		{&geo.MainRotor, heli.MainRotor},
		{&geo.TailRotor, heli.TailRotor},
	} {
		if *p.dst, err = upload(p.mesh); err != nil {
			return nil, err
		}
	}

	g := scene.NewGraph()
	if _, err := g.NewChild(g.Root(), "terrain", scene.RoleTerrain, terrainGeo); err != nil {
		return nil, err
	}
	for i := range cfg.Helicopters {
		rig, err := g.AddHelicopter(g.Root(), fmt.Sprintf("helicopter-%d", i), geo)
		if err != nil {
			return nil, err
		}
		// centre the formation on the origin
		x := (float32(i) - float32(cfg.Helicopters-1)/2) * cfg.Spacing
		g.Node(rig.Body).Position = math.Vec3{x, cruiseAltitude, 0}
	}
	return g, nil
}
