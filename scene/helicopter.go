package scene

import (
	"fmt"

	"gloom-engine/math"
)

// TailRotorPivot is the tail rotor hub in helicopter model space.
var TailRotorPivot = math.Vec3{0.35, 2.3, 10.4}

// HelicopterGeometry is the shared geometry of one helicopter model.
type HelicopterGeometry struct {
	Body      GeometryHandle
	Door      GeometryHandle
	MainRotor GeometryHandle
	TailRotor GeometryHandle
}

// Rig names the parts of one helicopter instance.
type Rig struct {
	Body      NodeID
	Door      NodeID
	MainRotor NodeID
	TailRotor NodeID
}

// AddHelicopter builds body → {door, main rotor, tail rotor} under parent.
// Geometry handles are shared, so many instances cost no extra GPU memory.
func (g *Graph) AddHelicopter(parent NodeID, name string, geo HelicopterGeometry) (Rig, error) {
	body, err := g.NewChild(parent, name, RoleBody, geo.Body)
	if err != nil {
		return Rig{}, fmt.Errorf("helicopter %q: %w", name, err)
	}
	rig := Rig{Body: body}

	parts := []struct {
		id    *NodeID
		name  string
		role  Role
		geo   GeometryHandle
		pivot math.Vec3
	}{
		{&rig.Door, name + "/door", RoleDoor, geo.Door, math.Vec3Zero},
		{&rig.MainRotor, name + "/main-rotor", RoleMainRotor, geo.MainRotor, math.Vec3Zero},
		{&rig.TailRotor, name + "/tail-rotor", RoleTailRotor, geo.TailRotor, TailRotorPivot},
	}
	for _, p := range parts {
		id, err := g.NewChild(body, p.name, p.role, p.geo)
		if err != nil {
			return Rig{}, fmt.Errorf("helicopter %q: %w", name, err)
		}
		g.nodes[id].ReferencePoint = p.pivot
		*p.id = id
	}
	return rig, nil
}

// RigOf resolves the parts of the helicopter whose body is body.
func (g *Graph) RigOf(body NodeID) (Rig, error) {
	n := g.Node(body)
	if n == nil || n.Role != RoleBody {
		return Rig{}, fmt.Errorf("body %d: %w", body, ErrNodeNotFound)
	}
	rig := Rig{Body: body}
	for _, part := range []struct {
		id   *NodeID
		role Role
	}{
		{&rig.Door, RoleDoor},
		{&rig.MainRotor, RoleMainRotor},
		{&rig.TailRotor, RoleTailRotor},
	} {
		id, ok := g.ChildByRole(body, part.role)
		if !ok {
			return Rig{}, fmt.Errorf("%q has no %v: %w", n.Name, part.role, ErrNodeNotFound)
		}
		*part.id = id
	}
	return rig, nil
}

// Helicopters returns every helicopter body in the graph, in traversal order.
func (g *Graph) Helicopters() []NodeID {
	var bodies []NodeID
	g.Walk(func(id NodeID, n *Node, _ int) {
		if n.Role == RoleBody {
			bodies = append(bodies, id)
		}
	})
	return bodies
}
