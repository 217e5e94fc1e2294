package scene

import (
	"gloom-engine/math"
)

// NodeID addresses a node inside its Graph. IDs are stable for the
// lifetime of the graph.
type NodeID int32

// NoNode is returned by lookups that find nothing.
const NoNode NodeID = -1

// Node is one element of the scene tree. Nodes hold no parent reference;
// traversal carries the accumulated transform down explicitly.
type Node struct {
	Name string
	Role Role

	// Position is applied last, after the parent transform, so it places
	// the node within its parent's frame.
	Position math.Vec3
	// Rotation holds Euler angles applied Z, then Y, then X.
	Rotation math.Vec3
	// ReferencePoint is the pivot for Rotation, in the node's local space.
	ReferencePoint math.Vec3

	// Geometry is shared, never owned. An invalid handle marks a pure
	// grouping node.
	Geometry GeometryHandle

	world    math.Mat4
	children []NodeID
}

// WorldTransform returns the transform cached by the last propagation pass.
func (n *Node) WorldTransform() math.Mat4 {
	return n.world
}

// Children returns the node's children in insertion order. The slice must
// not be modified.
func (n *Node) Children() []NodeID {
	return n.children
}

// HasGeometry reports whether the node issues a draw call.
func (n *Node) HasGeometry() bool {
	return n.Geometry.Valid()
}

// PivotTransform is the node's rotation about its reference point, without
// the parent transform or Position.
func (n *Node) PivotTransform() math.Mat4 {
	return math.Mat4PivotRotation(n.Rotation, n.ReferencePoint)
}
