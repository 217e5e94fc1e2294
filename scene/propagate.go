package scene

import (
	"gloom-engine/math"
)

// UpdateTransforms recomputes the world transform of every node reachable
// from the root, with parent as the root's parent space (usually identity).
//
// The graph must be acyclic; AddChild guarantees this and the pass does not
// check it again.
func (g *Graph) UpdateTransforms(parent math.Mat4) {
	g.updateTransforms(g.root, parent)
}

// UpdateTransformsFrom runs the pass on the subtree under id only.
func (g *Graph) UpdateTransformsFrom(id NodeID, parent math.Mat4) {
	if g.valid(id) {
		g.updateTransforms(id, parent)
	}
}

func (g *Graph) updateTransforms(id NodeID, parent math.Mat4) {
	n := g.nodes[id]
	n.world = WorldTransform(parent, n)
	for _, c := range n.children {
		g.updateTransforms(c, n.world)
	}
}

// WorldTransform composes a node with its parent's world transform:
//
//	T(position) · parent · T(pivot) · Rx · Ry · Rz · T(-pivot)
//
// The rightmost factor applies first. Changing this order moves the pivot.
func WorldTransform(parent math.Mat4, n *Node) math.Mat4 {
	return math.Mat4Translation(n.Position).
		Mul4(parent).
		Mul4(n.PivotTransform())
}

// WorldTransform returns the cached world transform of id.
func (g *Graph) WorldTransform(id NodeID) math.Mat4 {
	if !g.valid(id) {
		return math.Mat4Identity()
	}
	return g.nodes[id].world
}
