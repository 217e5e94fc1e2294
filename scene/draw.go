package scene

import (
	"gloom-engine/math"
)

// Drawer receives per-draw state from the draw traversal. Implementations
// bind GPU state and must be used from the thread that owns the context.
type Drawer interface {
	SetModel(model math.Mat4)
	SetViewProjection(viewProjection math.Mat4)
	DrawGeometry(geometry GeometryHandle)
}

// Draw visits the tree depth-first and issues one draw per node that
// carries geometry. Both uniforms are set right before each draw; nothing
// is assumed to survive from the previous node. World transforms must be
// current for this frame. Returns the number of draws issued.
func (g *Graph) Draw(viewProjection math.Mat4, d Drawer) int {
	return g.draw(g.root, viewProjection, d)
}

func (g *Graph) draw(id NodeID, viewProjection math.Mat4, d Drawer) int {
	n := g.nodes[id]
	count := 0
	if n.Geometry.Valid() {
		d.SetModel(n.world)
		d.SetViewProjection(viewProjection)
		d.DrawGeometry(n.Geometry)
		count++
	}
	for _, c := range n.children {
		count += g.draw(c, viewProjection, d)
	}
	return count
}
