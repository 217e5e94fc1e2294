package scene

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound    = errors.New("node not found")
	ErrAlreadyAttached = errors.New("node already has a parent")
	ErrRootChild       = errors.New("root cannot be a child")
	ErrCycle           = errors.New("node would become its own ancestor")
)

// Graph is an arena of nodes addressed by NodeID. The root is created with
// the graph; every other node is reachable only through it once attached.
type Graph struct {
	nodes    []*Node
	attached []bool
	root     NodeID
}

func NewGraph() *Graph {
	g := &Graph{}
	g.root = g.NewNode("root", RoleRoot, NoGeometry)
	return g
}

func (g *Graph) Root() NodeID {
	return g.root
}

// Len returns the number of nodes in the arena, attached or not.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NewNode allocates a detached node and returns its ID.
func (g *Graph) NewNode(name string, role Role, geometry GeometryHandle) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node{
		Name:     name,
		Role:     role,
		Geometry: geometry,
	})
	g.attached = append(g.attached, false)
	return id
}

// Node returns the node for id, or nil if id is out of range.
func (g *Graph) Node(id NodeID) *Node {
	if !g.valid(id) {
		return nil
	}
	return g.nodes[id]
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// AddChild attaches child under parent. A node can have only one parent and
// can never be attached below itself.
func (g *Graph) AddChild(parent, child NodeID) error {
	if !g.valid(parent) {
		return fmt.Errorf("parent %d: %w", parent, ErrNodeNotFound)
	}
	if !g.valid(child) {
		return fmt.Errorf("child %d: %w", child, ErrNodeNotFound)
	}
	if child == g.root {
		return ErrRootChild
	}
	if g.attached[child] {
		return fmt.Errorf("%q: %w", g.nodes[child].Name, ErrAlreadyAttached)
	}
	if g.inSubtree(child, parent) {
		return fmt.Errorf("%q under %q: %w", g.nodes[child].Name, g.nodes[parent].Name, ErrCycle)
	}

	p := g.nodes[parent]
	p.children = append(p.children, child)
	g.attached[child] = true
	return nil
}

// NewChild allocates a node and attaches it under parent.
func (g *Graph) NewChild(parent NodeID, name string, role Role, geometry GeometryHandle) (NodeID, error) {
	id := g.NewNode(name, role, geometry)
	if err := g.AddChild(parent, id); err != nil {
		return NoNode, err
	}
	return id, nil
}

// inSubtree reports whether target is top or one of its descendants.
func (g *Graph) inSubtree(top, target NodeID) bool {
	if top == target {
		return true
	}
	for _, c := range g.nodes[top].children {
		if g.inSubtree(c, target) {
			return true
		}
	}
	return false
}

// ChildByRole returns the first direct child of parent tagged with role.
func (g *Graph) ChildByRole(parent NodeID, role Role) (NodeID, bool) {
	if !g.valid(parent) {
		return NoNode, false
	}
	for _, c := range g.nodes[parent].children {
		if g.nodes[c].Role == role {
			return c, true
		}
	}
	return NoNode, false
}

// FindByRole searches the subtree under from, depth-first.
func (g *Graph) FindByRole(from NodeID, role Role) (NodeID, bool) {
	found := NoNode
	g.walk(from, 0, func(id NodeID, n *Node, _ int) bool {
		if n.Role == role {
			found = id
			return false
		}
		return true
	})
	return found, found != NoNode
}

// Find returns the first node named name reachable from the root.
func (g *Graph) Find(name string) (NodeID, bool) {
	found := NoNode
	g.walk(g.root, 0, func(id NodeID, n *Node, _ int) bool {
		if n.Name == name {
			found = id
			return false
		}
		return true
	})
	return found, found != NoNode
}

// Walk visits every node reachable from the root, depth-first, siblings in
// insertion order.
func (g *Graph) Walk(fn func(id NodeID, n *Node, depth int)) {
	g.walk(g.root, 0, func(id NodeID, n *Node, depth int) bool {
		fn(id, n, depth)
		return true
	})
}

func (g *Graph) walk(id NodeID, depth int, fn func(NodeID, *Node, int) bool) bool {
	if !g.valid(id) {
		return true
	}
	n := g.nodes[id]
	if !fn(id, n, depth) {
		return false
	}
	for _, c := range n.children {
		if !g.walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}
