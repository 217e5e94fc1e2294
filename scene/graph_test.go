package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeometry = GeometryHandle{VAO: 7, IndexCount: 36}

func TestNewGraphHasRoot(t *testing.T) {
	g := NewGraph()
	root := g.Node(g.Root())
	require.NotNil(t, root)
	assert.Equal(t, RoleRoot, root.Role)
	assert.False(t, root.HasGeometry())
	assert.Equal(t, 1, g.Len())
}

func TestAddChildKeepsInsertionOrder(t *testing.T) {
	g := NewGraph()
	a, err := g.NewChild(g.Root(), "a", RoleNone, NoGeometry)
	require.NoError(t, err)
	b, err := g.NewChild(g.Root(), "b", RoleNone, NoGeometry)
	require.NoError(t, err)
	c, err := g.NewChild(g.Root(), "c", RoleNone, NoGeometry)
	require.NoError(t, err)

	assert.Equal(t, []NodeID{a, b, c}, g.Node(g.Root()).Children())
}

func TestAddChildRejectsSecondParent(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewChild(g.Root(), "a", RoleNone, NoGeometry)
	b, _ := g.NewChild(g.Root(), "b", RoleNone, NoGeometry)
	c, _ := g.NewChild(a, "c", RoleNone, NoGeometry)

	assert.ErrorIs(t, g.AddChild(b, c), ErrAlreadyAttached)
	assert.ErrorIs(t, g.AddChild(a, c), ErrAlreadyAttached, "adding the same child twice")
	assert.Len(t, g.Node(a).Children(), 1)
}

func TestAddChildRejectsCycles(t *testing.T) {
	g := NewGraph()
	a := g.NewNode("a", RoleNone, NoGeometry)
	b := g.NewNode("b", RoleNone, NoGeometry)
	require.NoError(t, g.AddChild(a, b))

	assert.ErrorIs(t, g.AddChild(a, a), ErrCycle)
	assert.ErrorIs(t, g.AddChild(b, a), ErrCycle)
	assert.ErrorIs(t, g.AddChild(a, g.Root()), ErrRootChild)
}

func TestAddChildRejectsUnknownIDs(t *testing.T) {
	g := NewGraph()
	assert.ErrorIs(t, g.AddChild(g.Root(), 42), ErrNodeNotFound)
	assert.ErrorIs(t, g.AddChild(NoNode, g.Root()), ErrNodeNotFound)
	assert.Nil(t, g.Node(NoNode))
}

func TestRoleLookups(t *testing.T) {
	g := NewGraph()
	terrain, _ := g.NewChild(g.Root(), "terrain", RoleTerrain, testGeometry)
	rig, err := g.AddHelicopter(terrain, "heli-0", HelicopterGeometry{
		Body: testGeometry, Door: testGeometry, MainRotor: testGeometry, TailRotor: testGeometry,
	})
	require.NoError(t, err)

	id, ok := g.ChildByRole(rig.Body, RoleMainRotor)
	require.True(t, ok)
	assert.Equal(t, rig.MainRotor, id)

	_, ok = g.ChildByRole(g.Root(), RoleMainRotor)
	assert.False(t, ok, "ChildByRole only looks at direct children")

	id, ok = g.FindByRole(g.Root(), RoleTailRotor)
	require.True(t, ok)
	assert.Equal(t, rig.TailRotor, id)
	assert.Equal(t, TailRotorPivot, g.Node(id).ReferencePoint)

	id, ok = g.Find("heli-0/door")
	require.True(t, ok)
	assert.Equal(t, rig.Door, id)

	resolved, err := g.RigOf(rig.Body)
	require.NoError(t, err)
	assert.Equal(t, rig, resolved)

	_, err = g.RigOf(terrain)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	assert.Equal(t, []NodeID{rig.Body}, g.Helicopters())
}

func TestRigOfReportsMissingPart(t *testing.T) {
	g := NewGraph()
	body, _ := g.NewChild(g.Root(), "lonely", RoleBody, testGeometry)
	_, err := g.RigOf(body)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestWalkDepthFirst(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewChild(g.Root(), "a", RoleNone, NoGeometry)
	_, _ = g.NewChild(a, "a1", RoleNone, NoGeometry)
	_, _ = g.NewChild(g.Root(), "b", RoleNone, NoGeometry)
	g.NewNode("detached", RoleNone, NoGeometry)

	var names []string
	var depths []int
	g.Walk(func(_ NodeID, n *Node, depth int) {
		names = append(names, n.Name)
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"root", "a", "a1", "b"}, names)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
}

func TestSharedGeometryIsNotCopied(t *testing.T) {
	g := NewGraph()
	geo := HelicopterGeometry{Body: testGeometry, Door: testGeometry, MainRotor: testGeometry, TailRotor: testGeometry}
	for _, name := range []string{"h0", "h1", "h2", "h3"} {
		_, err := g.AddHelicopter(g.Root(), name, geo)
		require.NoError(t, err)
	}
	g.Walk(func(_ NodeID, n *Node, _ int) {
		if n.HasGeometry() {
			assert.Equal(t, testGeometry, n.Geometry)
		}
	})
	assert.Len(t, g.Helicopters(), 4)
}
