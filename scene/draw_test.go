package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gloom-engine/math"
)

type drawCall struct {
	model, viewProjection math.Mat4
	geometry              GeometryHandle
}

// recordingDrawer records draws and checks both uniforms were set for each.
type recordingDrawer struct {
	t        *testing.T
	model    *math.Mat4
	viewProj *math.Mat4
	calls    []drawCall
}

func (d *recordingDrawer) SetModel(m math.Mat4) { d.model = &m }

func (d *recordingDrawer) SetViewProjection(m math.Mat4) { d.viewProj = &m }

func (d *recordingDrawer) DrawGeometry(g GeometryHandle) {
	require.NotNil(d.t, d.model, "model uniform not set before draw")
	require.NotNil(d.t, d.viewProj, "view-projection uniform not set before draw")
	d.calls = append(d.calls, drawCall{model: *d.model, viewProjection: *d.viewProj, geometry: g})
	d.model, d.viewProj = nil, nil
}

func TestDrawSkipsGroupNodesButVisitsChildren(t *testing.T) {
	g := NewGraph()
	group, _ := g.NewChild(g.Root(), "group", RoleNone, NoGeometry)
	g.Node(group).Position = math.Vec3{10, 0, 0}
	leafGeo := GeometryHandle{VAO: 3, IndexCount: 6}
	leaf, _ := g.NewChild(group, "leaf", RoleNone, leafGeo)
	g.Node(leaf).Position = math.Vec3{0, 2, 0}

	g.UpdateTransforms(math.Mat4Identity())

	vp := math.Mat4Perspective(0.75, 1, 1, 1000)
	d := &recordingDrawer{t: t}
	n := g.Draw(vp, d)

	require.Equal(t, 1, n)
	require.Len(t, d.calls, 1)
	assert.Equal(t, leafGeo, d.calls[0].geometry)
	assert.Equal(t, vp, d.calls[0].viewProjection)
	assertVecInDelta(t, math.Vec3{10, 2, 0}, math.TransformPoint(d.calls[0].model, math.Vec3Zero))
}

func TestDrawOrderIsDepthFirstInsertionOrder(t *testing.T) {
	g := NewGraph()
	geo := func(vao uint32) GeometryHandle { return GeometryHandle{VAO: vao, IndexCount: 3} }
	a, _ := g.NewChild(g.Root(), "a", RoleNone, geo(1))
	_, _ = g.NewChild(a, "a1", RoleNone, geo(2))
	_, _ = g.NewChild(a, "a2", RoleNone, geo(3))
	_, _ = g.NewChild(g.Root(), "b", RoleNone, geo(4))
	g.UpdateTransforms(math.Mat4Identity())

	d := &recordingDrawer{t: t}
	g.Draw(math.Mat4Identity(), d)

	var order []uint32
	for _, c := range d.calls {
		order = append(order, c.geometry.VAO)
	}
	assert.Equal(t, []uint32{1, 2, 3, 4}, order)
}

func TestDrawEmptyGraph(t *testing.T) {
	g := NewGraph()
	g.UpdateTransforms(math.Mat4Identity())
	d := &recordingDrawer{t: t}
	assert.Zero(t, g.Draw(math.Mat4Identity(), d))
	assert.Empty(t, d.calls)
}

func TestDrawSharedGeometryPerInstance(t *testing.T) {
	g := NewGraph()
	geo := HelicopterGeometry{Body: testGeometry, Door: testGeometry, MainRotor: testGeometry, TailRotor: testGeometry}
	r0, _ := g.AddHelicopter(g.Root(), "h0", geo)
	r1, _ := g.AddHelicopter(g.Root(), "h1", geo)
	g.Node(r0.Body).Position = math.Vec3{-5, 0, 0}
	g.Node(r1.Body).Position = math.Vec3{5, 0, 0}
	g.UpdateTransforms(math.Mat4Identity())

	d := &recordingDrawer{t: t}
	require.Equal(t, 8, g.Draw(math.Mat4Identity(), d))
	assertVecInDelta(t, math.Vec3{-5, 0, 0}, math.TransformPoint(d.calls[0].model, math.Vec3Zero))
	assertVecInDelta(t, math.Vec3{5, 0, 0}, math.TransformPoint(d.calls[4].model, math.Vec3Zero))
}
