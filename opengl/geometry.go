package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"gloom-engine/core"
	"gloom-engine/scene"
)

// vertexAttribute describes one interleaved field of core.Vertex.
type vertexAttribute struct {
	location   uint32
	components int32
	offset     uintptr
}

var vertexStride = int32(unsafe.Sizeof(core.Vertex{}))

// vertexLayout: position at 0, colour at 1, normal at 2.
var vertexLayout = func() []vertexAttribute {
	var v core.Vertex
	return []vertexAttribute{
		{0, 3, unsafe.Offsetof(v.Position)},
		{1, 4, unsafe.Offsetof(v.Color)},
		{2, 3, unsafe.Offsetof(v.Normal)},
	}
}()

var ErrEmptyMesh = errors.New("mesh has no indexed triangles")

type gpuBuffers struct {
	vao, vbo, ebo uint32
}

// GeometryPool owns the vertex arrays it uploads. Handles it returns are
// valid until Destroy.
type GeometryPool struct {
	buffers []gpuBuffers
}

// Upload copies mesh into new GPU buffers.
func (p *GeometryPool) Upload(mesh core.MeshData) (scene.GeometryHandle, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) < 3 {
		return scene.NoGeometry, fmt.Errorf("upload %q: %w", mesh.Name, ErrEmptyMesh)
	}

	var b gpuBuffers
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(vertexStride), gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	for _, a := range vertexLayout {
		gl.EnableVertexAttribArray(a.location)
		gl.VertexAttribPointerWithOffset(a.location, a.components, gl.FLOAT, false, vertexStride, a.offset)
	}

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	p.buffers = append(p.buffers, b)

	slog.Debug("geometry uploaded", "name", mesh.Name, "vertices", len(mesh.Vertices), "indices", len(mesh.Indices))
	return scene.GeometryHandle{VAO: b.vao, IndexCount: int32(len(mesh.Indices))}, nil
}

// Destroy frees every uploaded buffer.
func (p *GeometryPool) Destroy() {
	for _, b := range p.buffers {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	p.buffers = nil
}
