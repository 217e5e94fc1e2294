package scene

// GeometryHandle is an opaque reference to GPU-resident vertex and index
// data. It is a plain value: copy it into as many nodes as needed. The
// buffers belong to the pool that produced the handle.
type GeometryHandle struct {
	VAO        uint32
	IndexCount int32
}

// NoGeometry is the handle of a grouping node.
var NoGeometry = GeometryHandle{}

func (g GeometryHandle) Valid() bool {
	return g.IndexCount > 0
}
