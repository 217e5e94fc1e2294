package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gloom-engine/math"
)

const twoGroupOBJ = `# two parts
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
g Body
f 1//1 2//1 3//1 4//1
g Main_Rotor
f 1 2 3
f -4 -3 -1
`

func TestParseOBJGroups(t *testing.T) {
	meshes, err := ParseOBJ(strings.NewReader(twoGroupOBJ))
	require.NoError(t, err)
	require.Len(t, meshes, 2)

	body := meshes[0]
	assert.Equal(t, "Body", body.Name)
	assert.Equal(t, 2, body.TriangleCount(), "quad is fan-triangulated")
	assert.Len(t, body.Vertices, 4, "shared corners are deduplicated")
	assert.Equal(t, math.Vec3{0, 0, 1}, body.Vertices[0].Normal)

	rotor := meshes[1]
	assert.Equal(t, "Main_Rotor", rotor.Name)
	assert.Equal(t, 2, rotor.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 1, 3}, rotor.Indices, "negative indices count from the end")
}

func TestParseOBJGeneratesNormals(t *testing.T) {
	meshes, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 0 -1\nf 1 2 3\n"))
	require.NoError(t, err)
	require.Len(t, meshes, 1)
	for _, v := range meshes[0].Vertices {
		assertVecInDelta(t, math.Vec3Up, v.Normal)
	}
}

func TestParseOBJWithoutFaces(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 0 0 0\n"))
	assert.Error(t, err)
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ("testdata/does-not-exist.obj")
	assert.Error(t, err)
}
