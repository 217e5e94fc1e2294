package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"gloom-engine/core"
	"gloom-engine/math"
	"gloom-engine/scene"
)

// Renderer is the OpenGL backend. Every method must run on the thread that
// owns the current context.
type Renderer struct {
	program    *Program
	modelLoc   int32
	vpLoc      int32
	ClearColor core.Color
}

// NewRenderer loads GL entry points, compiles the shaders and sets the
// fixed pipeline state. The window context must already be current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL context",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	prog, err := NewProgram(vertSrc, fragSrc, uniformNames...)
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	prog.Use()
	return &Renderer{
		program:    prog,
		modelLoc:   prog.Uniform("model"),
		vpLoc:      prog.Uniform("viewProjection"),
		ClearColor: core.ColorMoonRaker,
	}, nil
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears colour and depth.
func (r *Renderer) BeginFrame() {
	c := r.ClearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) SetModel(m math.Mat4) {
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &m[0])
}

func (r *Renderer) SetViewProjection(m math.Mat4) {
	gl.UniformMatrix4fv(r.vpLoc, 1, false, &m[0])
}

// DrawGeometry issues one indexed draw with whatever uniforms are set.
func (r *Renderer) DrawGeometry(g scene.GeometryHandle) {
	gl.BindVertexArray(g.VAO)
	gl.DrawElements(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, nil)
}

func (r *Renderer) Destroy() {
	gl.BindVertexArray(0)
	r.program.Delete()
}
