package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// vertex shader: model and view-projection are separate uniforms so
// lighting can use world-space normals.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec4 inColor;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 viewProjection;

out vec4 fragColor;
out vec3 fragNormal;

void main() {
    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
    fragColor   = inColor;
    fragNormal  = normalize(mat3(model) * inNormal);
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec4 fragColor;
in vec3 fragNormal;

out vec4 outColor;

void main() {
    vec3  lightDir = normalize(vec3(0.8, -0.5, 0.6));
    float diff     = max(dot(normalize(fragNormal), -lightDir), 0.0);
    outColor = vec4(fragColor.rgb * (0.3 + 0.7 * diff), fragColor.a);
}
` + "\x00"

// uniformNames are looked up once after linking.
var uniformNames = []string{"model", "viewProjection"}

// Program is a linked shader program with cached uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

func NewProgram(vertSrc, fragSrc string, uniforms ...string) (*Program, error) {
	id, err := linkProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	p := &Program{id: id, uniforms: make(map[string]int32, len(uniforms))}
	for _, name := range uniforms {
		loc := gl.GetUniformLocation(id, gl.Str(name+"\x00"))
		if loc < 0 {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("uniform %q not found", name)
		}
		p.uniforms[name] = loc
	}
	return p, nil
}

func (p *Program) Use() { gl.UseProgram(p.id) }

// Uniform returns the cached location of name, -1 if unknown. GL ignores
// writes to location -1.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (p *Program) Delete() { gl.DeleteProgram(p.id) }

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
