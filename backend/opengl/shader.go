package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const menuVertexShader = `
#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec2 inUV;
layout (location = 2) in vec4 inColor;

out vec2 uv;
out vec4 color;

uniform mat4 uProjection;

void main() {
    gl_Position = uProjection * vec4(inPos, 0.0, 1.0);
    uv = inUV;
    color = inColor;
}
` + "\x00"

// The atlas R channel is glyph coverage; the vertex color supplies RGB.
const menuFragmentShader = `
#version 410 core
in vec2 uv;
in vec4 color;

out vec4 fragColor;

uniform sampler2D uAtlas;
uniform bool uTextured;

void main() {
    float coverage = uTextured ? texture(uAtlas, uv).r : 1.0;
    fragColor = vec4(color.rgb, color.a * coverage);
}
` + "\x00"

// menuProgram is the linked shader program and its uniform locations.
type menuProgram struct {
	id         uint32
	projection int32
	atlas      int32
	textured   int32
	boundTex   uint32
}

func newMenuProgram() (menuProgram, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, menuVertexShader)
	if err != nil {
		return menuProgram{}, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, menuFragmentShader)
	if err != nil {
		return menuProgram{}, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetProgramInfoLog(id, n, nil, &log[0])
		gl.DeleteProgram(id)
		return menuProgram{}, fmt.Errorf("link: %s", log)
	}

	return menuProgram{
		id:         id,
		projection: gl.GetUniformLocation(id, gl.Str("uProjection\x00")),
		atlas:      gl.GetUniformLocation(id, gl.Str("uAtlas\x00")),
		textured:   gl.GetUniformLocation(id, gl.Str("uTextured\x00")),
	}, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	sh := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetShaderInfoLog(sh, n, nil, &log[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile: %s", log)
	}
	return sh, nil
}

// use activates the program for a frame.
func (p *menuProgram) use(projection [16]float32) {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.projection, 1, false, &projection[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.atlas, 0)
	p.boundTex = ^uint32(0)
}

// bindTexture selects tex for the next draw; zero draws untextured.
func (p *menuProgram) bindTexture(tex uint32) {
	if tex == p.boundTex {
		return
	}
	p.boundTex = tex
	if tex == 0 {
		gl.Uniform1i(p.textured, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(p.textured, 1)
}

func (p *menuProgram) delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// screenProjection maps pixel coordinates, origin top-left, to clip space.
func screenProjection(w, h float32) [16]float32 {
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
