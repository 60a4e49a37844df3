// Package opengl draws a debugmenu.DrawList with OpenGL 4.1 and feeds GLFW
// keyboard and gamepad input into a debugmenu.InputState.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/debugmenu"
)

// Renderer uploads and draws a DrawList each frame.
type Renderer struct {
	prog          menuProgram
	vao, vbo, ebo uint32
	atlas         uint32
	width, height int
}

// NewRenderer creates the GL objects. A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	prog, err := newMenuProgram()
	if err != nil {
		return nil, fmt.Errorf("menu shader: %w", err)
	}
	r := &Renderer{prog: prog, width: width, height: height}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v debugmenu.Vertex
	stride := int32(unsafe.Sizeof(v))
	attribs := []struct {
		size       int32
		xtype      uint32
		normalized bool
		offset     uintptr
	}{
		{2, gl.FLOAT, false, unsafe.Offsetof(v.Pos)},
		{2, gl.FLOAT, false, unsafe.Offsetof(v.TexCoord)},
		{4, gl.UNSIGNED_BYTE, true, unsafe.Offsetof(v.Color)},
	}
	for i, a := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, a.xtype, a.normalized, stride, a.offset)
		gl.EnableVertexAttribArray(uint32(i))
	}
	gl.BindVertexArray(0)

	r.atlas = uploadAtlas(debugmenu.FontAtlasImage())
	return r, nil
}

// FontTextureID returns the texture to pass to debugmenu.NewDrawListRenderer.
func (r *Renderer) FontTextureID() uint32 {
	return r.atlas
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws dl on top of whatever the frame already contains. GL state
// touched here is restored afterwards.
func (r *Renderer) Render(dl *debugmenu.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	r.prog.use(screenProjection(float32(r.width), float32(r.height)))

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(debugmenu.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		r.prog.bindTexture(cmd.TextureID)
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.atlas != 0 {
		gl.DeleteTextures(1, &r.atlas)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	r.prog.delete()
}

// uploadAtlas uploads an alpha-only image as a single-channel texture.
func uploadAtlas(img *image.Alpha) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	for _, p := range [...][2]int32{
		{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
		{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// glState is the GL state Render changes.
type glState struct {
	program            int32
	blendSrc, blendDst int32
	blend, depth, cull bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.DEPTH_TEST, s.depth)
	setEnabled(gl.CULL_FACE, s.cull)
	gl.BindVertexArray(0)
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
