package debugmenu

import (
	"sync"
	"unicode/utf8"
)

// Layout of the built-in font atlas: printable ASCII 32..127 in a 16x6 grid
// of fixed-size cells. Backends build the texture to match.
const (
	FontAtlasCols   = 16
	FontAtlasRows   = 6
	FontGlyphWidth  = 7
	FontGlyphHeight = 13
	FontAtlasWidth  = FontAtlasCols * FontGlyphWidth
	FontAtlasHeight = FontAtlasRows * FontGlyphHeight
)

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32 // Number of indices to draw
	TextureID    uint32 // Texture ID (0 = no texture)
	VertexOffset uint32 // Offset into vertex buffer
	IndexOffset  uint32 // Offset into index buffer
}

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates textured and untextured quads for a frame.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to the command's VertexOffset

	textureID    uint32 // Current texture for batching
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad adds four vertices and the two triangles between them.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	// Indices are 16 bit, relative to the command start.
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+4 > 0xFFFF {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddText draws text with the built-in font atlas. Each rune occupies one
// cell of cw by ch pixels.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, cw, ch float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	px := x
	for _, r := range text {
		u0, v0, u1, v1 := GlyphUV(r)
		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		px += cw
	}
}

// GlyphCell returns the atlas cell of r. Runes outside the atlas map to '?'.
func GlyphCell(r rune) (col, row int) {
	c := unicodeFallback(r)
	if c < 32 || c > 127 {
		c = '?'
	}
	i := int(c - 32)
	return i % FontAtlasCols, i / FontAtlasCols
}

// GlyphUV returns the texture coordinates of r in the font atlas.
func GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	col, row := GlyphCell(r)
	u0 = float32(col) / FontAtlasCols
	v0 = float32(row) / FontAtlasRows
	u1 = float32(col+1) / FontAtlasCols
	v1 = float32(row+1) / FontAtlasRows
	return u0, v0, u1, v1
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 32-127 only).
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// DrawListRenderer implements Renderer on top of a DrawList and the
// built-in monospace font atlas.
type DrawListRenderer struct {
	List        *DrawList
	FontTexture uint32
}

// NewDrawListRenderer creates a renderer that records into dl and draws
// text with fontTexture.
func NewDrawListRenderer(dl *DrawList, fontTexture uint32) *DrawListRenderer {
	return &DrawListRenderer{List: dl, FontTexture: fontTexture}
}

func (d *DrawListRenderer) DrawText(text string, pos Vec2, color uint32, font FontRef) {
	d.List.SetTexture(d.FontTexture)
	d.List.AddText(pos.X, pos.Y, text, color, FontGlyphWidth*font.Scale, FontGlyphHeight*font.Scale)
}

func (d *DrawListRenderer) DrawRect(pos, size Vec2, color uint32) {
	d.List.SetTexture(0)
	d.List.AddRect(pos.X, pos.Y, size.X, size.Y, color)
}

func (d *DrawListRenderer) MeasureText(text string, font FontRef) Vec2 {
	return Vec2{
		X: float32(utf8.RuneCountInString(text)) * FontGlyphWidth * font.Scale,
		Y: FontGlyphHeight * font.Scale,
	}
}

func (d *DrawListRenderer) WordWrap(text string, font FontRef, maxWidth float32, rows []int) []int {
	cw := FontGlyphWidth * font.Scale
	return WrapText(text, maxWidth, func(s string) float32 {
		return float32(utf8.RuneCountInString(s)) * cw
	}, rows)
}
