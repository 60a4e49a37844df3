package debugmenu

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontAtlasImage renders the built-in font atlas: basicfont's 7x13 face laid
// out in the cells GlyphCell assigns. Backends upload it as a single-channel
// texture and pass its ID to NewDrawListRenderer.
func FontAtlasImage() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, FontAtlasWidth, FontAtlasHeight))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	var buf [1]byte
	for c := byte(32); c < 127; c++ {
		col, row := GlyphCell(rune(c))
		d.Dot = fixed.P(col*FontGlyphWidth, row*FontGlyphHeight+face.Ascent)
		buf[0] = c
		d.DrawBytes(buf[:])
	}
	return img
}
