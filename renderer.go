package debugmenu

// FontRef selects the font a renderer draws with. Scale multiplies the
// renderer's base glyph size; the menu derives it from the style and the
// menu size setting.
type FontRef struct {
	ID    uint16
	Scale float32
}

// Renderer is the render adapter the menu draws through. Implementations
// keep whatever context they need in their own fields.
type Renderer interface {
	// DrawText draws a single line of text with its top-left corner at pos.
	DrawText(text string, pos Vec2, color uint32, font FontRef)
	// DrawRect fills a rectangle.
	DrawRect(pos, size Vec2, color uint32)
	// MeasureText returns the size of a single line of text.
	MeasureText(text string, font FontRef) Vec2
	// WordWrap appends to rows the byte offsets at which each row of text
	// ends when wrapped to maxWidth, and returns the extended slice.
	WordWrap(text string, font FontRef, maxWidth float32, rows []int) []int
}
