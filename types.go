package debugmenu

// Vec2 is a 2D position or size in screen units (pixels for the OpenGL
// backend, cells for the terminal backend).
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// LerpColor blends two packed colors component-wise. t is clamped to [0,1].
func LerpColor(a, b uint32, t float32) uint32 {
	t = clampf(t, 0, 1)
	ar, ag, ab, aa := UnpackRGBA(a)
	br, bg, bb, ba := UnpackRGBA(b)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return RGBA(mix(ar, br), mix(ag, bg), mix(ab, bb), mix(aa, ba))
}

// WithAlpha returns c with its alpha scaled by f.
func WithAlpha(c uint32, f float32) uint32 {
	r, g, b, a := UnpackRGBA(c)
	return RGBA(r, g, b, uint8(float32(a)*clampf(f, 0, 1)))
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
