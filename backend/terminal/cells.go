package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/debugmenu"
)

// cell is one character cell of the grid. A zero rune marks the trailing
// half of a wide rune.
type cell struct {
	r       rune
	fg, bg  uint32
	painted bool // Background set by DrawRect
}

// CellRenderer draws the menu into a grid of terminal cells. One unit of
// menu space is one cell; use it with debugmenu.CellStyle.
type CellRenderer struct {
	width, height int
	cells         []cell

	// Backdrop is blended under translucent rectangles.
	Backdrop uint32

	lg *lipgloss.Renderer
}

// NewCellRenderer creates a renderer for a width x height grid. lg picks the
// color profile; nil uses the lipgloss default renderer.
func NewCellRenderer(width, height int, lg *lipgloss.Renderer) *CellRenderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	c := &CellRenderer{Backdrop: debugmenu.ColorBlack, lg: lg}
	c.Resize(width, height)
	return c
}

// Resize changes the grid size and clears it.
func (c *CellRenderer) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	n := c.width * c.height
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	c.Clear()
}

// Size returns the grid size in cells.
func (c *CellRenderer) Size() (width, height int) {
	return c.width, c.height
}

// Clear blanks every cell.
func (c *CellRenderer) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

func (c *CellRenderer) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// DrawRect fills every cell the rectangle covers. Translucent colors blend
// with what is already there.
func (c *CellRenderer) DrawRect(pos, size debugmenu.Vec2, color uint32) {
	_, _, _, a := debugmenu.UnpackRGBA(color)
	if a == 0 {
		return
	}
	x0 := int(math.Floor(float64(pos.X) + 0.01))
	y0 := int(math.Floor(float64(pos.Y) + 0.01))
	x1 := int(math.Ceil(float64(pos.X+size.X) - 0.01))
	y1 := int(math.Ceil(float64(pos.Y+size.Y) - 0.01))
	opaque := color | 0xFF000000
	t := float32(a) / 255
	for y := max(y0, 0); y < min(y1, c.height); y++ {
		for x := max(x0, 0); x < min(x1, c.width); x++ {
			cl := c.at(x, y)
			base := c.Backdrop | 0xFF000000
			if cl.painted {
				base = cl.bg
			}
			cl.bg = debugmenu.LerpColor(base, opaque, t)
			cl.painted = true
		}
	}
}

// DrawText writes text starting at the cell containing pos. Text past the
// right edge is dropped.
func (c *CellRenderer) DrawText(text string, pos debugmenu.Vec2, color uint32, _ debugmenu.FontRef) {
	x := int(math.Round(float64(pos.X)))
	y := int(math.Round(float64(pos.Y)))
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			return
		}
		if x >= 0 {
			cl := c.at(x, y)
			cl.r, cl.fg = r, color
			for i := 1; i < w; i++ {
				tail := c.at(x+i, y)
				tail.r, tail.fg = 0, color
			}
		}
		x += w
	}
}

// MeasureText returns the display width of text in cells. Font scale is
// ignored; every glyph is one row tall.
func (c *CellRenderer) MeasureText(text string, _ debugmenu.FontRef) debugmenu.Vec2 {
	return debugmenu.Vec2{X: float32(runewidth.StringWidth(text)), Y: 1}
}

// WordWrap wraps text by display width.
func (c *CellRenderer) WordWrap(text string, _ debugmenu.FontRef, maxWidth float32, rows []int) []int {
	return debugmenu.WrapText(text, maxWidth, measureCells, rows)
}

func measureCells(s string) float32 {
	return float32(runewidth.StringWidth(s))
}

// Rune returns the rune at x, y, or 0 outside the grid.
func (c *CellRenderer) Rune(x, y int) rune {
	if cl := c.at(x, y); cl != nil {
		return cl.r
	}
	return 0
}

// Line returns row y as plain text with trailing blanks trimmed.
func (c *CellRenderer) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
		if cl.r != 0 {
			sb.WriteRune(cl.r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Render returns the grid as styled text, one line per row. Runs of cells
// with the same colors share one lipgloss style.
func (c *CellRenderer) Render() string {
	var sb strings.Builder
	var run strings.Builder
	for y := range c.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		start := 0
		for start < len(row) {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}
			run.Reset()
			for _, cl := range row[start:end] {
				if cl.r != 0 {
					run.WriteRune(cl.r)
				}
			}
			sb.WriteString(c.style(row[start]).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}

func sameStyle(a, b cell) bool {
	if a.painted != b.painted || (a.painted && a.bg != b.bg) {
		return false
	}
	// Blanks only show their background.
	if a.r == ' ' && b.r == ' ' {
		return true
	}
	return a.fg == b.fg
}

func (c *CellRenderer) style(cl cell) lipgloss.Style {
	s := c.lg.NewStyle()
	if cl.fg != 0 {
		s = s.Foreground(hexColor(cl.fg))
	}
	if cl.painted {
		s = s.Background(hexColor(cl.bg))
	}
	return s
}

func hexColor(c uint32) lipgloss.Color {
	r, g, b, _ := debugmenu.UnpackRGBA(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

var _ debugmenu.Renderer = (*CellRenderer)(nil)
