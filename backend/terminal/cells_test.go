package terminal

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/debugmenu"
)

func newPlainCells(w, h int) *CellRenderer {
	return NewCellRenderer(w, h, lipgloss.NewRenderer(io.Discard))
}

func TestCellRendererDrawText(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  debugmenu.Vec2
		want string
	}{
		{"plain", "hello", debugmenu.Vec2{X: 1}, " hello"},
		{"clipped right", "abcdefghijkl", debugmenu.Vec2{X: 5}, "     abcde"},
		{"clipped left", "abc", debugmenu.Vec2{X: -1}, "bc"},
		{"rounded", "x", debugmenu.Vec2{X: 2.6, Y: 0.2}, "   x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newPlainCells(10, 2)
			c.DrawText(tt.text, tt.pos, debugmenu.ColorWhite, debugmenu.FontRef{})
			if got := c.Line(0); got != tt.want {
				t.Errorf("Line(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCellRendererOffGrid(t *testing.T) {
	c := newPlainCells(4, 1)
	c.DrawText("hidden", debugmenu.Vec2{Y: 3}, debugmenu.ColorWhite, debugmenu.FontRef{})
	c.DrawRect(debugmenu.Vec2{X: -10, Y: -10}, debugmenu.Vec2{X: 5, Y: 5}, debugmenu.ColorRed)
	if got := c.Line(0); got != "" {
		t.Errorf("Line(0) = %q, want empty", got)
	}
	if c.Rune(9, 9) != 0 {
		t.Error("Rune outside the grid should be 0")
	}
}

func TestCellRendererWideRunes(t *testing.T) {
	c := newPlainCells(5, 1)
	c.DrawText("日本語", debugmenu.Vec2{}, debugmenu.ColorWhite, debugmenu.FontRef{})

	if got := c.MeasureText("日本", debugmenu.FontRef{}).X; got != 4 {
		t.Errorf("MeasureText width = %v, want 4", got)
	}
	if c.Rune(0, 0) != '日' || c.Rune(1, 0) != 0 || c.Rune(2, 0) != '本' {
		t.Errorf("cells = %q %q %q, want wide runes with trailing halves", c.Rune(0, 0), c.Rune(1, 0), c.Rune(2, 0))
	}
	// The third rune needs cells 4 and 5 and is dropped.
	if got := c.Line(0); got != "日本" {
		t.Errorf("Line(0) = %q, want %q", got, "日本")
	}
}

func TestCellRendererDrawRect(t *testing.T) {
	c := newPlainCells(4, 2)

	c.DrawRect(debugmenu.Vec2{X: 1.5}, debugmenu.Vec2{X: 1, Y: 1}, debugmenu.RGBA(255, 0, 0, 255))
	for x, want := range []bool{false, true, true, false} {
		if got := c.cells[x].painted; got != want {
			t.Errorf("cell %d painted = %v, want %v", x, got, want)
		}
	}
	if got := c.cells[1].bg; got != debugmenu.RGBA(255, 0, 0, 255) {
		t.Errorf("opaque bg = %#x", got)
	}

	c.DrawRect(debugmenu.Vec2{Y: 1}, debugmenu.Vec2{X: 1, Y: 1}, debugmenu.RGBA(200, 100, 0, 128))
	if got, want := c.cells[4].bg, debugmenu.RGBA(100, 50, 0, 255); got != want {
		t.Errorf("blended bg = %#x, want %#x", got, want)
	}

	c.DrawRect(debugmenu.Vec2{}, debugmenu.Vec2{X: 4, Y: 2}, debugmenu.ColorTransparent)
	if c.cells[0].painted {
		t.Error("transparent rect painted a cell")
	}
}

func TestCellRendererWordWrap(t *testing.T) {
	c := newPlainCells(1, 1)
	const text = "alpha beta gamma"
	rows := c.WordWrap(text, debugmenu.FontRef{}, 11, nil)
	if len(rows) != 2 {
		t.Fatalf("WordWrap rows = %v, want 2 rows", rows)
	}
	if got := debugmenu.TextRow(text, rows, 0); got != "alpha beta" {
		t.Errorf("row 0 = %q", got)
	}
	if got := debugmenu.TextRow(text, rows, 1); got != "gamma" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestCellRendererRenderPlain(t *testing.T) {
	c := newPlainCells(6, 2)
	c.DrawRect(debugmenu.Vec2{}, debugmenu.Vec2{X: 6, Y: 1}, debugmenu.ColorDarkGray)
	c.DrawText("hi", debugmenu.Vec2{X: 1}, debugmenu.ColorWhite, debugmenu.FontRef{})
	c.DrawText("yo", debugmenu.Vec2{X: 4, Y: 1}, debugmenu.ColorYellow, debugmenu.FontRef{})

	got := c.Render()
	want := " hi   \n    yo"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if n := strings.Count(got, "\n"); n != 1 {
		t.Errorf("Render() has %d newlines, want 1", n)
	}
}

func TestCellRendererResize(t *testing.T) {
	c := newPlainCells(3, 1)
	c.DrawText("abc", debugmenu.Vec2{}, debugmenu.ColorWhite, debugmenu.FontRef{})
	c.Resize(5, 2)
	if w, h := c.Size(); w != 5 || h != 2 {
		t.Fatalf("Size() = %d,%d, want 5,2", w, h)
	}
	if got := c.Line(0); got != "" {
		t.Errorf("Line(0) after Resize = %q, want empty", got)
	}
}
