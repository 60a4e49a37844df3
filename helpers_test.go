package debugmenu_test

import (
	"testing"
	"unicode/utf8"

	"github.com/go-theft-auto/debugmenu"
)

// drawCall is one call recorded by recordRenderer.
type drawCall struct {
	rect  bool
	text  string
	pos   debugmenu.Vec2
	size  debugmenu.Vec2
	color uint32
}

// recordRenderer records draw calls and measures text as 8x8 cells.
type recordRenderer struct {
	calls []drawCall
}

func (r *recordRenderer) DrawText(text string, pos debugmenu.Vec2, color uint32, font debugmenu.FontRef) {
	r.calls = append(r.calls, drawCall{text: text, pos: pos, color: color})
}

func (r *recordRenderer) DrawRect(pos, size debugmenu.Vec2, color uint32) {
	r.calls = append(r.calls, drawCall{rect: true, pos: pos, size: size, color: color})
}

func (r *recordRenderer) MeasureText(text string, font debugmenu.FontRef) debugmenu.Vec2 {
	return debugmenu.Vec2{X: float32(utf8.RuneCountInString(text)) * 8 * font.Scale, Y: 8 * font.Scale}
}

func (r *recordRenderer) WordWrap(text string, font debugmenu.FontRef, maxWidth float32, rows []int) []int {
	return debugmenu.WrapText(text, maxWidth, func(s string) float32 {
		return r.MeasureText(s, font).X
	}, rows)
}

func (r *recordRenderer) reset() {
	r.calls = r.calls[:0]
}

// texts returns the text of every DrawText call in order.
func (r *recordRenderer) texts() []string {
	var out []string
	for _, c := range r.calls {
		if !c.rect {
			out = append(out, c.text)
		}
	}
	return out
}

// drewText reports whether s was drawn.
func (r *recordRenderer) drewText(s string) bool {
	for _, c := range r.calls {
		if !c.rect && c.text == s {
			return true
		}
	}
	return false
}

func newTestMenu(t testing.TB, opts ...debugmenu.Option) *debugmenu.Menu {
	t.Helper()
	m, err := debugmenu.New(opts...)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return m
}

func mustBool(t testing.TB, m *debugmenu.Menu, path string, target *bool) debugmenu.Handle {
	t.Helper()
	h, err := m.CreateBoolItem(debugmenu.Handle{}, path, "", target)
	if err != nil {
		t.Fatalf("CreateBoolItem(%q) returned error: %v", path, err)
	}
	return h
}

func mustGet(t testing.TB, m *debugmenu.Menu, path string) debugmenu.Handle {
	t.Helper()
	h, err := m.GetItem(debugmenu.Handle{}, path, false)
	if err != nil {
		t.Fatalf("GetItem(%q) returned error: %v", path, err)
	}
	return h
}

func mustItem(t testing.TB, m *debugmenu.Menu, h debugmenu.Handle) *debugmenu.Item {
	t.Helper()
	it, err := m.Item(h)
	if err != nil {
		t.Fatalf("Item(%v) returned error: %v", h, err)
	}
	return it
}

// childTitles returns the titles of the visible children of h.
func childTitles(t testing.TB, m *debugmenu.Menu, h debugmenu.Handle) []string {
	t.Helper()
	var out []string
	for c := range m.Children(h) {
		if it := mustItem(t, m, c); it.Visible() {
			out = append(out, it.Title())
		}
	}
	return out
}
