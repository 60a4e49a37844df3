package debugmenu_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/go-theft-auto/debugmenu"
)

func TestDrawListPool(t *testing.T) {
	dl1 := debugmenu.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, debugmenu.ColorWhite)
	debugmenu.ReleaseDrawList(dl1)

	dl2 := debugmenu.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	debugmenu.ReleaseDrawList(dl2)
}

func TestDrawListBatching(t *testing.T) {
	dl := debugmenu.AcquireDrawList()
	defer debugmenu.ReleaseDrawList(dl)
	r := debugmenu.NewDrawListRenderer(dl, 7)

	r.DrawRect(debugmenu.Vec2{}, debugmenu.Vec2{X: 10, Y: 10}, debugmenu.ColorBlack)
	r.DrawRect(debugmenu.Vec2{X: 10}, debugmenu.Vec2{X: 10, Y: 10}, debugmenu.ColorBlack)
	r.DrawText("ab", debugmenu.Vec2{}, debugmenu.ColorWhite, debugmenu.FontRef{Scale: 1})
	r.DrawText("", debugmenu.Vec2{}, debugmenu.ColorWhite, debugmenu.FontRef{Scale: 1})
	r.DrawRect(debugmenu.Vec2{}, debugmenu.Vec2{X: 10, Y: 10}, debugmenu.ColorTransparent)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if cmd := dl.CmdBuffer[0]; cmd.TextureID != 0 || cmd.ElemCount != 12 {
		t.Errorf("Expected untextured command with 12 indices, got %+v", cmd)
	}
	if cmd := dl.CmdBuffer[1]; cmd.TextureID != 7 || cmd.ElemCount != 12 || cmd.VertexOffset != 8 {
		t.Errorf("Expected font command with 12 indices at vertex 8, got %+v", cmd)
	}

	size := r.MeasureText("héllo", debugmenu.FontRef{Scale: 2})
	if size.X != 5*debugmenu.FontGlyphWidth*2 || size.Y != debugmenu.FontGlyphHeight*2 {
		t.Errorf("Expected measure by rune count, got %+v", size)
	}
}

func TestGlyphCell(t *testing.T) {
	tests := []struct {
		r        rune
		col, row int
	}{
		{' ', 0, 0},
		{'A', 1, 2},
		{'~', 14, 5},
		{'→', 14, 1}, // same cell as '>'
		{'ü', 15, 1}, // '?'
	}
	for _, tt := range tests {
		col, row := debugmenu.GlyphCell(tt.r)
		if col != tt.col || row != tt.row {
			t.Errorf("GlyphCell(%q) = %d,%d, expected %d,%d", tt.r, col, row, tt.col, tt.row)
		}
	}
}

func cellMeasure(s string) float32 {
	return float32(utf8.RuneCountInString(s))
}

func wrapped(text string, width float32) []string {
	rows := debugmenu.WrapText(text, width, cellMeasure, nil)
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = debugmenu.TextRow(text, rows, i)
	}
	return out
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width float32
		want  []string
	}{
		{"", 10, []string{}},
		{"short", 10, []string{"short"}},
		{"the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"  leading spaces", 8, []string{"leading", "spaces"}},
		{"line one\nline two", 20, []string{"line one", "line two"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"trailing ", 20, []string{"trailing"}},
	}
	for _, tt := range tests {
		if got := wrapped(tt.text, tt.width); !slices.Equal(got, tt.want) {
			t.Errorf("wrap(%q, %v) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestStyles(t *testing.T) {
	styles := []debugmenu.Style{
		debugmenu.DefaultStyle(),
		debugmenu.GTAStyle(),
		debugmenu.CellStyle(),
	}
	for i, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("style %d has zero TextColor", i)
		}
		if style.CharWidth == 0 || style.CharHeight == 0 {
			t.Errorf("style %d has zero glyph size", i)
		}
	}
}

func TestColorFunctions(t *testing.T) {
	c := debugmenu.RGBA(255, 128, 64, 200)
	r, g, b, a := debugmenu.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}
	if _, _, _, a := debugmenu.UnpackRGBA(debugmenu.WithAlpha(c, 0.5)); a != 100 {
		t.Errorf("Expected alpha 100, got %d", a)
	}
	if got := debugmenu.LerpColor(debugmenu.ColorBlack, debugmenu.ColorWhite, 2); got != debugmenu.ColorWhite {
		t.Errorf("Expected lerp to clamp at white, got %#x", got)
	}
}

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  debugmenu.Option
	}{
		{"no item slots", debugmenu.WithArena(debugmenu.ArenaConfig{Items: 0, TextBytes: 64, Spans: 4})},
		{"focus above one", debugmenu.WithFocusHeight(1.5)},
		{"negative item height", debugmenu.WithItemHeight(-1)},
		{"negative screen", debugmenu.WithScreenSize(debugmenu.Vec2{X: -1, Y: 10})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := debugmenu.New(tt.opt)
			if !errors.Is(err, debugmenu.ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
			if debugmenu.KindOf(err) != debugmenu.KindConfiguration {
				t.Errorf("Expected KindConfiguration, got %v", debugmenu.KindOf(err))
			}
		})
	}
	if _, err := debugmenu.ParseAlign("center"); !errors.Is(err, debugmenu.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration for bad align, got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want debugmenu.ErrorKind
	}{
		{nil, debugmenu.KindUnknown},
		{fmt.Errorf("wrapped: %w", debugmenu.ErrOutOfMemory), debugmenu.KindCapacityExceeded},
		{debugmenu.ErrQueueFull, debugmenu.KindCapacityExceeded},
		{&debugmenu.PathError{Op: "get", Path: "A", Err: debugmenu.ErrNotFound}, debugmenu.KindNotFound},
		{debugmenu.ErrStaleHandle, debugmenu.KindStaleHandle},
		{debugmenu.ErrNotFolder, debugmenu.KindInvalidArgument},
		{errors.New("other"), debugmenu.KindUnknown},
	}
	for _, tt := range tests {
		if got := debugmenu.KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %v, expected %v", tt.err, got, tt.want)
		}
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := debugmenu.AcquireDrawList()
	defer debugmenu.ReleaseDrawList(dl)

	for i := 0; b.Loop(); i++ {
		if i%100 == 0 {
			dl.Clear()
		}
		dl.AddText(0, 0, "Hello World", debugmenu.ColorWhite, 7, 13)
	}
}

func BenchmarkMenuFrame(b *testing.B) {
	m := newTestMenu(b)
	flags := make([]bool, 100)
	for i := range flags {
		if _, err := m.CreateBoolItem(debugmenu.Handle{}, fmt.Sprintf("Group %d/Flag %d", i%10, i), "", &flags[i]); err != nil {
			b.Fatalf("CreateBoolItem returned error: %v", err)
		}
	}
	dl := debugmenu.AcquireDrawList()
	defer debugmenu.ReleaseDrawList(dl)
	r := debugmenu.NewDrawListRenderer(dl, 1)
	m.Open()

	for b.Loop() {
		dl.Clear()
		m.Do(debugmenu.ActionNext)
		m.Update(1.0 / 60)
		m.Draw(r)
	}
}

func TestFontAtlasImage(t *testing.T) {
	img := debugmenu.FontAtlasImage()
	if b := img.Bounds(); b.Dx() != debugmenu.FontAtlasWidth || b.Dy() != debugmenu.FontAtlasHeight {
		t.Fatalf("Expected %dx%d atlas, got %v", debugmenu.FontAtlasWidth, debugmenu.FontAtlasHeight, b)
	}

	ink := func(r rune) int {
		col, row := debugmenu.GlyphCell(r)
		n := 0
		for y := row * debugmenu.FontGlyphHeight; y < (row+1)*debugmenu.FontGlyphHeight; y++ {
			for x := col * debugmenu.FontGlyphWidth; x < (col+1)*debugmenu.FontGlyphWidth; x++ {
				if img.AlphaAt(x, y).A != 0 {
					n++
				}
			}
		}
		return n
	}
	if ink(' ') != 0 {
		t.Error("space should be blank")
	}
	for _, r := range "AZaz09?<>_" {
		if ink(r) == 0 {
			t.Errorf("glyph %q has no pixels", r)
		}
	}
}
