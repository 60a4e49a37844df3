package debugmenu_test

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/go-theft-auto/debugmenu"
)

type codecFixture struct {
	m       *debugmenu.Menu
	leaves  []debugmenu.Handle
	quality int
	fov     float32
	flags   [3]bool
}

// newCodecFixture builds the same tree every time so that a save from one
// instance can be loaded into another.
func newCodecFixture(t testing.TB) *codecFixture {
	t.Helper()
	f := &codecFixture{m: newTestMenu(t)}
	add := func(h debugmenu.Handle, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("create returned error: %v", err)
		}
		f.leaves = append(f.leaves, h)
	}
	add(f.m.CreateArrayItem(debugmenu.Handle{}, "Render/Quality", "", []string{"Low", "Medium", "High"},
		debugmenu.ArrayValues([]int{0, 1, 2}, &f.quality)))
	add(f.m.CreateArrayItem(debugmenu.Handle{}, "Render/Camera/FOV", "", []string{"60", "75", "90", "110"},
		debugmenu.ArrayValues([]float32{60, 75, 90, 110}, &f.fov), debugmenu.WithDefaultIndex(1)))
	add(f.m.CreateBoolItem(debugmenu.Handle{}, "Cheats/God Mode", "", &f.flags[0]))
	add(f.m.CreateBoolItem(debugmenu.Handle{}, "Cheats/Infinite Ammo", "", &f.flags[1]))
	add(f.m.CreateBoolItem(debugmenu.Handle{}, "Show FPS", "", &f.flags[2]))
	if _, err := f.m.CreatePresetItem(debugmenu.Handle{}, "Cheats/Teleport", "", []string{"Home", "Airport"}, func(int) {}); err != nil {
		t.Fatalf("CreatePresetItem returned error: %v", err)
	}
	return f
}

func (f *codecFixture) activeIndices(t testing.TB) []int {
	t.Helper()
	out := make([]int, len(f.leaves))
	for i, h := range f.leaves {
		out[i] = mustItem(t, f.m, h).ActiveIndex()
	}
	return out
}

func TestSaveFormat(t *testing.T) {
	f := newCodecFixture(t)
	if got := string(f.m.AppendSave(nil)); got != "dmenu 1\n" {
		t.Errorf("Expected header only for defaults, got %q", got)
	}

	_ = f.m.SetActiveIndex(f.leaves[1], 3)
	_ = f.m.SetActiveIndex(f.leaves[0], 2)
	_ = f.m.SetActiveIndex(f.leaves[4], 0)

	want := "dmenu 1\nRender/Quality\tHigh\nRender/Camera/FOV\t110\nShow FPS\tTrue\n"
	if got := string(f.m.AppendSave(nil)); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := f.m.SaveSize(); got != len(want) {
		t.Errorf("Expected SaveSize %d, got %d", len(want), got)
	}
	buf := make([]byte, len(want))
	n, err := f.m.Save(buf)
	if err != nil || string(buf[:n]) != want {
		t.Errorf("Save = %q, %v", buf[:n], err)
	}

	overrides := f.m.Overrides()
	if len(overrides) != 3 || overrides[1] != (debugmenu.Override{Path: "Render/Camera/FOV", Value: "110"}) {
		t.Errorf("unexpected overrides %+v", overrides)
	}
}

func TestSaveTruncates(t *testing.T) {
	f := newCodecFixture(t)
	for _, h := range f.leaves {
		_ = f.m.SetActiveIndex(h, 0)
	}
	full := f.m.AppendSave(nil)

	for size := 0; size <= len(full); size++ {
		buf := bytes.Repeat([]byte{0xAA}, len(full)+8)
		n, err := f.m.Save(buf[:size])
		if n > size {
			t.Fatalf("size %d: wrote %d bytes", size, n)
		}
		if !bytes.Equal(buf[size:], bytes.Repeat([]byte{0xAA}, len(buf)-size)) {
			t.Fatalf("size %d: wrote past the buffer", size)
		}
		if size == len(full) {
			if err != nil {
				t.Errorf("full buffer returned %v", err)
			}
			continue
		}
		if !errors.Is(err, debugmenu.ErrBufferTooSmall) {
			t.Errorf("size %d: expected ErrBufferTooSmall, got %v", size, err)
		}
		if !bytes.HasPrefix(full, buf[:n]) {
			t.Errorf("size %d: %q is not a prefix of the full save", size, buf[:n])
		}
		if n > 0 && buf[n-1] != '\n' {
			t.Errorf("size %d: partial record written: %q", size, buf[:n])
		}
	}
}

func TestSaveLoadIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := newCodecFixture(t)
		for i, h := range src.leaves {
			n := mustItem(t, src.m, h).NumValues()
			_ = src.m.SetActiveIndex(h, rapid.IntRange(0, n-1).Draw(rt, fmt.Sprintf("index%d", i)))
		}
		saved := src.m.AppendSave(nil)

		dst := newCodecFixture(t)
		if _, err := dst.m.Load(saved); err != nil {
			rt.Fatalf("Load returned error: %v", err)
		}
		if got, want := dst.activeIndices(t), src.activeIndices(t); !slices.Equal(got, want) {
			rt.Fatalf("Expected %v after load, got %v", want, got)
		}
		if again := dst.m.AppendSave(nil); !bytes.Equal(again, saved) {
			rt.Fatalf("second save differs: %q vs %q", again, saved)
		}
		if dst.quality != src.quality || dst.fov != src.fov || dst.flags != src.flags {
			rt.Fatalf("targets differ after load")
		}
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", debugmenu.ErrMalformed},
		{"wrong magic", "menu 1\n", debugmenu.ErrMalformed},
		{"bad version", "dmenu x\n", debugmenu.ErrMalformed},
		{"future version", "dmenu 2\nShow FPS\tTrue\n", debugmenu.ErrUnsupportedVersion},
		{"missing tab", "dmenu 1\nShow FPS True\n", debugmenu.ErrMalformed},
		{"empty path", "dmenu 1\n\tTrue\n", debugmenu.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCodecFixture(t)
			if _, err := f.m.Load([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadSkipsUnknown(t *testing.T) {
	f := newCodecFixture(t)
	data := "dmenu 1\nGone/Item\tTrue\nShow FPS\tMaybe\nCheats/Teleport\tAirport\n\nShow FPS\tTrue"
	n, err := f.m.Load([]byte(data))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if n != 1 || !f.flags[2] {
		t.Errorf("Expected only Show FPS to load, got %d applied, flag %v", n, f.flags[2])
	}
	if f.m.LoadItem("Render", "High") {
		t.Error("LoadItem should not apply to folders")
	}
	if n, err := f.m.Load([]byte("dmenu 1")); err != nil || n != 0 {
		t.Errorf("header without newline: %d, %v", n, err)
	}
}

func TestSaveFunc(t *testing.T) {
	f := newCodecFixture(t)
	_ = f.m.SetActiveIndex(f.leaves[0], 1)
	_ = f.m.SetActiveIndex(f.leaves[2], 0)

	var paths []string
	n := f.m.SaveFunc(func(path, value string) bool {
		paths = append(paths, strings.Clone(path)+"="+value)
		return true
	})
	want := []string{"Render/Quality=Medium", "Cheats/God Mode=True"}
	if n != 2 || !slices.Equal(paths, want) {
		t.Errorf("Expected %v, got %d %v", want, n, paths)
	}

	n = f.m.SaveFunc(func(string, string) bool { return false })
	if n != 1 {
		t.Errorf("Expected the walk to stop after 1, got %d", n)
	}
}

func TestMsgpackOverrides(t *testing.T) {
	src := newCodecFixture(t)
	_ = src.m.SetActiveIndex(src.leaves[1], 2)
	_ = src.m.SetActiveIndex(src.leaves[3], 0)
	data, err := src.m.MarshalOverrides()
	if err != nil {
		t.Fatalf("MarshalOverrides returned error: %v", err)
	}

	dst := newCodecFixture(t)
	n, err := dst.m.UnmarshalOverrides(data)
	if err != nil {
		t.Fatalf("UnmarshalOverrides returned error: %v", err)
	}
	if n != 2 || dst.fov != 90 || !dst.flags[1] {
		t.Errorf("Expected 2 overrides with fov 90, got %d fov %v", n, dst.fov)
	}

	if _, err := dst.m.UnmarshalOverrides([]byte{0xc1}); !errors.Is(err, debugmenu.ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) GetText() (string, error) { return c.text, c.err }

func (c *memClipboard) SetText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func TestClipboardOverrides(t *testing.T) {
	src := newCodecFixture(t)
	_ = src.m.SetActiveIndex(src.leaves[0], 2)
	cb := &memClipboard{}
	if err := src.m.CopyOverrides(cb); err != nil {
		t.Fatalf("CopyOverrides returned error: %v", err)
	}

	dst := newCodecFixture(t)
	n, err := dst.m.PasteOverrides(cb)
	if err != nil || n != 1 || dst.quality != 2 {
		t.Errorf("Expected quality 2 from paste, got %d %v quality %d", n, err, dst.quality)
	}

	cb.text = "not a save"
	if _, err := dst.m.PasteOverrides(cb); !errors.Is(err, debugmenu.ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
	cb.err = errors.New("no display")
	if err := dst.m.CopyOverrides(cb); err == nil {
		t.Error("Expected CopyOverrides to report clipboard failure")
	}
}

func TestLoadCRLF(t *testing.T) {
	f := newCodecFixture(t)
	n, err := f.m.Load([]byte("dmenu 1\r\nCheats/God Mode\tTrue\r\nRender/Quality\tHigh\r\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if n != 2 || !f.flags[0] || f.quality != 2 {
		t.Errorf("Expected 2 applied, god mode and High, got %d, %v, %d", n, f.flags[0], f.quality)
	}
}
