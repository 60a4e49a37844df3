package debugmenu_test

import (
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/go-theft-auto/debugmenu"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		pattern, title string
		want           bool
	}{
		{"sb1", "SimpleBool 1", true},
		{"xz", "SimpleBool 1", false},
		{"", "anything", true},
		{"SB1", "simplebool 1", true},
		{"1s", "SimpleBool 1", false},
		{"bool", "SimpleBool 1", true},
		{"ä", "Ärger", true},
		{"long pattern", "short", false},
	}
	for _, tt := range tests {
		if got := debugmenu.FuzzyMatch(tt.pattern, tt.title); got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.pattern, tt.title, got, tt.want)
		}
	}
}

// traversal returns the titles visited by ActionNext starting at the hot
// item until the cursor wraps back.
func traversal(t *testing.T, m *debugmenu.Menu) []string {
	t.Helper()
	start := m.Hot()
	out := []string{mustItem(t, m, start).Title()}
	for range 100 {
		m.Do(debugmenu.ActionNext)
		if m.Hot() == start {
			return out
		}
		out = append(out, mustItem(t, m, m.Hot()).Title())
	}
	t.Fatalf("traversal did not wrap: %v", out)
	return nil
}

func TestFilterTraversal(t *testing.T) {
	m := newTestMenu(t)
	var b1, b2, b3 bool
	mustBool(t, m, "SimpleBool 1", &b1)
	mustBool(t, m, "Folder/SimpleBool 2", &b2)
	mustBool(t, m, "Folder/SimpleBool 3", &b3)
	m.Open()

	if got := traversal(t, m); !slices.Equal(got, []string{"SimpleBool 1", "Folder"}) {
		t.Errorf("Expected closed Folder to hide its children, got %v", got)
	}

	m.Do(debugmenu.ActionFilter)
	m.TypeChar('f')
	m.TypeChar('3')
	if text, on := m.Filter(); text != "f3" || !on {
		t.Fatalf("Expected filter f3 enabled, got %q %v", text, on)
	}
	if got := traversal(t, m); !slices.Equal(got, []string{"Folder", "SimpleBool 3"}) {
		t.Errorf("Expected [Folder SimpleBool 3], got %v", got)
	}

	m.Do(debugmenu.ActionBackspace)
	if got := traversal(t, m); !slices.Equal(got, []string{"Folder", "SimpleBool 2", "SimpleBool 3"}) {
		t.Errorf("Expected filter f to keep Folder and both children, got %v", got)
	}

	m.Do(debugmenu.ActionBackspace)
	m.Do(debugmenu.ActionBackspace)
	if _, on := m.Filter(); on {
		t.Error("backspace on empty filter should disable filtering")
	}
	if n, _ := m.NumVisibleChildren(m.Root()); n != 2 {
		t.Errorf("Expected all root children visible again, got %d", n)
	}
}

func TestFilterHidesHot(t *testing.T) {
	m := newTestMenu(t)
	var a, b bool
	mustBool(t, m, "Audio/Mute", &a)
	mustBool(t, m, "Render/Wireframe", &b)
	m.Open()
	if err := m.SetHot(mustGet(t, m, "Audio/Mute")); err != nil {
		t.Fatalf("SetHot returned error: %v", err)
	}

	m.SetFilter("wire")
	if got := mustItem(t, m, m.Hot()).Title(); got != "Render" {
		t.Errorf("Expected hot to move to the first visible row, got %q", got)
	}
}

func TestFilterTruncates(t *testing.T) {
	m := newTestMenu(t)
	m.SetFilter(strings.Repeat("ab", 100))
	text, _ := m.Filter()
	if len(text) != 64 {
		t.Errorf("Expected filter truncated to 64 bytes, got %d", len(text))
	}
	m.SetFilter(strings.Repeat("é", 40))
	text, _ = m.Filter()
	if !strings.HasSuffix(text, "é") || len(text) != 64 {
		t.Errorf("Expected truncation at a rune boundary, got %d bytes", len(text))
	}
}

// subtreeMatches is the reference definition of filter visibility.
func subtreeMatches(m *debugmenu.Menu, h debugmenu.Handle, filter string) bool {
	if debugmenu.FuzzyMatch(filter, strings.ReplaceAll(m.Path(h), "/", "")) {
		return true
	}
	for c := range m.Children(h) {
		if subtreeMatches(m, c, filter) {
			return true
		}
	}
	return false
}

func checkVisibleCounts(t *rapid.T, m *debugmenu.Menu, h debugmenu.Handle, filter string, on bool) {
	it, err := m.Item(h)
	if err != nil {
		t.Fatalf("Item returned error: %v", err)
	}
	if !it.IsFolder() {
		return
	}
	want := 0
	for c := range m.Children(h) {
		if !on || subtreeMatches(m, c, filter) {
			want++
		}
		checkVisibleCounts(t, m, c, filter, on)
	}
	got, err := m.NumVisibleChildren(h)
	if err != nil {
		t.Fatalf("NumVisibleChildren returned error: %v", err)
	}
	if got != want {
		t.Fatalf("folder %q: %d visible children, want %d (filter %q)", m.Path(h), got, want, filter)
	}
}

func TestVisibleCountInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m, err := debugmenu.New()
		if err != nil {
			t.Fatalf("New() returned error: %v", err)
		}
		seg := rapid.SampledFrom([]string{"Alpha", "Beta", "Gamma", "Delta", "Bool 1", "Bool 2"})
		var targets [64]bool
		n := rapid.IntRange(1, len(targets)).Draw(t, "items")
		var paths []string
		for i := range n {
			segs := rapid.SliceOfN(seg, 0, 2).Draw(t, "dirs")
			p := strings.Join(append(segs, "Leaf"+seg.Draw(t, "leaf")), "/")
			if _, err := m.CreateBoolItem(debugmenu.Handle{}, p, "", &targets[i]); err != nil {
				t.Fatalf("CreateBoolItem(%q) returned error: %v", p, err)
			}
			paths = append(paths, p)
		}

		t.Repeat(map[string]func(*rapid.T){
			"filter": func(t *rapid.T) {
				f := rapid.StringMatching(`[abglt12 ]{0,4}`).Draw(t, "filter")
				m.SetFilter(f)
			},
			"disable": func(t *rapid.T) {
				m.DisableFilter()
			},
			"remove": func(t *rapid.T) {
				p := rapid.SampledFrom(paths).Draw(t, "remove")
				if i := strings.LastIndexByte(p, '/'); i > 0 && rapid.Bool().Draw(t, "folder") {
					p = p[:i]
				}
				_ = m.RemoveItemByPath(p)
			},
			"create": func(t *rapid.T) {
				p := rapid.SampledFrom(paths).Draw(t, "create")
				if _, err := m.CreateBoolItem(debugmenu.Handle{}, p, "", &targets[0]); err != nil {
					t.Fatalf("CreateBoolItem(%q) returned error: %v", p, err)
				}
			},
			"": func(t *rapid.T) {
				filter, on := m.Filter()
				checkVisibleCounts(t, m, m.Root(), filter, on)
			},
		})
	})
}
