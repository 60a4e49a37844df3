package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-theft-auto/debugmenu"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ScreenWidth != 1280 || cfg.ScreenHeight != 720 {
		t.Fatalf("screen = %vx%v, want 1280x720", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Style != defaultStyle {
		t.Fatalf("Style = %q, want %q", cfg.Style, defaultStyle)
	}
	if !strings.HasPrefix(cfg.SaveFile, home) {
		t.Fatalf("SaveFile = %q, want it under HOME %q", cfg.SaveFile, home)
	}
	if cfg.Arena != debugmenu.DefaultArenaConfig() {
		t.Fatalf("Arena = %+v, want defaults", cfg.Arena)
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "menu.toml", `
style = " GTA "
align = "right"
menu_size_item = true
font_scale = 2.0
save_file = "~/saves/menu.dmenu"

[screen]
width = 1920

[arena]
items = 64

[keys]
next_long = ["PgDn", "Right"]

[[override]]
path = "Cheats/God Mode"
value = "True"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Style != "gta" || cfg.Align != debugmenu.AlignRight || !cfg.MenuSizeItem {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ScreenWidth != 1920 || cfg.ScreenHeight != 720 {
		t.Fatalf("screen = %vx%v, want 1920x720", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Arena.Items != 64 || cfg.Arena.Spans != debugmenu.DefaultArenaConfig().Spans {
		t.Fatalf("Arena = %+v", cfg.Arena)
	}
	if !strings.HasSuffix(cfg.SaveFile, filepath.Join("saves", "menu.dmenu")) || strings.HasPrefix(cfg.SaveFile, "~") {
		t.Fatalf("SaveFile = %q, want expanded path", cfg.SaveFile)
	}
	want := []debugmenu.Override{{Path: "Cheats/God Mode", Value: "True"}}
	if !slices.Equal(cfg.Overrides, want) {
		t.Fatalf("Overrides = %+v, want %+v", cfg.Overrides, want)
	}

	style, err := cfg.MenuStyle()
	if err != nil || style.FontScale != 2 {
		t.Fatalf("MenuStyle = %v, %v; want font scale 2", style.FontScale, err)
	}
	actions, err := cfg.ActionMap()
	if err != nil {
		t.Fatalf("ActionMap returned error: %v", err)
	}
	if got := actions.Buttons(debugmenu.ActionNextLong); !slices.Equal(got, []debugmenu.Button{debugmenu.ButtonPageDown, debugmenu.ButtonRight}) {
		t.Fatalf("next_long buttons = %v", got)
	}
	if got := actions.Buttons(debugmenu.ActionNext); !slices.Equal(got, []debugmenu.Button{debugmenu.ButtonDown}) {
		t.Fatalf("unbound actions should keep defaults, got %v", got)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := writeConfig(t, "menu.yaml", `
style: cell
focus_height: 0.5
screen:
  width: 120
  height: 40
keys:
  toggle: [Toggle, Filter]
overrides:
  - path: Render/Quality
    value: High
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Style != "cell" || cfg.FocusHeight != 0.5 || cfg.ScreenWidth != 120 || cfg.ScreenHeight != 40 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.Overrides) != 1 || cfg.Overrides[0].Value != "High" {
		t.Fatalf("Overrides = %+v", cfg.Overrides)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		config bool // wraps debugmenu.ErrConfiguration
	}{
		{"syntax", "style = ", false},
		{"align", `align = "middle"`, true},
		{"style", `style = "neon"`, true},
		{"action", "[keys]\nwarp = [\"Up\"]", true},
		{"button", "[keys]\nnext = [\"Joystick\"]", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body), FormatTOML)
			if err == nil {
				t.Fatal("Parse returned nil error")
			}
			if got := errors.Is(err, debugmenu.ErrConfiguration); got != tt.config {
				t.Fatalf("errors.Is(ErrConfiguration) = %v, want %v (%v)", got, tt.config, err)
			}
		})
	}
}

func TestNewMenu(t *testing.T) {
	cfg := Default()
	cfg.MenuSizeItem = true
	cfg.Overrides = []debugmenu.Override{{Path: debugmenu.MenuSizeItemPath, Value: "Large"}}

	m, err := cfg.NewMenu()
	if err != nil {
		t.Fatalf("NewMenu returned error: %v", err)
	}
	if n := m.ApplyOverrides(cfg.Overrides); n != 1 {
		t.Fatalf("ApplyOverrides = %d, want 1", n)
	}
	if got := m.ScreenSize(); got != (debugmenu.Vec2{X: 1280, Y: 720}) {
		t.Fatalf("ScreenSize = %v", got)
	}

	cfg.FocusHeight = 3
	if _, err := cfg.NewMenu(); !errors.Is(err, debugmenu.ErrConfiguration) {
		t.Fatalf("NewMenu with bad focus height = %v, want ErrConfiguration", err)
	}
}
