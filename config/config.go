package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/debugmenu"
)

// Config holds the host-side settings of a debug menu.
type Config struct {
	ScreenWidth  float32
	ScreenHeight float32
	Align        debugmenu.Align
	FocusHeight  float32
	ItemHeight   float32
	MenuSizeItem bool
	Style        string
	FontScale    float32
	Arena        debugmenu.ArenaConfig
	Verbose      bool

	// SaveFile is where hosts persist overrides between runs.
	SaveFile string

	// Keys rebinds actions by name, e.g. "next_long" -> ["PgDn"].
	Keys map[string][]string

	// Overrides are applied after the host has built its tree.
	Overrides []debugmenu.Override
}

const (
	defaultConfigPath = "~/.config/debugmenu/config.toml"
	defaultSaveFile   = "~/.local/share/debugmenu/overrides.dmenu"
	defaultStyle      = "default"
)

// raw mirrors the file layout. Zero values mean "use the default".
type raw struct {
	Screen struct {
		Width  float32 `toml:"width" yaml:"width"`
		Height float32 `toml:"height" yaml:"height"`
	} `toml:"screen" yaml:"screen"`
	Align        string  `toml:"align" yaml:"align"`
	FocusHeight  float32 `toml:"focus_height" yaml:"focus_height"`
	ItemHeight   float32 `toml:"item_height" yaml:"item_height"`
	MenuSizeItem bool    `toml:"menu_size_item" yaml:"menu_size_item"`
	Style        string  `toml:"style" yaml:"style"`
	FontScale    float32 `toml:"font_scale" yaml:"font_scale"`
	SaveFile     string  `toml:"save_file" yaml:"save_file"`
	Verbose      bool    `toml:"verbose" yaml:"verbose"`
	Arena        struct {
		Items     int `toml:"items" yaml:"items"`
		TextBytes int `toml:"text_bytes" yaml:"text_bytes"`
		Spans     int `toml:"spans" yaml:"spans"`
	} `toml:"arena" yaml:"arena"`
	Keys      map[string][]string  `toml:"keys" yaml:"keys"`
	Overrides []debugmenu.Override `toml:"override" yaml:"overrides"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		Align:        debugmenu.AlignLeft,
		FocusHeight:  0.4,
		Style:        defaultStyle,
		Arena:        debugmenu.DefaultArenaConfig(),
		SaveFile:     mustExpand(defaultSaveFile),
	}
}

// Load reads the config at path, or at the default location when path is
// empty. A missing file yields Default. Files ending in .yaml or .yml are
// parsed as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, formatOf(resolved))
}

// Format is the syntax of a config file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes a config document and fills unset fields with defaults.
func Parse(data []byte, format Format) (Config, error) {
	var r raw
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &r)
	default:
		err = toml.Unmarshal(data, &r)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if r.Screen.Width > 0 {
		cfg.ScreenWidth = r.Screen.Width
	}
	if r.Screen.Height > 0 {
		cfg.ScreenHeight = r.Screen.Height
	}
	if cfg.Align, err = debugmenu.ParseAlign(strings.TrimSpace(r.Align)); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if r.FocusHeight != 0 {
		cfg.FocusHeight = r.FocusHeight
	}
	cfg.ItemHeight = r.ItemHeight
	cfg.MenuSizeItem = r.MenuSizeItem
	cfg.Verbose = r.Verbose
	if s := strings.TrimSpace(r.Style); s != "" {
		cfg.Style = strings.ToLower(s)
	}
	cfg.FontScale = r.FontScale
	if r.Arena.Items > 0 {
		cfg.Arena.Items = r.Arena.Items
	}
	if r.Arena.TextBytes > 0 {
		cfg.Arena.TextBytes = r.Arena.TextBytes
	}
	if r.Arena.Spans > 0 {
		cfg.Arena.Spans = r.Arena.Spans
	}
	if s := strings.TrimSpace(r.SaveFile); s != "" {
		cfg.SaveFile = mustExpand(s)
	}
	cfg.Keys = r.Keys
	cfg.Overrides = r.Overrides

	if _, err := cfg.MenuStyle(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.ActionMap(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// MenuStyle returns the named style with FontScale applied.
func (c Config) MenuStyle() (debugmenu.Style, error) {
	var s debugmenu.Style
	switch c.Style {
	case "", "default":
		s = debugmenu.DefaultStyle()
	case "gta":
		s = debugmenu.GTAStyle()
	case "cell", "terminal":
		s = debugmenu.CellStyle()
	default:
		return s, fmt.Errorf("style %q: %w", c.Style, debugmenu.ErrConfiguration)
	}
	if c.FontScale > 0 {
		s.FontScale = c.FontScale
	}
	return s, nil
}

// ActionMap returns the default bindings with Keys applied on top.
func (c Config) ActionMap() (debugmenu.ActionMap, error) {
	m := debugmenu.DefaultActionMap()
	for name, buttons := range c.Keys {
		a, ok := debugmenu.ParseAction(strings.TrimSpace(name))
		if !ok {
			return m, fmt.Errorf("keys: unknown action %q: %w", name, debugmenu.ErrConfiguration)
		}
		bs := make([]debugmenu.Button, 0, len(buttons))
		for _, bn := range buttons {
			b, ok := debugmenu.ParseButton(strings.TrimSpace(bn))
			if !ok {
				return m, fmt.Errorf("keys: %s: unknown button %q: %w", name, bn, debugmenu.ErrConfiguration)
			}
			bs = append(bs, b)
		}
		m.Bind(a, bs...)
	}
	return m, nil
}

// Options converts the config into menu options. extra are appended last
// and win over the file.
func (c Config) Options(extra ...debugmenu.Option) ([]debugmenu.Option, error) {
	style, err := c.MenuStyle()
	if err != nil {
		return nil, err
	}
	actions, err := c.ActionMap()
	if err != nil {
		return nil, err
	}
	opts := []debugmenu.Option{
		debugmenu.WithScreenSize(debugmenu.Vec2{X: c.ScreenWidth, Y: c.ScreenHeight}),
		debugmenu.WithAlign(c.Align),
		debugmenu.WithFocusHeight(c.FocusHeight),
		debugmenu.WithItemHeight(c.ItemHeight),
		debugmenu.WithMenuSizeItem(c.MenuSizeItem),
		debugmenu.WithStyle(style),
		debugmenu.WithActionMap(actions),
		debugmenu.WithArena(c.Arena),
	}
	return append(opts, extra...), nil
}

// NewMenu creates a menu from the config.
func (c Config) NewMenu(extra ...debugmenu.Option) (*debugmenu.Menu, error) {
	opts, err := c.Options(extra...)
	if err != nil {
		return nil, err
	}
	debugmenu.SetVerbose(c.Verbose)
	return debugmenu.New(opts...)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
