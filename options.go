package debugmenu

import (
	"fmt"
	"log/slog"
)

// Align selects which screen edge the menu panel is attached to.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// ParseAlign converts "left" or "right" to an Align.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "", "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("align %q: %w", s, ErrConfiguration)
	}
}

// config holds everything fixed at New.
type config struct {
	arena        ArenaConfig
	arenaBuf     []byte
	screenSize   Vec2
	focusHeight  float32
	align        Align
	itemHeight   float32
	menuSizeItem bool
	style        Style
	actions      ActionMap
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		arena:       DefaultArenaConfig(),
		screenSize:  Vec2{X: 1280, Y: 720},
		focusHeight: 0.4,
		align:       AlignLeft,
		itemHeight:  0, // derived from style
		style:       DefaultStyle(),
		actions:     DefaultActionMap(),
	}
}

// Option configures a Menu at construction.
type Option func(*config)

// WithArena sets the arena budget.
func WithArena(cfg ArenaConfig) Option {
	return func(c *config) { c.arena = cfg }
}

// WithArenaBuffer makes the arena carve text out of buf instead of
// allocating its own region. The menu owns buf until it is discarded.
func WithArenaBuffer(buf []byte) Option {
	return func(c *config) {
		c.arenaBuf = buf
		c.arena.TextBytes = cap(buf)
	}
}

// WithScreenSize sets the initial viewport size. Use Menu.Resize later.
func WithScreenSize(size Vec2) Option {
	return func(c *config) { c.screenSize = size }
}

// WithFocusHeight sets where the hot row sits in the viewport, as a fraction
// of its height (0 top, 1 bottom).
func WithFocusHeight(f float32) Option {
	return func(c *config) { c.focusHeight = f }
}

// WithAlign attaches the panel to the left or right screen edge.
func WithAlign(a Align) Option {
	return func(c *config) { c.align = a }
}

// WithItemHeight sets the row height. Zero derives it from the style.
func WithItemHeight(h float32) Option {
	return func(c *config) { c.itemHeight = h }
}

// WithMenuSizeItem adds the built-in "Menu Size" leaf under the root.
func WithMenuSizeItem(enabled bool) Option {
	return func(c *config) { c.menuSizeItem = enabled }
}

// WithStyle sets the visual style.
func WithStyle(style Style) Option {
	return func(c *config) { c.style = style }
}

// WithActionMap replaces the default button bindings.
func WithActionMap(m ActionMap) Option {
	return func(c *config) { c.actions = m }
}

// WithLogger sets the logger for this menu instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func (c *config) validate() error {
	switch {
	case c.arena.Items < 1:
		return fmt.Errorf("arena needs at least one item slot: %w", ErrConfiguration)
	case c.arena.TextBytes < 0 || c.arena.Spans < 0:
		return fmt.Errorf("negative arena size: %w", ErrConfiguration)
	case c.focusHeight < 0 || c.focusHeight > 1:
		return fmt.Errorf("focus height %v outside [0,1]: %w", c.focusHeight, ErrConfiguration)
	case c.itemHeight < 0:
		return fmt.Errorf("item height %v: %w", c.itemHeight, ErrConfiguration)
	case c.screenSize.X < 0 || c.screenSize.Y < 0:
		return fmt.Errorf("screen size %v: %w", c.screenSize, ErrConfiguration)
	}
	return nil
}
