package debugmenu

import (
	"log/slog"
)

// menuSizeTitles are the values of the built-in "Menu Size" leaf.
var menuSizeTitles = []string{"Small", "Medium", "Large"}

var menuSizeScales = []float32{0.75, 1, 1.5}

// MenuSizeItemPath is the path of the built-in menu size control.
const MenuSizeItemPath = "Menu Size"

// Menu is a debug menu: an arena-backed tree of folders and leaves plus the
// navigation, filter and animation state that drives it.
//
// A Menu is not safe for concurrent use. Use a Queue to create items from
// other goroutines.
type Menu struct {
	arena *arena
	root  int32
	hot   int32
	cfg   config
	log   *slog.Logger

	isOpen   bool
	openness float32

	filterOn    bool
	filterBuf   [maxFilterLen]byte
	filterLen   int
	filterDirty bool

	scroll   ScrollState
	layout   LayoutInfo
	rowCount int

	sizeIndex int
	sizeScale float32

	wrapRows []int // scratch for WordWrap, preallocated
}

// New creates a menu with an empty root folder.
func New(opts ...Option) (*Menu, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &Menu{
		arena:     newArena(cfg.arena, cfg.arenaBuf),
		cfg:       cfg,
		log:       cfg.logger,
		sizeIndex: 1,
		sizeScale: 1,
		wrapRows:  make([]int, 0, 16),
	}
	if m.log == nil {
		m.log = defaultLogger
	}
	if err := m.initRoot(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustNew is like New but panics on error. Use it with static options.
func MustNew(opts ...Option) *Menu {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Menu) initRoot() error {
	idx, err := m.arena.alloc()
	if err != nil {
		return err
	}
	root := &m.arena.items[idx]
	root.kind = KindFolder
	root.depth = -1
	root.open = true
	root.openAnim = 1
	m.root = idx
	m.hot = idx
	m.filterDirty = true

	if m.cfg.menuSizeItem {
		if _, err := m.CreateArrayItem(Handle{}, MenuSizeItemPath, "Scales rows and text of this menu.",
			menuSizeTitles, FuncValues(len(menuSizeTitles), m.setMenuSize),
			WithDefaultIndex(m.sizeIndex)); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) setMenuSize(i int) {
	m.sizeIndex = i
	m.sizeScale = menuSizeScales[i]
}

// Reset removes every item and reclaims the whole arena. All handles
// obtained before become stale. Filter and open state are kept.
func (m *Menu) Reset() error {
	m.arena.reset()
	m.scroll = ScrollState{}
	m.log.Debug("menu reset")
	return m.initRoot()
}

// Root returns the handle of the root folder.
func (m *Menu) Root() Handle {
	return m.arena.handle(m.root)
}

// Item returns the item h refers to. The pointer is valid until the next
// structural mutation or Reset.
func (m *Menu) Item(h Handle) (*Item, error) {
	m.ensureFiltered()
	return m.arena.resolve(h)
}

// Hot returns the handle of the item under the cursor.
func (m *Menu) Hot() Handle {
	m.ensureFiltered()
	return m.arena.handle(m.hot)
}

// SetHot moves the cursor to h. Ancestors of h are opened.
func (m *Menu) SetHot(h Handle) error {
	it, err := m.arena.resolve(h)
	if err != nil {
		return err
	}
	m.ensureFiltered()
	if !it.visible {
		return pathErrf("set hot", m.Path(h), ErrNotFound)
	}
	m.cancelEdit()
	for p := it.parent; p != noItem; p = m.arena.items[p].parent {
		m.arena.items[p].open = true
	}
	m.hot = int32(h.index)
	return nil
}

// Open shows the menu and starts accepting navigation input.
func (m *Menu) Open() {
	if m.isOpen {
		return
	}
	m.isOpen = true
	m.ensureFiltered()
	if m.hot == m.root {
		if first := m.firstVisibleChild(m.root); first != noItem {
			m.hot = first
		}
	}
}

// Close hides the menu. An active edit is cancelled.
func (m *Menu) Close() {
	if !m.isOpen {
		return
	}
	m.cancelEdit()
	m.isOpen = false
}

// IsOpen reports whether the menu accepts navigation input.
func (m *Menu) IsOpen() bool {
	return m.isOpen
}

// Openness returns the slide-in factor of the whole menu, 0 hidden to 1 shown.
func (m *Menu) Openness() float32 {
	return smoothstep(m.openness)
}

// Resize updates the viewport size.
func (m *Menu) Resize(size Vec2) {
	m.cfg.screenSize = size
}

// ScreenSize returns the current viewport size.
func (m *Menu) ScreenSize() Vec2 {
	return m.cfg.screenSize
}

// Style returns the current style.
func (m *Menu) Style() Style {
	return m.cfg.style
}

// SetStyle sets the style.
func (m *Menu) SetStyle(style Style) {
	m.cfg.style = style
}

// ArenaStats reports arena occupancy.
func (m *Menu) ArenaStats() ArenaStats {
	return m.arena.stats()
}

// Logger returns the menu's logger.
func (m *Menu) Logger() *slog.Logger {
	return m.log
}
