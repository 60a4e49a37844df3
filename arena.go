package debugmenu

import (
	"fmt"
	"unsafe"
)

// ArenaConfig sizes the fixed regions a Menu carves its items from.
// Nothing grows after New: running out of any region fails with ErrOutOfMemory.
type ArenaConfig struct {
	Items     int // Item slots (folders + leaves, including the root)
	TextBytes int // Bytes for titles, descriptions and value titles
	Spans     int // Value-title slots shared by all leaves
}

// DefaultArenaConfig returns a budget that fits a few hundred items with
// short value lists.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Items:     1024,
		TextBytes: 64 << 10,
		Spans:     4096,
	}
}

// ArenaStats reports arena occupancy.
type ArenaStats struct {
	Items     int // Live item slots
	FreeSlots int // Slots still available, reused ones included
	MaxItems  int
	TextUsed  int
	TextCap   int
	SpansUsed int
	SpansCap  int
}

// Handle is a stable, generation-checked reference to an item.
// The zero Handle refers to nothing; tree operations treat it as "the root".
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "item(nil)"
	}
	return fmt.Sprintf("item(%d#%d)", h.index, h.gen)
}

const noItem int32 = -1

// arena owns every item of a menu. Slots are reused through a free list;
// text and spans are bump-allocated and only reclaimed by reset.
type arena struct {
	items    []Item
	freeHead int32
	bumped   int32 // slots handed out at least once
	live     int

	text      []byte
	ownedText bool
	spans     []string
}

func newArena(cfg ArenaConfig, textBuf []byte) *arena {
	a := &arena{
		items:    make([]Item, cfg.Items),
		freeHead: noItem,
		spans:    make([]string, 0, cfg.Spans),
	}
	if textBuf != nil {
		a.text = textBuf[:0]
	} else {
		a.text = make([]byte, 0, cfg.TextBytes)
		a.ownedText = true
	}
	return a
}

// alloc returns a fresh, zeroed slot with a new generation.
func (a *arena) alloc() (int32, error) {
	var idx int32
	switch {
	case a.freeHead != noItem:
		idx = a.freeHead
		a.freeHead = a.items[idx].next
	case int(a.bumped) < len(a.items):
		idx = a.bumped
		a.bumped++
	default:
		return noItem, ErrOutOfMemory
	}

	it := &a.items[idx]
	gen := it.gen
	if gen == 0 {
		gen = 1
	}
	*it = Item{
		gen:        gen,
		live:       true,
		parent:     noItem,
		firstChild: noItem,
		lastChild:  noItem,
		next:       noItem,
		prev:       noItem,
		hotIndex:   -1,
		activeIdx:  -1,
		defaultIdx: -1,
		visible:    true,
	}
	a.live++
	return idx, nil
}

// free returns a detached slot to the free list and invalidates its handles.
func (a *arena) free(idx int32) {
	it := &a.items[idx]
	assert(it.live, "double free of item slot")
	gen := it.gen + 1
	if gen == 0 {
		gen = 1
	}
	// Drop references to caller-owned values so they can be collected.
	*it = Item{gen: gen, next: a.freeHead}
	a.freeHead = idx
	a.live--
}

// copyString copies s into the text region and returns a view of the copy.
// Views stay valid until reset.
func (a *arena) copyString(s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	off := len(a.text)
	if off+len(s) > cap(a.text) {
		return "", ErrOutOfMemory
	}
	a.text = append(a.text, s...)
	return unsafe.String(&a.text[off], len(s)), nil
}

// allocSpans reserves n consecutive value-title slots.
func (a *arena) allocSpans(n int) ([]string, error) {
	start := len(a.spans)
	if start+n > cap(a.spans) {
		return nil, ErrOutOfMemory
	}
	a.spans = a.spans[:start+n]
	return a.spans[start : start+n : start+n], nil
}

// resolve returns the live item h refers to.
func (a *arena) resolve(h Handle) (*Item, error) {
	if h.IsZero() || int(h.index) >= len(a.items) {
		return nil, ErrStaleHandle
	}
	it := &a.items[h.index]
	if !it.live || it.gen != h.gen {
		return nil, ErrStaleHandle
	}
	return it, nil
}

func (a *arena) handle(idx int32) Handle {
	return Handle{index: uint32(idx), gen: a.items[idx].gen}
}

// reset discards every item. Generations survive so that handles from
// before the reset stay stale.
func (a *arena) reset() {
	for i := range a.items[:a.bumped] {
		gen := a.items[i].gen + 1
		if gen == 0 {
			gen = 1
		}
		a.items[i] = Item{gen: gen}
	}
	a.freeHead = noItem
	// Slots keep their generations, so hand them out through the free list.
	for i := a.bumped - 1; i >= 0; i-- {
		a.items[i].next = a.freeHead
		a.freeHead = i
	}
	a.live = 0

	if a.ownedText {
		// A fresh region keeps strings handed out before the reset intact.
		a.text = make([]byte, 0, cap(a.text))
	} else {
		a.text = a.text[:0]
	}
	clear(a.spans)
	a.spans = a.spans[:0]
}

func (a *arena) stats() ArenaStats {
	return ArenaStats{
		Items:     a.live,
		FreeSlots: len(a.items) - a.live,
		MaxItems:  len(a.items),
		TextUsed:  len(a.text),
		TextCap:   cap(a.text),
		SpansUsed: len(a.spans),
		SpansCap:  cap(a.spans),
	}
}

// unsafeString views b as a string. b must not change while the view is used.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
