package debugmenu

import (
	"unicode"
	"unicode/utf8"
)

// maxFilterLen is the capacity of the filter text buffer in bytes.
const maxFilterLen = 64

// FuzzyMatch reports whether every rune of pattern appears in title in
// order, ignoring case. The empty pattern matches everything.
func FuzzyMatch(pattern, title string) bool {
	return fuzzyAdvance(pattern, 0, title) == len(pattern)
}

// fuzzyAdvance consumes as much of pattern[pos:] as title matches and
// returns the new position. Greedy consumption is optimal for subsequences,
// so a path can be matched one segment at a time.
func fuzzyAdvance(pattern string, pos int, title string) int {
	if pos >= len(pattern) {
		return pos
	}
	want, size := utf8.DecodeRuneInString(pattern[pos:])
	for _, r := range title {
		if !equalFold(r, want) {
			continue
		}
		pos += size
		if pos >= len(pattern) {
			break
		}
		want, size = utf8.DecodeRuneInString(pattern[pos:])
	}
	return pos
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// SetFilter enables filtering with text s. Text longer than the filter
// buffer is truncated at a rune boundary.
func (m *Menu) SetFilter(s string) {
	m.filterOn = true
	m.filterLen = 0
	for _, r := range s {
		if !m.appendFilterRune(r) {
			break
		}
	}
	m.filterDirty = true
}

// Filter returns the filter text and whether filtering is enabled.
func (m *Menu) Filter() (string, bool) {
	return m.filterText(), m.filterOn
}

// DisableFilter turns filtering off and clears the text.
func (m *Menu) DisableFilter() {
	if !m.filterOn {
		return
	}
	m.filterOn = false
	m.filterLen = 0
	m.filterDirty = true
}

func (m *Menu) filterText() string {
	return string(m.filterBuf[:m.filterLen])
}

func (m *Menu) appendFilterRune(r rune) bool {
	n := utf8.RuneLen(r)
	if n < 0 || m.filterLen+n > maxFilterLen {
		return false
	}
	utf8.EncodeRune(m.filterBuf[m.filterLen:], r)
	m.filterLen += n
	return true
}

// backspaceFilter removes the last rune. It reports false if the text was
// already empty.
func (m *Menu) backspaceFilter() bool {
	if m.filterLen == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(m.filterBuf[:m.filterLen])
	m.filterLen -= size
	m.filterDirty = true
	return true
}

// ensureFiltered recomputes visibility if the filter text or the tree
// structure changed since the last pass.
func (m *Menu) ensureFiltered() {
	if !m.filterDirty {
		return
	}
	m.filterDirty = false

	// Compare against the buffer without converting; the pass must not allocate.
	pattern := ""
	if m.filterOn && m.filterLen > 0 {
		pattern = unsafeString(m.filterBuf[:m.filterLen])
	}
	m.filterPass(m.root, pattern, 0)
	m.arena.items[m.root].visible = true
	m.retargetHot()
	if m.debugEnabled() {
		m.log.Debug("filter pass", "filter", pattern, "visible", m.arena.items[m.root].numVisible)
	}
}

// filterPass marks idx and its subtree. pos is how much of pattern the
// ancestors' titles consumed. It reports whether idx stays visible.
func (m *Menu) filterPass(idx int32, pattern string, pos int) bool {
	it := &m.arena.items[idx]
	if idx != m.root {
		pos = fuzzyAdvance(pattern, pos, it.title)
	}
	it.matched = pos == len(pattern)

	visible := 0
	for c := it.firstChild; c != noItem; c = m.arena.items[c].next {
		if m.filterPass(c, pattern, pos) {
			visible++
		}
	}
	it.numVisible = visible
	it.visible = it.matched || visible > 0
	return it.visible
}

// retargetHot moves the hot item to its nearest visible ancestor when the
// filter hides it.
func (m *Menu) retargetHot() {
	h := m.hot
	for h != noItem && !m.arena.items[h].visible {
		h = m.arena.items[h].parent
	}
	if h == noItem {
		h = m.root
	}
	if h != m.hot {
		m.cancelEdit()
		m.hot = h
	}
	// Rows inside closed folders are only shown while a filter expands them.
	for p := m.arena.items[h].parent; p != noItem && !m.filterOn; p = m.arena.items[p].parent {
		m.arena.items[p].open = true
	}
	if m.hot == m.root && m.isOpen {
		if first := m.firstVisibleChild(m.root); first != noItem {
			m.hot = first
		}
	}
}

// expanded reports whether the children of folder idx are part of the
// display order. An active filter expands folders with matches.
func (m *Menu) expanded(idx int32) bool {
	it := &m.arena.items[idx]
	if it.kind != KindFolder || it.firstChild == noItem {
		return false
	}
	if idx == m.root || it.open {
		return true
	}
	return m.filterOn && m.filterLen > 0 && it.numVisible > 0
}
