package debugmenu

// Do performs a navigation action and reports whether it had an effect.
// While the menu is closed only ActionOpen and ActionToggle act.
func (m *Menu) Do(a Action) bool {
	switch a {
	case ActionToggle:
		if m.isOpen {
			m.Close()
		} else {
			m.Open()
		}
		return true
	case ActionOpen:
		if m.isOpen {
			return false
		}
		m.Open()
		return true
	}
	if !m.isOpen {
		return false
	}
	m.ensureFiltered()

	switch a {
	case ActionClose:
		m.Close()
		return true
	case ActionFilter:
		if m.filterOn {
			return false
		}
		m.SetFilter("")
		return true
	case ActionBackspace:
		if !m.filterOn {
			return false
		}
		if !m.backspaceFilter() {
			m.DisableFilter()
		}
		return true
	}

	if m.editing() {
		return m.doEditing(a)
	}
	return m.doBrowsing(a)
}

// TypeChar appends r to the filter text. It is ignored unless filtering is
// enabled.
func (m *Menu) TypeChar(r rune) bool {
	if !m.isOpen || !m.filterOn || r < ' ' || r == 0x7f {
		return false
	}
	if !m.appendFilterRune(r) {
		return false
	}
	m.filterDirty = true
	return true
}

// HandleInput translates the buttons of src through the action map and
// performs the resulting actions. Each button triggers at most one action
// per call. It returns the number of actions that had an effect.
func (m *Menu) HandleInput(src ButtonSource) int {
	var used [ButtonCount]bool
	n := 0
	for _, a := range actionPriority {
		for _, b := range m.cfg.actions[a] {
			if b <= ButtonNone || b >= ButtonCount || used[b] {
				continue
			}
			var fired bool
			if a.repeats() {
				fired = src.ButtonRepeated(b)
			} else {
				fired = src.ButtonPressed(b)
			}
			if fired && m.Do(a) {
				used[b] = true
				n++
			}
		}
	}
	for _, r := range src.TypedChars() {
		if m.TypeChar(r) {
			n++
		}
	}
	return n
}

// editing reports whether the hot leaf is being edited.
func (m *Menu) editing() bool {
	it := &m.arena.items[m.hot]
	return it.kind == KindLeaf && it.active
}

func (m *Menu) doEditing(a Action) bool {
	idx := m.hot
	it := &m.arena.items[idx]
	switch a {
	case ActionNext, ActionValueNext:
		m.cycle(idx, 1)
	case ActionPrev, ActionValuePrev:
		m.cycle(idx, -1)
	case ActionInto, ActionIntoDirect:
		if it.editType == EditBool {
			it.hotIndex = 1 - it.activeIdx
			m.commit(idx, it.hotIndex)
			return true
		}
		it.active = false
		m.commit(idx, it.hotIndex)
	case ActionParent:
		m.cancelEdit()
	default:
		return false
	}
	return true
}

func (m *Menu) doBrowsing(a Action) bool {
	switch a {
	case ActionNext:
		return m.moveTo(m.nextInOrder(m.hot))
	case ActionPrev:
		return m.moveTo(m.prevInOrder(m.hot))
	case ActionNextLong:
		return m.moveTo(m.longMove(m.nextInOrder))
	case ActionPrevLong:
		return m.moveTo(m.longMove(m.prevInOrder))
	case ActionInto:
		return m.into(false)
	case ActionIntoDirect:
		return m.into(true)
	case ActionParent:
		return m.toParent()
	}
	return false
}

func (m *Menu) moveTo(idx int32) bool {
	if idx == noItem || idx == m.hot {
		return false
	}
	m.hot = idx
	return true
}

func (m *Menu) into(direct bool) bool {
	idx := m.hot
	it := &m.arena.items[idx]
	if it.kind == KindFolder {
		if idx != m.root {
			it.open = true
		}
		return m.moveTo(m.firstVisibleChild(idx))
	}

	n := len(it.titles)
	if direct || (it.editType == EditPreset && n == 1) {
		next := it.activeIdx + 1
		if it.editType == EditPreset {
			next = it.activeIdx
		}
		m.commit(idx, next%n)
		return true
	}
	it.active = true
	it.hotIndex = it.activeIdx
	m.fire(idx, it.hotIndex, false)
	return true
}

func (m *Menu) toParent() bool {
	idx := m.hot
	it := &m.arena.items[idx]
	if idx == m.root {
		return false
	}
	if it.kind == KindFolder && it.open {
		it.open = false
		return true
	}
	p := it.parent
	if p == m.root {
		return false
	}
	m.arena.items[p].open = false
	m.hot = p
	return true
}

// cycle moves the hot value of leaf idx by delta, wrapping, and applies it.
func (m *Menu) cycle(idx int32, delta int) {
	it := &m.arena.items[idx]
	n := len(it.titles)
	it.hotIndex = ((it.hotIndex+delta)%n + n) % n
	if it.editType != EditPreset {
		it.values.Apply(it.hotIndex)
	}
	m.fire(idx, it.hotIndex, false)
}

// commit applies value i of leaf idx. Preset values run but are not
// remembered, so a preset leaf stays at its default.
func (m *Menu) commit(idx int32, i int) {
	it := &m.arena.items[idx]
	it.values.Apply(i)
	if it.editType == EditPreset {
		it.active = false
		it.hotIndex = it.activeIdx
	} else {
		it.activeIdx = i
		it.hotIndex = i
	}
	m.fire(idx, i, true)
}

// cancelEdit leaves editing mode on the hot leaf and restores the committed
// value.
func (m *Menu) cancelEdit() {
	if m.hot == noItem || !m.editing() {
		return
	}
	it := &m.arena.items[m.hot]
	it.active = false
	if it.hotIndex == it.activeIdx {
		return
	}
	it.hotIndex = it.activeIdx
	if it.editType != EditPreset {
		it.values.Apply(it.activeIdx)
	}
	m.fire(m.hot, it.activeIdx, true)
}

func (m *Menu) fire(idx int32, i int, committed bool) {
	it := &m.arena.items[idx]
	if it.observer == nil {
		return
	}
	it.observer.ItemChanged(ChangeEvent{
		Menu:      m,
		Item:      m.arena.handle(idx),
		Index:     i,
		Title:     it.titles[i],
		Committed: committed,
		UserData:  it.userData,
	})
}

func (m *Menu) firstVisibleChild(folder int32) int32 {
	for c := m.arena.items[folder].firstChild; c != noItem; c = m.arena.items[c].next {
		if m.arena.items[c].visible {
			return c
		}
	}
	return noItem
}

func (m *Menu) lastVisibleChild(folder int32) int32 {
	for c := m.arena.items[folder].lastChild; c != noItem; c = m.arena.items[c].prev {
		if m.arena.items[c].visible {
			return c
		}
	}
	return noItem
}

func (m *Menu) nextVisibleSibling(idx int32) int32 {
	for s := m.arena.items[idx].next; s != noItem; s = m.arena.items[s].next {
		if m.arena.items[s].visible {
			return s
		}
	}
	return noItem
}

func (m *Menu) prevVisibleSibling(idx int32) int32 {
	for s := m.arena.items[idx].prev; s != noItem; s = m.arena.items[s].prev {
		if m.arena.items[s].visible {
			return s
		}
	}
	return noItem
}

// nextInOrder returns the row after idx in display order, wrapping to the
// first row. It returns noItem when nothing is visible.
func (m *Menu) nextInOrder(idx int32) int32 {
	if m.expanded(idx) {
		if c := m.firstVisibleChild(idx); c != noItem {
			return c
		}
	}
	for cur := idx; cur != m.root && cur != noItem; cur = m.arena.items[cur].parent {
		if s := m.nextVisibleSibling(cur); s != noItem {
			return s
		}
	}
	return m.firstVisibleChild(m.root)
}

// prevInOrder returns the row before idx in display order, wrapping to the
// last row.
func (m *Menu) prevInOrder(idx int32) int32 {
	if idx == m.root {
		return m.lastInOrder(m.root)
	}
	if s := m.prevVisibleSibling(idx); s != noItem {
		return m.lastInOrder(s)
	}
	if p := m.arena.items[idx].parent; p != m.root {
		return p
	}
	return m.lastInOrder(m.root)
}

// lastInOrder returns the last displayed row of the subtree at idx.
func (m *Menu) lastInOrder(idx int32) int32 {
	for m.expanded(idx) {
		c := m.lastVisibleChild(idx)
		if c == noItem {
			break
		}
		idx = c
	}
	if idx == m.root {
		return noItem
	}
	return idx
}

// longMove steps through the display order until it reaches a folder no
// deeper than the hot item that is neither its ancestor nor its descendant.
func (m *Menu) longMove(step func(int32) int32) int32 {
	hot := m.hot
	depth := m.arena.items[hot].depth
	cur := hot
	for range len(m.arena.items) {
		cur = step(cur)
		if cur == noItem || cur == hot {
			return noItem
		}
		it := &m.arena.items[cur]
		if it.kind == KindFolder && it.depth <= depth &&
			!m.isAncestorOrSelf(hot, cur) && !m.isAncestorOrSelf(cur, hot) {
			return cur
		}
	}
	return noItem
}
