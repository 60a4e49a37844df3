package debugmenu

// smoothstep eases a linear factor in [0,1].
func smoothstep(t float32) float32 {
	t = clampf(t, 0, 1)
	return t * t * (3 - 2*t)
}

// approach moves v toward target by at most step.
func approach(v, target, step float32) float32 {
	if v < target {
		return min(v+step, target)
	}
	return max(v-step, target)
}

// Update advances animations by dt seconds: menu slide-in, folder
// expansion, hot highlight fade and scrolling toward the hot row.
// It does not change navigation state.
func (m *Menu) Update(dt float32) {
	m.ensureFiltered()
	step := float32(1)
	if speed := m.cfg.style.AnimSpeed; speed > 0 {
		step = speed * max(dt, 0)
	}

	var target float32
	if m.isOpen {
		target = 1
	}
	m.openness = approach(m.openness, target, step)

	items := m.arena.items[:m.arena.bumped]
	for i := range items {
		it := &items[i]
		if !it.live {
			continue
		}
		idx := int32(i)
		if it.kind == KindFolder {
			var t float32
			if m.expanded(idx) {
				t = 1
			}
			it.openAnim = approach(it.openAnim, t, step)
		}
		var t float32
		if idx == m.hot {
			t = 1
		}
		it.hotAnim = approach(it.hotAnim, t, step)
	}

	rowH := m.rowHeight()
	var y float32
	hotY := float32(-1)
	m.rowCount = 0
	m.measureRows(m.root, 1, rowH, &y, &hotY)
	m.scroll.ContentHeight = y
	if hotY >= 0 {
		m.scroll.Focus(hotY, rowH, m.metrics().viewport, m.cfg.focusHeight)
	}
	m.scroll.UpdateSmooth(dt)
}

// measureRows accumulates the animated height of the rows below folder.
func (m *Menu) measureRows(folder int32, scale, rowH float32, y, hotY *float32) {
	for c := m.arena.items[folder].firstChild; c != noItem; c = m.arena.items[c].next {
		it := &m.arena.items[c]
		if !it.visible {
			continue
		}
		if c == m.hot {
			*hotY = *y
		}
		*y += rowH * scale
		m.rowCount++
		if it.kind == KindFolder && it.openAnim > 0 {
			m.measureRows(c, scale*smoothstep(it.openAnim), rowH, y, hotY)
		}
	}
}
