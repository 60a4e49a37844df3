package debugmenu

// LayoutInfo describes where the last Draw placed the menu.
type LayoutInfo struct {
	Panel  Rect // Whole panel, including padding
	Rows   Rect // Viewport the rows scroll in
	HotRow Rect // Row of the hot item; zero if it was scrolled out
	Drawn  int  // Rows drawn
}

// Layout returns the layout computed by the last Draw.
func (m *Menu) Layout() LayoutInfo {
	return m.layout
}

// panelMetrics holds the vertical split of the panel.
type panelMetrics struct {
	header   float32 // Filter line
	desc     float32 // Description of the hot item
	viewport float32 // Rows
	lineH    float32 // One line of text
}

func (m *Menu) font() FontRef {
	return FontRef{Scale: m.cfg.style.FontScale * m.sizeScale}
}

func (m *Menu) rowHeight() float32 {
	if m.cfg.itemHeight > 0 {
		return m.cfg.itemHeight * m.sizeScale
	}
	return m.cfg.style.rowHeight(m.sizeScale)
}

func (m *Menu) metrics() panelMetrics {
	st := &m.cfg.style
	pm := panelMetrics{lineH: st.CharHeight * st.FontScale * m.sizeScale}
	if m.filterOn {
		pm.header = m.rowHeight()
	}
	if st.DescriptionRows > 0 {
		pm.desc = float32(st.DescriptionRows)*pm.lineH + st.PanelPadding
	}
	pm.viewport = maxf(0, m.cfg.screenSize.Y-2*st.PanelPadding-pm.header-pm.desc)
	return pm
}

// rowPass carries the state of one Draw through the row recursion.
type rowPass struct {
	r      Renderer
	font   FontRef
	x, w   float32 // Row area
	top    float32 // Viewport top on screen
	bottom float32
	rowH   float32
	y      float32 // Content offset of the next row
	drawn  int
	hotRow Rect
}

func (p *rowPass) measure(s string) float32 {
	return p.r.MeasureText(s, p.font).X
}

// Draw renders the menu through r. It reads the state left by Update and
// does not change navigation state.
func (m *Menu) Draw(r Renderer) {
	m.ensureFiltered()
	open := smoothstep(m.openness)
	if open <= 0 {
		m.layout = LayoutInfo{}
		return
	}

	st := &m.cfg.style
	font := m.font()
	pad := st.PanelPadding
	screen := m.cfg.screenSize
	pm := m.metrics()

	width := st.PanelWidth
	if width <= 0 {
		width = maxf(st.MinWidth, m.widestRow(r, font, m.root)+2*pad)
	}
	width = min(width, screen.X)

	x := -(1 - open) * width
	if m.cfg.align == AlignRight {
		x = screen.X - width*open
	}
	panel := Rect{X: x, Y: 0, W: width, H: screen.Y}
	r.DrawRect(panel.Pos(), panel.Size(), st.PanelColor)
	if st.BorderSize > 0 {
		bx := x + width - st.BorderSize
		if m.cfg.align == AlignRight {
			bx = x
		}
		r.DrawRect(Vec2{X: bx, Y: 0}, Vec2{X: st.BorderSize, Y: screen.Y}, st.PanelBorderColor)
	}

	top := pad
	if m.filterOn {
		m.drawFilter(r, font, Rect{X: x + pad, Y: top, W: width - 2*pad, H: pm.header})
		top += pm.header
	}

	p := rowPass{
		r:      r,
		font:   font,
		x:      x + pad,
		w:      width - 2*pad,
		top:    top,
		bottom: top + pm.viewport,
		rowH:   m.rowHeight(),
	}
	m.drawRows(&p, m.root, 1)
	if p.drawn == 0 && m.filterOn {
		r.DrawText("(no matches)", Vec2{X: p.x, Y: top}, st.TextDisabledColor, font)
	}

	content := m.scroll.ContentHeight
	if content > pm.viewport && pm.viewport > 0 {
		barW := maxf(st.BorderSize*2, st.CharWidth/4)
		barH := pm.viewport * pm.viewport / content
		barY := top + m.scroll.ScrollY/content*pm.viewport
		r.DrawRect(Vec2{X: x + width - pad/2 - barW/2, Y: barY}, Vec2{X: barW, Y: barH}, st.ScrollbarColor)
	}

	if pm.desc > 0 {
		m.drawDescription(r, font, Rect{X: x + pad, Y: screen.Y - pm.desc, W: width - 2*pad, H: pm.desc - pad}, pm.lineH)
	}

	m.layout = LayoutInfo{
		Panel:  panel,
		Rows:   Rect{X: p.x, Y: top, W: p.w, H: pm.viewport},
		HotRow: p.hotRow,
		Drawn:  p.drawn,
	}
}

func (m *Menu) drawRows(p *rowPass, folder int32, scale float32) {
	for c := m.arena.items[folder].firstChild; c != noItem; c = m.arena.items[c].next {
		it := &m.arena.items[c]
		if !it.visible {
			continue
		}
		h := p.rowH * scale
		y := p.top + p.y - m.scroll.ScrollY
		p.y += h
		if scale > 0.5 && y >= p.top-0.5 && y+h <= p.bottom+0.5 {
			m.drawRow(p, c, y, h)
		}
		if it.kind == KindFolder && it.openAnim > 0 {
			m.drawRows(p, c, scale*smoothstep(it.openAnim))
		}
		if y > p.bottom {
			return
		}
	}
}

func (m *Menu) drawRow(p *rowPass, idx int32, y, h float32) {
	st := &m.cfg.style
	it := &m.arena.items[idx]
	p.drawn++

	switch {
	case it.active:
		p.r.DrawRect(Vec2{X: p.x, Y: y}, Vec2{X: p.w, Y: h}, st.ActiveBgColor)
	case it.hotAnim > 0:
		p.r.DrawRect(Vec2{X: p.x, Y: y}, Vec2{X: p.w, Y: h}, WithAlpha(st.HotBgColor, smoothstep(it.hotAnim)))
	}
	if idx == m.hot {
		p.hotRow = Rect{X: p.x, Y: y, W: p.w, H: h}
	}

	textH := st.CharHeight * p.font.Scale
	ty := y + (h-textH)/2
	tx := p.x + float32(it.depth)*st.IndentWidth
	right := p.x + p.w

	color := st.TextColor
	if it.kind == KindFolder {
		color = st.FolderTextColor
		marker := "+ "
		if it.open || m.expanded(idx) {
			marker = "- "
		}
		p.r.DrawText(marker, Vec2{X: tx, Y: ty}, color, p.font)
		tx += p.measure(marker)
	} else {
		right = m.drawValue(p, it, ty, right)
	}
	if m.filterOn && !it.matched {
		color = st.TextDisabledColor
	}
	title := truncateText(it.title, right-tx, p.measure)
	p.r.DrawText(title, Vec2{X: tx, Y: ty}, color, p.font)
}

// drawValue draws the value column of a leaf right-aligned at right and
// returns where the title column has to end.
func (m *Menu) drawValue(p *rowPass, it *Item, ty, right float32) float32 {
	st := &m.cfg.style
	if !it.active {
		v := it.ActiveTitle()
		w := p.measure(v)
		p.r.DrawText(v, Vec2{X: right - w, Y: ty}, st.ValueTextColor, p.font)
		return right - w - st.ValueGap
	}

	v := it.HotTitle()
	lw, vw, rw := p.measure("< "), p.measure(v), p.measure(" >")
	x := right - lw - vw - rw
	p.r.DrawText("< ", Vec2{X: x, Y: ty}, st.ValueActiveColor, p.font)
	p.r.DrawText(v, Vec2{X: x + lw, Y: ty}, st.ValueActiveColor, p.font)
	p.r.DrawText(" >", Vec2{X: x + lw + vw, Y: ty}, st.ValueActiveColor, p.font)
	return x - st.ValueGap
}

func (m *Menu) drawFilter(r Renderer, font FontRef, area Rect) {
	st := &m.cfg.style
	r.DrawRect(area.Pos(), area.Size(), st.FilterBgColor)
	ty := area.Y + (area.H-st.CharHeight*font.Scale)/2
	const label = "Filter: "
	r.DrawText(label, Vec2{X: area.X, Y: ty}, st.TextColor, font)
	lx := area.X + r.MeasureText(label, font).X
	text := unsafeString(m.filterBuf[:m.filterLen])
	r.DrawText(text, Vec2{X: lx, Y: ty}, st.FilterTextColor, font)
	cx := lx + r.MeasureText(text, font).X
	r.DrawText("_", Vec2{X: cx, Y: ty}, st.FilterTextColor, font)
}

func (m *Menu) drawDescription(r Renderer, font FontRef, area Rect, lineH float32) {
	it := &m.arena.items[m.hot]
	if it.desc == "" || area.W <= 0 {
		return
	}
	m.wrapRows = r.WordWrap(it.desc, font, area.W, m.wrapRows[:0])
	n := min(len(m.wrapRows), m.cfg.style.DescriptionRows)
	for i := range n {
		row := TextRow(it.desc, m.wrapRows, i)
		r.DrawText(row, Vec2{X: area.X, Y: area.Y + float32(i)*lineH}, m.cfg.style.DescriptionColor, font)
	}
}

// widestRow returns the width the rows below folder need.
func (m *Menu) widestRow(r Renderer, font FontRef, folder int32) float32 {
	st := &m.cfg.style
	var widest float32
	for c := m.arena.items[folder].firstChild; c != noItem; c = m.arena.items[c].next {
		it := &m.arena.items[c]
		if !it.visible {
			continue
		}
		w := float32(it.depth)*st.IndentWidth + r.MeasureText(it.title, font).X
		if it.kind == KindFolder {
			w += r.MeasureText("- ", font).X
			if it.openAnim > 0 {
				widest = maxf(widest, m.widestRow(r, font, c))
			}
		} else {
			var vw float32
			for _, t := range it.titles {
				vw = maxf(vw, r.MeasureText(t, font).X)
			}
			w += st.ValueGap + vw + r.MeasureText("<  >", font).X
		}
		widest = maxf(widest, w)
	}
	return widest
}
