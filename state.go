package debugmenu

// ScrollState tracks the scroll position of the row viewport.
type ScrollState struct {
	ScrollY       float32 // Current scroll position
	TargetScrollY float32 // Target for smooth scrolling
	ContentHeight float32 // Total height of all rows
}

// UpdateSmooth smoothly interpolates scroll position toward target.
// Call this each frame with the frame's delta time.
// Returns true if still animating.
func (s *ScrollState) UpdateSmooth(deltaTime float32) bool {
	const smoothSpeed = 15.0 // Higher = faster convergence
	const threshold = 0.5    // Stop animating when this close

	diff := s.TargetScrollY - s.ScrollY
	if absf32(diff) < threshold {
		s.ScrollY = s.TargetScrollY
		return false
	}

	step := diff * deltaTime * smoothSpeed
	if absf32(step) > absf32(diff) {
		step = diff
	}
	s.ScrollY += step
	return true
}

// Focus sets the target so that a row at rowY sits at focus (0 top, 1
// bottom) of a viewport of the given height, without scrolling past the
// content.
func (s *ScrollState) Focus(rowY, rowH, viewport, focus float32) {
	target := rowY + rowH/2 - viewport*focus
	s.TargetScrollY = clampf(target, 0, maxf(0, s.ContentHeight-viewport))
}
