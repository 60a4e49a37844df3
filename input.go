package debugmenu

// Button is a logical input button. Backends map keyboard keys and gamepad
// buttons onto these; the menu never sees device codes.
type Button int

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonPageUp
	ButtonPageDown
	ButtonAccept       // Enter, gamepad A
	ButtonAcceptDirect // Space, gamepad X
	ButtonBack         // Escape, gamepad B
	ButtonToggle       // F1, gamepad Start
	ButtonFilter       // F3, gamepad Y
	ButtonBackspace
	ButtonCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.06 // Repeat interval once repeating (seconds)
)

// ButtonSource is the input adapter contract polled by Menu.HandleInput.
type ButtonSource interface {
	// ButtonDown reports whether b is currently held.
	ButtonDown(b Button) bool
	// ButtonPressed reports whether b went down this frame.
	ButtonPressed(b Button) bool
	// ButtonRepeated reports whether a held b should trigger this frame.
	ButtonRepeated(b Button) bool
	// TypedChars returns the characters typed this frame.
	TypedChars() []rune
}

// InputState holds button state for the current frame. It is typically
// filled by a backend from GLFW, a gamepad or terminal key events.
type InputState struct {
	down     [ButtonCount]bool
	pressed  [ButtonCount]bool // True on the frame the button went down
	released [ButtonCount]bool // True on the frame the button went up

	holdTime     [ButtonCount]float32
	prevHoldTime [ButtonCount]float32

	// Text typed this frame, used by the filter.
	InputChars []rune
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame events. Call this at the start of each frame
// before collecting input.
func (s *InputState) Reset() {
	clear(s.pressed[:])
	clear(s.released[:])
	s.InputChars = s.InputChars[:0]
}

// SetButton sets button state.
func (s *InputState) SetButton(b Button, down bool) {
	if b <= ButtonNone || b >= ButtonCount {
		return
	}

	wasDown := s.down[b]
	s.down[b] = down

	if down && !wasDown {
		s.pressed[b] = true
		s.holdTime[b] = 0
		s.prevHoldTime[b] = 0
	}
	if !down && wasDown {
		s.released[b] = true
		s.holdTime[b] = 0
		s.prevHoldTime[b] = 0
	}
}

// Tap presses and releases b within one frame. Terminal backends, which
// only see key-press events, use it.
func (s *InputState) Tap(b Button) {
	if b <= ButtonNone || b >= ButtonCount {
		return
	}
	s.pressed[b] = true
	s.released[b] = true
}

// UpdateRepeat advances hold times. Call this once per frame with the
// frame's delta time.
func (s *InputState) UpdateRepeat(dt float32) {
	for b := range s.down {
		s.prevHoldTime[b] = s.holdTime[b]
		if s.down[b] {
			s.holdTime[b] += dt
		}
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// ButtonDown returns true if a button is currently held.
func (s *InputState) ButtonDown(b Button) bool {
	if b <= ButtonNone || b >= ButtonCount {
		return false
	}
	return s.down[b]
}

// ButtonPressed returns true if a button went down this frame.
func (s *InputState) ButtonPressed(b Button) bool {
	if b <= ButtonNone || b >= ButtonCount {
		return false
	}
	return s.pressed[b]
}

// ButtonReleased returns true if a button went up this frame.
func (s *InputState) ButtonReleased(b Button) bool {
	if b <= ButtonNone || b >= ButtonCount {
		return false
	}
	return s.released[b]
}

// ButtonRepeated returns true on the initial press, then after
// KeyRepeatDelay, then every KeyRepeatInterval while held.
func (s *InputState) ButtonRepeated(b Button) bool {
	if b <= ButtonNone || b >= ButtonCount {
		return false
	}
	if s.pressed[b] {
		return true
	}
	if !s.down[b] {
		return false
	}

	hold := s.holdTime[b]
	if hold < KeyRepeatDelay {
		return false
	}
	// Trigger when this frame crossed an interval boundary.
	now := int((hold - KeyRepeatDelay) / KeyRepeatInterval)
	prevHold := s.prevHoldTime[b]
	if prevHold < KeyRepeatDelay {
		return true
	}
	prev := int((prevHold - KeyRepeatDelay) / KeyRepeatInterval)
	return now > prev
}

// TypedChars returns the characters typed this frame.
func (s *InputState) TypedChars() []rune {
	return s.InputChars
}

// ButtonName returns a human-readable name for a button.
func ButtonName(b Button) string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonPageUp:
		return "PgUp"
	case ButtonPageDown:
		return "PgDn"
	case ButtonAccept:
		return "Accept"
	case ButtonAcceptDirect:
		return "AcceptDirect"
	case ButtonBack:
		return "Back"
	case ButtonToggle:
		return "Toggle"
	case ButtonFilter:
		return "Filter"
	case ButtonBackspace:
		return "Backspace"
	default:
		return "--"
	}
}

// ParseButton is the inverse of ButtonName.
func ParseButton(name string) (Button, bool) {
	for b := ButtonNone + 1; b < ButtonCount; b++ {
		if ButtonName(b) == name {
			return b, true
		}
	}
	return ButtonNone, false
}
