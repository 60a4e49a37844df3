package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/debugmenu"
)

// StickDeadzone is how far a gamepad stick must be pushed to count as a
// d-pad press.
const StickDeadzone = 0.5

// GLFWInputAdapter merges GLFW keyboard and gamepad input into a
// debugmenu.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *debugmenu.InputState

	keys [debugmenu.ButtonCount]bool // Held according to the keyboard
	pad  [debugmenu.ButtonCount]bool // Held according to any gamepad
}

// NewGLFWInputAdapter installs key and character callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  debugmenu.NewInputState(),
	}
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	return adapter
}

// Update starts a new input frame: it clears last frame's events, polls GLFW
// events and gamepads, and advances key repeat by dt seconds. Call it once
// per frame instead of glfw.PollEvents.
func (a *GLFWInputAdapter) Update(dt float32) *debugmenu.InputState {
	a.input.Reset()
	glfw.PollEvents()

	clear(a.pad[:])
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if !joy.Present() || !joy.IsGamepad() {
			continue
		}
		if st := joy.GetGamepadState(); st != nil {
			readGamepad(st, &a.pad)
		}
	}
	for b := debugmenu.ButtonNone + 1; b < debugmenu.ButtonCount; b++ {
		a.input.SetButton(b, a.keys[b] || a.pad[b])
	}

	a.input.UpdateRepeat(dt)
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *debugmenu.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwKeyToButton(key)
	if b == debugmenu.ButtonNone {
		return
	}

	switch action {
	case glfw.Press:
		a.keys[b] = true
	case glfw.Release:
		a.keys[b] = false
	default:
		// GLFW's own repeat is ignored; InputState times repeats.
		return
	}
	a.input.SetButton(b, a.keys[b] || a.pad[b])
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func glfwKeyToButton(key glfw.Key) debugmenu.Button {
	switch key {
	case glfw.KeyUp:
		return debugmenu.ButtonUp
	case glfw.KeyDown:
		return debugmenu.ButtonDown
	case glfw.KeyLeft:
		return debugmenu.ButtonLeft
	case glfw.KeyRight:
		return debugmenu.ButtonRight
	case glfw.KeyPageUp:
		return debugmenu.ButtonPageUp
	case glfw.KeyPageDown:
		return debugmenu.ButtonPageDown
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return debugmenu.ButtonAccept
	case glfw.KeySpace:
		return debugmenu.ButtonAcceptDirect
	case glfw.KeyEscape:
		return debugmenu.ButtonBack
	case glfw.KeyF1, glfw.KeyGraveAccent:
		return debugmenu.ButtonToggle
	case glfw.KeyF3:
		return debugmenu.ButtonFilter
	case glfw.KeyBackspace:
		return debugmenu.ButtonBackspace
	default:
		return debugmenu.ButtonNone
	}
}

var gamepadButtons = [...]struct {
	pad    glfw.GamepadButton
	button debugmenu.Button
}{
	{glfw.ButtonA, debugmenu.ButtonAccept},
	{glfw.ButtonB, debugmenu.ButtonBack},
	{glfw.ButtonX, debugmenu.ButtonAcceptDirect},
	{glfw.ButtonY, debugmenu.ButtonFilter},
	{glfw.ButtonStart, debugmenu.ButtonToggle},
	{glfw.ButtonBack, debugmenu.ButtonBackspace},
	{glfw.ButtonLeftBumper, debugmenu.ButtonPageUp},
	{glfw.ButtonRightBumper, debugmenu.ButtonPageDown},
	{glfw.ButtonDpadUp, debugmenu.ButtonUp},
	{glfw.ButtonDpadDown, debugmenu.ButtonDown},
	{glfw.ButtonDpadLeft, debugmenu.ButtonLeft},
	{glfw.ButtonDpadRight, debugmenu.ButtonRight},
}

// readGamepad ORs the buttons and left stick of st into held.
func readGamepad(st *glfw.GamepadState, held *[debugmenu.ButtonCount]bool) {
	for _, m := range gamepadButtons {
		if st.Buttons[m.pad] == glfw.Press {
			held[m.button] = true
		}
	}
	x, y := st.Axes[glfw.AxisLeftX], st.Axes[glfw.AxisLeftY]
	switch {
	case y < -StickDeadzone:
		held[debugmenu.ButtonUp] = true
	case y > StickDeadzone:
		held[debugmenu.ButtonDown] = true
	}
	switch {
	case x < -StickDeadzone:
		held[debugmenu.ButtonLeft] = true
	case x > StickDeadzone:
		held[debugmenu.ButtonRight] = true
	}
}

// Clipboard implements debugmenu.ClipboardProvider with the GLFW clipboard.
type Clipboard struct {
	Window *glfw.Window
}

func (c Clipboard) GetText() (string, error) {
	return c.Window.GetClipboardString(), nil
}

func (c Clipboard) SetText(text string) error {
	c.Window.SetClipboardString(text)
	return nil
}
