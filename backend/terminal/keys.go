package terminal

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/go-theft-auto/debugmenu"
)

// keyMap defines the terminal key bindings. Menu bindings tap a logical
// button; the rest are handled by the model.
type keyMap struct {
	// Menu
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Accept       key.Binding
	AcceptDirect key.Binding
	Back         key.Binding
	Toggle       key.Binding
	Filter       key.Binding
	Backspace    key.Binding

	// Host
	Copy  key.Binding
	Paste key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Back/prev value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Open/next value"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Prev folder"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "Next folder"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Edit/commit"),
		),
		AcceptDirect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle value"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel/up"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f1", "`"),
			key.WithHelp("`/f1", "Show/hide"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/", "f3"),
			key.WithHelp("/", "Filter"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "Erase filter"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "Copy overrides"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "Paste overrides"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// buttons pairs each menu binding with the button it taps.
func (k keyMap) buttons() []buttonBinding {
	return []buttonBinding{
		{k.Up, debugmenu.ButtonUp},
		{k.Down, debugmenu.ButtonDown},
		{k.Left, debugmenu.ButtonLeft},
		{k.Right, debugmenu.ButtonRight},
		{k.PageUp, debugmenu.ButtonPageUp},
		{k.PageDown, debugmenu.ButtonPageDown},
		{k.Accept, debugmenu.ButtonAccept},
		{k.AcceptDirect, debugmenu.ButtonAcceptDirect},
		{k.Back, debugmenu.ButtonBack},
		{k.Toggle, debugmenu.ButtonToggle},
		{k.Filter, debugmenu.ButtonFilter},
		{k.Backspace, debugmenu.ButtonBackspace},
	}
}

type buttonBinding struct {
	binding key.Binding
	button  debugmenu.Button
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Filter, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Left, k.Right, k.Accept, k.AcceptDirect, k.Back},
		{k.Toggle, k.Filter, k.Backspace},
		{k.Copy, k.Paste, k.Help, k.Quit},
	}
}
