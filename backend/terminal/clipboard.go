package terminal

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/go-theft-auto/debugmenu"
)

// ErrNoClipboard is returned when the system has no clipboard utility.
var ErrNoClipboard = errors.New("no system clipboard available")

// Clipboard is the system clipboard. On Linux it needs xclip, xsel or
// wl-clipboard on PATH.
type Clipboard struct{}

// GetText implements debugmenu.ClipboardProvider.
func (Clipboard) GetText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrNoClipboard
	}
	return clipboard.ReadAll()
}

// SetText implements debugmenu.ClipboardProvider.
func (Clipboard) SetText(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

var _ debugmenu.ClipboardProvider = Clipboard{}
