package debugmenu

import "fmt"

// ClipboardProvider abstracts system clipboard access.
// Backends implement it with GLFW or the terminal's clipboard.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() (string, error)

	// SetText copies text to the system clipboard.
	SetText(text string) error
}

// CopyOverrides puts the saved form of the overrides on the clipboard.
func (m *Menu) CopyOverrides(cp ClipboardProvider) error {
	if err := cp.SetText(string(m.AppendSave(nil))); err != nil {
		return fmt.Errorf("copy overrides: %w", err)
	}
	return nil
}

// PasteOverrides loads overrides from the clipboard and returns how many
// took effect.
func (m *Menu) PasteOverrides(cp ClipboardProvider) (int, error) {
	text, err := cp.GetText()
	if err != nil {
		return 0, fmt.Errorf("paste overrides: %w", err)
	}
	n, err := m.Load([]byte(text))
	if err != nil {
		return n, fmt.Errorf("paste overrides: %w", err)
	}
	return n, nil
}
