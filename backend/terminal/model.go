package terminal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/go-theft-auto/debugmenu"
)

// DefaultFrameRate is how often the model advances menu animations.
const DefaultFrameRate = 30 * time.Millisecond

// Options configures a Model.
type Options struct {
	// Menu is the menu to drive. It should use debugmenu.CellStyle.
	Menu *debugmenu.Menu
	// Queue, if set, is drained every frame.
	Queue *debugmenu.Queue
	// Clipboard backs the copy and paste keys. Nil disables them.
	Clipboard debugmenu.ClipboardProvider
	// FrameRate is the animation tick. Zero uses DefaultFrameRate.
	FrameRate time.Duration
	// Lipgloss picks the color profile; nil uses the default renderer.
	Lipgloss *lipgloss.Renderer
	// Logger receives copy/paste and queue failures. Nil uses the menu's.
	Logger *slog.Logger
}

// Model is a Bubble Tea model that shows a debug menu full screen.
type Model struct {
	menu      *debugmenu.Menu
	queue     *debugmenu.Queue
	clipboard debugmenu.ClipboardProvider
	input     *debugmenu.InputState
	cells     *CellRenderer
	keys      keyMap
	help      help.Model
	log       *slog.Logger

	frameRate time.Duration
	lastFrame time.Time

	width, height int
	status        string
	footer        string
	ready         bool
}

// New creates a model for opts.Menu.
func New(opts Options) Model {
	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	log := opts.Logger
	if log == nil {
		log = opts.Menu.Logger()
	}
	return Model{
		menu:      opts.Menu,
		queue:     opts.Queue,
		clipboard: opts.Clipboard,
		input:     debugmenu.NewInputState(),
		cells:     NewCellRenderer(0, 0, opts.Lipgloss),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		log:       log,
		frameRate: frameRate,
	}
}

// Menu returns the driven menu.
func (m Model) Menu() *debugmenu.Menu {
	return m.menu
}

// Cells returns the grid the last View drew into.
func (m Model) Cells() *CellRenderer {
	return m.cells
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameRate)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.relayout()
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	m.cells.Clear()
	m.menu.Draw(m.cells)
	if m.footer == "" {
		return m.cells.Render()
	}
	return m.cells.Render() + "\n" + m.footer
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, filtering := m.menu.Filter()

	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case filtering && !msg.Alt && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace):
		for _, r := range msg.Runes {
			m.input.AddInputChar(r)
		}
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.input.AddInputChar(' ')
		}
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Copy):
		m.copyOverrides()
	case key.Matches(msg, m.keys.Paste):
		m.pasteOverrides()
	default:
		for _, bb := range m.keys.buttons() {
			if key.Matches(msg, bb.binding) {
				m.input.Tap(bb.button)
				break
			}
		}
	}

	m.menu.HandleInput(m.input)
	m.input.Reset()
	m.relayout()
	return m, nil
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt float32
	if !m.lastFrame.IsZero() {
		dt = float32(now.Sub(m.lastFrame).Seconds())
	}
	m.lastFrame = now

	if m.queue != nil {
		if n, err := m.queue.Drain(m.menu); err != nil {
			m.log.Warn("queued items failed", "applied", n, "error", err)
		}
	}
	m.menu.Update(dt)
	return m, frameCmd(m.frameRate)
}

func (m *Model) copyOverrides() {
	if m.clipboard == nil {
		return
	}
	if err := m.menu.CopyOverrides(m.clipboard); err != nil {
		m.log.Warn("copy failed", "error", err)
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Copied %d overrides", len(m.menu.Overrides()))
}

func (m *Model) pasteOverrides() {
	if m.clipboard == nil {
		return
	}
	n, err := m.menu.PasteOverrides(m.clipboard)
	if err != nil {
		m.log.Warn("paste failed", "applied", n, "error", err)
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Applied %d overrides", n)
}

// relayout rebuilds the footer and gives the rest of the screen to the menu.
func (m *Model) relayout() {
	var lines []string
	if m.status != "" {
		lines = append(lines, wordwrap.String(m.status, max(m.width, 1)))
	}
	lines = append(lines, m.help.View(m.keys))
	m.footer = strings.Join(lines, "\n")

	rows := max(m.height-lipgloss.Height(m.footer), 0)
	if w, h := m.cells.Size(); w != m.width || h != rows {
		m.cells.Resize(m.width, rows)
	}
	m.menu.Resize(debugmenu.Vec2{X: float32(m.width), Y: float32(rows)})
}

type frameMsg time.Time

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run shows the menu in the terminal until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
