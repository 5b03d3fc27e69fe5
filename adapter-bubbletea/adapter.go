// Package bubbleadapter hosts a core.Editor inside a bubbletea program: a
// real, drivable terminal front-end exercising the editor's embedding
// API the same way a bubbletea host would wrap any line-editing widget.
package bubbleadapter

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	core "github.com/embedx/lineeditor/core"
)

// Theme holds the lipgloss styles the adapter paints with.
type Theme struct {
	SelectionStyle  lipgloss.Style
	CursorStyle     lipgloss.Style
	GutterStyle     lipgloss.Style
	ActiveGutter    lipgloss.Style
	StatusLineStyle lipgloss.Style
	MessageStyle    lipgloss.Style
	ErrorStyle      lipgloss.Style
	YankStyle       lipgloss.Style
}

// DefaultTheme is the adapter's built-in palette, styled for a
// single-mode editor (no normal/insert/visual mode chrome to style).
var DefaultTheme = Theme{
	SelectionStyle:  lipgloss.NewStyle().Background(lipgloss.Color("237")),
	CursorStyle:     lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	GutterStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
	ActiveGutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right),
	StatusLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	YankStyle:       lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")).Bold(true),
}

// Model is the bubbletea front-end for a core.Editor.
type Model struct {
	editor *core.Editor

	width, height int
	theme         Theme
	showStatus    bool

	sessionID uuid.UUID
	log       zerolog.Logger

	message string
	err     error
	yanked  bool
	focused bool
}

type messageMsg string
type errMsg struct{ error }
type clearMsg struct{}

// New constructs a Model wrapping a fresh core.Editor over text, sized
// to width x height terminal cells. logger is stamped with a per-session
// correlation id so concurrent sessions are distinguishable in
// structured logs.
func New(text string, mode core.Mode, width, height int, logger zerolog.Logger) Model {
	sessionID := uuid.New()
	mode.ViewportRows = height - 2
	return Model{
		editor:     core.NewEditor(core.Config{Text: text, Mode: mode}),
		width:      width,
		height:     height,
		theme:      DefaultTheme,
		showStatus: true,
		sessionID:  sessionID,
		log:        logger.With().Str("session", sessionID.String()).Logger(),
		focused:    true,
	}
}

// Editor exposes the wrapped core.Editor for host code that needs direct
// access (e.g. to load a file before the program starts).
func (m *Model) Editor() *core.Editor { return m.editor }

// Focus and Blur gate whether key messages reach the editor, mirroring
// IsFocused()-gated dispatch.
func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.editor.SetViewportRows(height - 2)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyCtrlY {
			return m, m.yank()
		}
		g, ok := bubbleKeyToGesture(msg)
		if !ok {
			return m, nil
		}
		if err := m.editor.HandleGesture(g); err != nil {
			m.log.Debug().Err(err).Msg("gesture no-op")
		} else {
			m.log.Debug().Int("row", m.editor.Cursor().Position.Row).Int("col", m.editor.Cursor().Position.Col).Msg("gesture applied")
		}
		m.message, m.err = "", nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case messageMsg:
		m.message, m.err = string(msg), nil

	case errMsg:
		m.err, m.message = msg.error, ""

	case clearMsg:
		m.message, m.yanked = "", false
	}
	return m, nil
}

// yank copies the active selection's text to the OS clipboard. The
// clipboard bridge lives in the adapter, not the core: the core only
// ever hands the adapter selected text, never touches the system
// clipboard itself.
func (m *Model) yank() tea.Cmd {
	sel := m.editor.Selection()
	if sel.Empty() {
		return nil
	}
	start, end := sel.Ordered()
	lines := m.editor.Lines()
	text := sliceText(lines, start, end)
	if err := clipboard.WriteAll(text); err != nil {
		m.log.Warn().Err(err).Msg("clipboard write failed")
		return func() tea.Msg { return errMsg{err} }
	}
	m.yanked = true
	return func() tea.Msg { return messageMsg("yanked") }
}

func sliceText(lines []string, start, end core.Position) string {
	if start.Row == end.Row {
		return string([]rune(lines[start.Row])[start.Col:end.Col])
	}
	var b strings.Builder
	b.WriteString(string([]rune(lines[start.Row])[start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		b.WriteByte('\n')
		b.WriteString(lines[r])
	}
	b.WriteByte('\n')
	b.WriteString(string([]rune(lines[end.Row])[:end.Col]))
	return b.String()
}
