package bubbleadapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	core "github.com/embedx/lineeditor/core"
)

var tildeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

// View renders the current snapshot — selection segments, the cursor
// node, and the gutter — to styled terminal cells. Segment left/width
// are used directly as character-cell offsets; there is no
// grapheme-width math, matching the fixed-width-cell Non-goal.
func (m Model) View() string {
	rs := m.editor.Render()

	segByRow := make(map[int]core.Segment, len(rs.Segments))
	for _, s := range rs.Segments {
		segByRow[s.Row] = s
	}

	rows := make([]string, 0, rs.ViewportTo-rs.ViewportFrom)
	for row := rs.ViewportFrom; row < rs.ViewportTo; row++ {
		gutterStyle := m.theme.GutterStyle
		if row == rs.Cursor.Row {
			gutterStyle = m.theme.ActiveGutter
		}
		gutter := gutterStyle.Width(rs.GutterWidth).Render(strconv.Itoa(row + 1))
		seg, hasSeg := segByRow[row]
		rows = append(rows, gutter+m.renderLine([]rune(rs.Lines[row]), row, seg, hasSeg, rs.Cursor))
	}
	for len(rows) < m.editor.Viewport().Rows {
		rows = append(rows, tildeStyle.Render("~"))
	}
	content := strings.Join(rows, "\n")

	status := m.theme.StatusLineStyle.Render(padTo(m.statusLine(), m.width))

	bottom := ""
	switch {
	case m.err != nil:
		bottom = m.theme.ErrorStyle.Render(m.err.Error())
	case m.message != "":
		style := m.theme.MessageStyle
		if m.yanked {
			style = m.theme.YankStyle
		}
		bottom = style.Render(m.message)
	}

	if !m.showStatus {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, status, bottom)
}

// renderLine paints one line: characters inside seg get SelectionStyle,
// the cursor's own cell (including the phantom cell one past the last
// character, for an end-of-line cursor) gets CursorStyle layered on top.
func (m Model) renderLine(runes []rune, row int, seg core.Segment, hasSeg bool, cursor core.CursorNode) string {
	var b strings.Builder
	onCursor := func(col int) bool {
		return cursor.Visible && cursor.Row == row && cursor.Col == col
	}
	inSeg := func(col int) bool {
		return hasSeg && col >= seg.Left && col < seg.Left+seg.Width
	}

	for col, r := range runes {
		ch := string(r)
		switch {
		case onCursor(col):
			b.WriteString(m.theme.CursorStyle.Render(ch))
		case inSeg(col):
			b.WriteString(m.theme.SelectionStyle.Render(ch))
		default:
			b.WriteString(ch)
		}
	}
	if onCursor(len(runes)) {
		b.WriteString(m.theme.CursorStyle.Render(" "))
	}
	return b.String()
}

func (m Model) statusLine() string {
	cur := m.editor.Cursor()
	sel := m.editor.Selection()

	text := fmt.Sprintf(" %d:%d", cur.Position.Row+1, cur.Position.Col+1)
	if sel.Active() {
		dir := "fwd"
		if !sel.IsForward() {
			dir = "bwd"
		}
		text += fmt.Sprintf("  sel(%s)", dir)
	}
	text += fmt.Sprintf("  undo:%d redo:%d", m.editor.UndoLen(), m.editor.RedoLen())
	return text
}

func padTo(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
