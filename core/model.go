package core

import "strings"

// Model is the authoritative ordered sequence of lines.
// It owns its line strings exclusively; Cursor, Selection and Viewport
// hold positions or integers by value and never alias into it.
type Model struct {
	lines [][]rune
}

// NewModel returns an empty, single-blank-line Model.
func NewModel() *Model {
	return &Model{lines: [][]rune{{}}}
}

// NewModelFromText splits text on newlines into a Model.
func NewModelFromText(text string) *Model {
	m := &Model{}
	m.setText(text)
	return m
}

// LineCount returns the number of lines. Always >= 1.
func (m *Model) LineCount() int { return len(m.lines) }

// LineAt returns the text of the line at row. Panics (precondition) if
// row is out of range — callers clamp before calling.
func (m *Model) LineAt(row int) string {
	m.checkRow("LineAt", row)
	return string(m.lines[row])
}

// LineLen returns the rune length of the line at row.
func (m *Model) LineLen(row int) int {
	m.checkRow("LineLen", row)
	return len(m.lines[row])
}

// Text returns the full buffer, lines joined by '\n'.
func (m *Model) Text() string {
	ss := make([]string, len(m.lines))
	for i, l := range m.lines {
		ss[i] = string(l)
	}
	return strings.Join(ss, "\n")
}

// SetText replaces the entire buffer, splitting on '\n' and resetting
// all derived caches. Never errors: bulk-text assignment always
// succeeds; an empty string yields a single empty line.
func (m *Model) SetText(text string) {
	m.setText(text)
}

func (m *Model) setText(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	m.lines = lines
}

// Clamp returns pos adjusted into valid Model range: row clamped to
// [0, LineCount), col clamped to [0, LineLen(row)].
func (m *Model) Clamp(pos Position) Position {
	row := pos.Row
	if row < 0 {
		row = 0
	} else if row >= m.LineCount() {
		row = m.LineCount() - 1
	}
	col := pos.Col
	lineLen := m.LineLen(row)
	if col < 0 {
		col = 0
	} else if col > lineLen {
		col = lineLen
	}
	return Position{Row: row, Col: col}
}

// InsertText inserts text (which may contain newlines) at (row, col)
// and returns the position immediately after the inserted text.
func (m *Model) InsertText(row, col int, text string) Position {
	m.checkPos("InsertText", row, col)

	if !strings.Contains(text, "\n") {
		line := m.lines[row]
		newLine := make([]rune, 0, len(line)+len(text))
		newLine = append(newLine, line[:col]...)
		newLine = append(newLine, []rune(text)...)
		newLine = append(newLine, line[col:]...)
		m.lines[row] = newLine
		return Position{Row: row, Col: col + len([]rune(text))}
	}

	parts := strings.Split(text, "\n")
	line := m.lines[row]
	head := append([]rune{}, line[:col]...)
	tail := append([]rune{}, line[col:]...)

	firstLine := append(head, []rune(parts[0])...)

	middle := make([][]rune, len(parts)-2)
	for i := 1; i < len(parts)-1; i++ {
		middle[i-1] = []rune(parts[i])
	}

	lastSegment := []rune(parts[len(parts)-1])
	lastLine := append(append([]rune{}, lastSegment...), tail...)
	endCol := len(lastSegment)

	newLines := make([][]rune, 0, len(m.lines)+len(parts)-1)
	newLines = append(newLines, m.lines[:row]...)
	newLines = append(newLines, firstLine)
	newLines = append(newLines, middle...)
	newLines = append(newLines, lastLine)
	newLines = append(newLines, m.lines[row+1:]...)
	m.lines = newLines

	return Position{Row: row + len(parts) - 1, Col: endCol}
}

// DeleteRange deletes the text in [start, end) and returns it, so
// History can invert the edit. start must be <= end.
func (m *Model) DeleteRange(start, end Position) string {
	m.checkPos("DeleteRange(start)", start.Row, start.Col)
	m.checkPos("DeleteRange(end)", end.Row, end.Col)
	if end.Less(start) {
		precondition("DeleteRange", "end before start")
	}

	if start == end {
		return ""
	}

	if start.Row == end.Row {
		line := m.lines[start.Row]
		deleted := string(line[start.Col:end.Col])
		newLine := make([]rune, 0, len(line)-(end.Col-start.Col))
		newLine = append(newLine, line[:start.Col]...)
		newLine = append(newLine, line[end.Col:]...)
		m.lines[start.Row] = newLine
		return deleted
	}

	var b strings.Builder
	startLine := m.lines[start.Row]
	b.WriteString(string(startLine[start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		b.WriteByte('\n')
		b.WriteString(string(m.lines[r]))
	}
	b.WriteByte('\n')
	endLine := m.lines[end.Row]
	b.WriteString(string(endLine[:end.Col]))

	merged := make([]rune, 0, start.Col+(len(endLine)-end.Col))
	merged = append(merged, startLine[:start.Col]...)
	merged = append(merged, endLine[end.Col:]...)

	newLines := make([][]rune, 0, len(m.lines)-(end.Row-start.Row))
	newLines = append(newLines, m.lines[:start.Row]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, m.lines[end.Row+1:]...)
	m.lines = newLines

	return b.String()
}

// SplitLine breaks the line at row into two at col — equivalent to
// InsertText(row, col, "\n") but named so History can encode the
// structural intent.
func (m *Model) SplitLine(row, col int) {
	m.InsertText(row, col, "\n")
}

// JoinLines merges row and row+1, removing the newline between them —
// equivalent to DeleteRange at the end of row spanning one rune.
func (m *Model) JoinLines(row int) {
	m.checkRow("JoinLines", row)
	if row >= len(m.lines)-1 {
		precondition("JoinLines", "no following line to join")
	}
	end := Position{Row: row + 1, Col: 0}
	m.DeleteRange(Position{Row: row, Col: m.LineLen(row)}, end)
}

func (m *Model) checkRow(op string, row int) {
	if row < 0 || row >= len(m.lines) {
		precondition(op, "row out of range")
	}
}

func (m *Model) checkPos(op string, row, col int) {
	m.checkRow(op, row)
	if col < 0 || col > len(m.lines[row]) {
		precondition(op, "col out of range")
	}
}
