package core

import "fmt"

// Cursor is a (row, col) position plus a remembered "desired column".
// DesiredCol is updated by every horizontal motion and left untouched
// by vertical motions, which is what lets a vertical round-trip
// restore the original column through a shorter intermediate line
// (the "phantom column" property).
type Cursor struct {
	Position   Position
	DesiredCol int
}

// Set moves the cursor to an explicit position (used by programmatic
// SetCursor/SetSelection and by selection collapse) and updates
// DesiredCol — every horizontal motion
// keeps the invariant DesiredCol == Col.
func (c *Cursor) Set(m *Model, pos Position) {
	c.Position = m.Clamp(pos)
	c.DesiredCol = c.Position.Col
}

// isWordChar classifies word characters: ASCII letters, digits and
// underscore only, regardless of the surrounding text's script.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func noop(sentinel error) error {
	return fmt.Errorf("%w: %w", ErrNoop, sentinel)
}

// MoveLeft steps one column left, wrapping to the end of the previous
// line at column 0. A no-op at (0,0).
func (c *Cursor) MoveLeft(m *Model) error {
	if c.Position.Col > 0 {
		c.Position.Col--
		c.DesiredCol = c.Position.Col
		return nil
	}
	if c.Position.Row > 0 {
		c.Position.Row--
		c.Position.Col = m.LineLen(c.Position.Row)
		c.DesiredCol = c.Position.Col
		return nil
	}
	return noop(ErrStartOfBuffer)
}

// MoveRight steps one column right, wrapping to the start of the next
// line at end-of-line. A no-op at the end of the document.
func (c *Cursor) MoveRight(m *Model) error {
	lineLen := m.LineLen(c.Position.Row)
	if c.Position.Col < lineLen {
		c.Position.Col++
		c.DesiredCol = c.Position.Col
		return nil
	}
	if c.Position.Row < m.LineCount()-1 {
		c.Position.Row++
		c.Position.Col = 0
		c.DesiredCol = c.Position.Col
		return nil
	}
	return noop(ErrEndOfBuffer)
}

// MoveUp moves one row up, restoring column to
// min(DesiredCol, len(newLine)). DesiredCol is never reassigned here —
// that is what preserves the phantom column across a shorter line.
func (c *Cursor) MoveUp(m *Model) error {
	if c.Position.Row <= 0 {
		return noop(ErrStartOfBuffer)
	}
	c.Position.Row--
	c.Position.Col = min(c.DesiredCol, m.LineLen(c.Position.Row))
	return nil
}

// MoveDown mirrors MoveUp.
func (c *Cursor) MoveDown(m *Model) error {
	if c.Position.Row >= m.LineCount()-1 {
		return noop(ErrEndOfBuffer)
	}
	c.Position.Row++
	c.Position.Col = min(c.DesiredCol, m.LineLen(c.Position.Row))
	return nil
}

// MoveLineStart moves to column 0 of the current line.
func (c *Cursor) MoveLineStart(m *Model) {
	c.Position.Col = 0
	c.DesiredCol = 0
}

// MoveLineEnd moves to the end-of-line column (length of the line).
func (c *Cursor) MoveLineEnd(m *Model) {
	c.Position.Col = m.LineLen(c.Position.Row)
	c.DesiredCol = c.Position.Col
}

// wordBoundaryForward reports whether pos sits exactly between a
// non-word and a word character scanning forward. The implicit
// newline between lines counts as a non-word character, so the first
// word character of a line is always a boundary.
func wordBoundaryForward(m *Model, pos Position) bool {
	lineLen := m.LineLen(pos.Row)
	if pos.Col >= lineLen {
		return false
	}
	line := []rune(m.LineAt(pos.Row))
	if !isWordChar(line[pos.Col]) {
		return false
	}
	if pos.Col == 0 {
		return true
	}
	return !isWordChar(line[pos.Col-1])
}

func atDocumentStart(m *Model, pos Position) bool {
	return pos.Row == 0 && pos.Col == 0
}

func atDocumentEnd(m *Model, pos Position) bool {
	return pos.Row == m.LineCount()-1 && pos.Col == m.LineLen(pos.Row)
}

func stepForward(m *Model, pos Position) (Position, bool) {
	if pos.Col < m.LineLen(pos.Row) {
		return Position{Row: pos.Row, Col: pos.Col + 1}, true
	}
	if pos.Row < m.LineCount()-1 {
		return Position{Row: pos.Row + 1, Col: 0}, true
	}
	return pos, false
}

func stepBackward(m *Model, pos Position) (Position, bool) {
	if pos.Col > 0 {
		return Position{Row: pos.Row, Col: pos.Col - 1}, true
	}
	if pos.Row > 0 {
		return Position{Row: pos.Row - 1, Col: m.LineLen(pos.Row - 1)}, true
	}
	return pos, false
}

// MoveWord advances to the start of the next word: if
// already at end-of-line with a following line, it steps to (row+1, 0)
// first, then keeps scanning forward for the next word-boundary
// position. A no-op at the end of the document.
func (c *Cursor) MoveWord(m *Model) error {
	if atDocumentEnd(m, c.Position) {
		return noop(ErrEndOfBuffer)
	}
	pos := c.Position
	for {
		next, ok := stepForward(m, pos)
		if !ok {
			break
		}
		pos = next
		if wordBoundaryForward(m, pos) || atDocumentEnd(m, pos) {
			break
		}
	}
	c.Position = pos
	c.DesiredCol = pos.Col
	return nil
}

// MoveBackWord mirrors MoveWord in the backward direction. A no-op at
// the start of the document.
func (c *Cursor) MoveBackWord(m *Model) error {
	if atDocumentStart(m, c.Position) {
		return noop(ErrStartOfBuffer)
	}
	pos := c.Position
	for {
		next, ok := stepBackward(m, pos)
		if !ok {
			break
		}
		pos = next
		if wordBoundaryForward(m, pos) || atDocumentStart(m, pos) {
			break
		}
	}
	c.Position = pos
	c.DesiredCol = pos.Col
	return nil
}
