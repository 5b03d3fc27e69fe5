package core

import "fmt"

// Segment is one visible selection segment: a row plus the [Left,
// Left+Width) character-cell span painted on it. Segments
// are ordered top-to-bottom.
type Segment struct {
	Row   int
	Left  int
	Width int
}

// WidthCh formats Width the way a host's DOM-based renderer would
// ("<N>ch"), for hosts that want the literal CSS width string.
func (s Segment) WidthCh() string { return fmt.Sprintf("%dch", s.Width) }

// CursorNode is the rendering contract's single cursor node.
type CursorNode struct {
	Row     int
	Col     int
	Visible bool
}

// RenderSnapshot is the pure, DOM-equivalent projection of Editor state
// a host renders from: rendering is a pure function of the editor's
// current state. Producing one never mutates the Editor.
type RenderSnapshot struct {
	Lines        []string
	Segments     []Segment
	Cursor       CursorNode
	GutterWidth  int
	ViewportFrom int
	ViewportTo   int
}

// digits returns floor(log10(max(n,1)))+1 — the digit-count rule.
func digits(n int) int {
	if n < 1 {
		n = 1
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// gutterWidth implements the gutter width rule: reserves
// max(2, digits(maxVisibleLineNumber)) + 1 character cells.
func gutterWidth(viewportStart, viewportRows, lineCount int) int {
	visible := viewportRows
	if remaining := lineCount - viewportStart; remaining < visible {
		visible = remaining
	}
	if visible < 0 {
		visible = 0
	}
	maxVisibleLineNumber := viewportStart + visible
	d := digits(maxVisibleLineNumber)
	if d < 2 {
		d = 2
	}
	return d + 1
}

// selectionSegments computes the visible selection chrome per the
// phantom-newline rules: a single-line selection is plain [start,end);
// a multi-line selection's first and intermediate rows each gain one
// phantom-newline cell (they're "crossed" by the selection), while its
// last row stops exactly at the ordered end's column (for a forward
// selection that is the head, drawn by cursor chrome, not selection
// chrome).
func selectionSegments(m *Model, sel Selection) []Segment {
	if sel.Empty() {
		return nil
	}
	start, end := sel.Ordered()

	if start.Row == end.Row {
		return []Segment{{Row: start.Row, Left: start.Col, Width: end.Col - start.Col}}
	}

	segs := make([]Segment, 0, end.Row-start.Row+1)
	segs = append(segs, Segment{Row: start.Row, Left: start.Col, Width: m.LineLen(start.Row) - start.Col + 1})
	for r := start.Row + 1; r < end.Row; r++ {
		segs = append(segs, Segment{Row: r, Left: 0, Width: m.LineLen(r) + 1})
	}
	segs = append(segs, Segment{Row: end.Row, Left: 0, Width: end.Col})
	return segs
}
