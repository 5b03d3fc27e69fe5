package core

// EditorSnapshot is the embedding API's read of the full editor state in
// one call.
type EditorSnapshot struct {
	Lines     []string
	Cursor    Cursor
	Selection Selection
	Viewport  Viewport
}

// Editor wires Model, Mode, Cursor, Selection, Viewport and History into
// a single edit pipeline: capture before-state, mutate the Model,
// update Cursor/Selection, record a History transaction, then let the
// Viewport follow the (new) head row.
//
// The Cursor held here IS the selection's head — the Cursor presented
// to a host is not kept in sync with the selection as a separate step,
// it's the same value.
type Editor struct {
	model    *Model
	mode     Mode
	cursor   Cursor
	tail     Position
	viewport Viewport
	history  *History
}

// Config configures a new Editor.
type Config struct {
	Text string
	Mode Mode
}

// NewEditor constructs an Editor from Config, with the cursor and
// selection collapsed at the document start and the Viewport following
// from row 0.
func NewEditor(cfg Config) *Editor {
	m := NewModelFromText(cfg.Text)
	e := &Editor{
		model:   m,
		mode:    cfg.Mode.normalized(),
		history: NewHistory(),
	}
	e.viewport = Viewport{Start: 0, Rows: e.mode.ViewportRows}
	e.viewport.Follow(0)
	return e
}

// Text returns the full buffer contents.
func (e *Editor) Text() string { return e.model.Text() }

// SetText replaces the buffer wholesale, collapses the cursor/selection
// to the document start, resets the Viewport and clears History: a
// bulk replacement (e.g. loading a file) has no meaningful prior edit
// to undo back to, so it starts a fresh undo history rather than
// grafting onto the old one.
func (e *Editor) SetText(text string) {
	e.model.SetText(text)
	e.cursor = Cursor{}
	e.tail = Position{}
	e.viewport.Start = 0
	e.viewport.Follow(0)
	e.history.Reset()
}

// Lines returns every line in the buffer as strings.
func (e *Editor) Lines() []string {
	lines := make([]string, e.model.LineCount())
	for i := range lines {
		lines[i] = e.model.LineAt(i)
	}
	return lines
}

// Mode returns the editor's static configuration.
func (e *Editor) Mode() Mode { return e.mode }

// Cursor returns the current cursor (the selection's head).
func (e *Editor) Cursor() Cursor { return e.cursor }

// Selection returns the current selection.
func (e *Editor) Selection() Selection { return Selection{Tail: e.tail, Head: e.cursor.Position} }

// Viewport returns the current viewport window.
func (e *Editor) Viewport() Viewport { return e.viewport }

// Snapshot returns every piece of observable state in one call.
func (e *Editor) Snapshot() EditorSnapshot {
	return EditorSnapshot{
		Lines:     e.Lines(),
		Cursor:    e.cursor,
		Selection: e.Selection(),
		Viewport:  e.viewport,
	}
}

// Render produces the pure rendering projection over the current state.
func (e *Editor) Render() RenderSnapshot {
	sel := e.Selection()
	from, to := e.viewport.VisibleRange(e.model.LineCount())
	return RenderSnapshot{
		Lines:    e.Lines(),
		Segments: selectionSegments(e.model, sel),
		Cursor: CursorNode{
			Row:     e.cursor.Position.Row,
			Col:     e.cursor.Position.Col,
			Visible: e.cursor.Position.Row >= from && e.cursor.Position.Row < to,
		},
		GutterWidth:  gutterWidth(e.viewport.Start, e.viewport.Rows, e.model.LineCount()),
		ViewportFrom: from,
		ViewportTo:   to,
	}
}

// SetCursor moves the cursor to pos programmatically, clamped into the
// document, and collapses the selection there. It breaks typing-run
// coalescing the same way any caret motion does.
func (e *Editor) SetCursor(pos Position) {
	e.cursor.Set(e.model, pos)
	e.tail = e.cursor.Position
	e.history.BreakCoalescing()
	e.viewport.Follow(e.cursor.Position.Row)
}

// SetSelection sets tail/head programmatically, clamped into the
// document.
func (e *Editor) SetSelection(tail, head Position) {
	e.tail = e.model.Clamp(tail)
	e.cursor.Set(e.model, head)
	e.history.BreakCoalescing()
	e.viewport.Follow(e.cursor.Position.Row)
}

// beforeStateAt captures the before-state recorded in every EditRecord.
// When a selection was active, the recorded cursor/selection collapses
// to the edit's start (ordered().start) rather than the literal
// pre-edit tail/head pair: undoing a replacement returns the cursor to
// the left edge of what was replaced, not to a revived highlight.
func (e *Editor) beforeStateAt(pos Position) EditorSelState {
	return EditorSelState{
		Cursor:    Cursor{Position: pos, DesiredCol: pos.Col},
		Selection: Selection{Tail: pos, Head: pos},
	}
}

func (e *Editor) afterState() EditorSelState {
	return EditorSelState{Cursor: e.cursor, Selection: e.Selection()}
}

func (e *Editor) setCollapsed(pos Position) {
	e.cursor.Position = pos
	e.cursor.DesiredCol = pos.Col
	e.tail = pos
}

// applyInsert is the shared insert path for InsertOp (no active
// selection): mutate, move the cursor after the inserted text, record,
// follow.
func (e *Editor) applyInsert(text string, kind EditKind) {
	pos := e.cursor.Position
	before := e.beforeStateAt(pos)
	end := e.model.InsertText(pos.Row, pos.Col, text)
	e.setCollapsed(end)
	rec := EditRecord{
		Kind:         kind,
		Before:       before,
		After:        e.afterState(),
		InsertPos:    pos,
		InsertedText: text,
		InsertEnd:    end,
	}
	e.history.Record(rec)
	e.viewport.Follow(end.Row)
}

// applyReplace is the shared path for ReplaceOp (an active selection
// being typed/pasted/split over): delete the ordered range, insert text
// at its start, land the cursor immediately after it, and record both
// halves as one indivisible transaction.
func (e *Editor) applyReplace(text string) {
	start, end := e.Selection().Ordered()
	before := e.beforeStateAt(start)
	deleted := e.model.DeleteRange(start, end)
	insEnd := e.model.InsertText(start.Row, start.Col, text)
	e.setCollapsed(insEnd)
	rec := EditRecord{
		Kind:         KindReplaceRange,
		Before:       before,
		After:        e.afterState(),
		InsertPos:    start,
		InsertedText: text,
		InsertEnd:    insEnd,
		DeleteStart:  start,
		DeleteEnd:    end,
		DeletedText:  deleted,
	}
	e.history.Record(rec)
	e.viewport.Follow(insEnd.Row)
}

// applyBackspace implements the Backspace row: deletes the
// active selection if one exists; otherwise deletes one character
// backward, joining with the previous line at column 0. A no-op at
// (0,0) with no active selection.
func (e *Editor) applyBackspace() error {
	if e.Selection().Active() {
		start, end := e.Selection().Ordered()
		before := e.beforeStateAt(start)
		deleted := e.model.DeleteRange(start, end)
		e.setCollapsed(start)
		rec := EditRecord{
			Kind:        KindDeleteRange,
			Before:      before,
			After:       e.afterState(),
			DeleteStart: start,
			DeleteEnd:   end,
			DeletedText: deleted,
		}
		e.history.Record(rec)
		e.viewport.Follow(start.Row)
		return nil
	}

	pos := e.cursor.Position
	if pos.Col == 0 && pos.Row == 0 {
		return noop(ErrStartOfBuffer)
	}

	before := e.beforeStateAt(pos)
	var start Position
	var kind EditKind
	if pos.Col == 0 {
		start = Position{Row: pos.Row - 1, Col: e.model.LineLen(pos.Row - 1)}
		kind = KindJoinLines
	} else {
		start = Position{Row: pos.Row, Col: pos.Col - 1}
		kind = KindDeleteRange
	}
	deleted := e.model.DeleteRange(start, pos)
	e.setCollapsed(start)
	rec := EditRecord{
		Kind:        kind,
		Before:      before,
		After:       e.afterState(),
		DeleteStart: start,
		DeleteEnd:   pos,
		DeletedText: deleted,
	}
	e.history.Record(rec)
	e.viewport.Follow(start.Row)
	return nil
}

// leadingSpaces counts the run of literal space runes at the start of
// row, up to at most max.
func leadingSpaces(line string, max int) int {
	runes := []rune(line)
	n := 0
	for n < len(runes) && n < max && runes[n] == ' ' {
		n++
	}
	return n
}

// applyIndent inserts e.mode.Spaces spaces at the start of every row a
// multi-line selection spans, as one grouped transaction (the
// Tab-on-multi-line-selection behaviour). Translate only ever produces
// IndentOp when the selection is active and spans more than one row; a
// plain Tab elsewhere is an ordinary InsertOp/ReplaceOp of spaces.
func (e *Editor) applyIndent() {
	start, end := e.Selection().Ordered()
	pad := spacesString(e.mode.Spaces)

	e.history.BeginGroup()
	for r := start.Row; r <= end.Row; r++ {
		pos := Position{Row: r, Col: 0}
		before := e.beforeStateAt(pos)
		insEnd := e.model.InsertText(r, 0, pad)
		e.history.Record(EditRecord{
			Kind:         KindInsertText,
			Before:       before,
			After:        before,
			InsertPos:    pos,
			InsertedText: pad,
			InsertEnd:    insEnd,
		})
	}
	e.history.EndGroup()

	e.tail = Position{Row: start.Row, Col: start.Col + len(pad)}
	e.cursor.Position = Position{Row: end.Row, Col: end.Col + len(pad)}
	e.cursor.DesiredCol = e.cursor.Position.Col
	e.viewport.Follow(e.cursor.Position.Row)
}

// applyUnindent removes up to e.mode.Spaces leading spaces from every
// row the selection spans (or just the cursor's row), examining each
// line independently.
func (e *Editor) applyUnindent() {
	sel := e.Selection()
	start, end := sel.Ordered()
	forward := sel.IsForward()
	firstRow, lastRow := start.Row, end.Row
	hadSelection := sel.Active()
	if !hadSelection {
		firstRow, lastRow = e.cursor.Position.Row, e.cursor.Position.Row
	}

	removed := make(map[int]int, lastRow-firstRow+1)
	e.history.BeginGroup()
	for r := firstRow; r <= lastRow; r++ {
		k := leadingSpaces(e.model.LineAt(r), e.mode.Spaces)
		if k == 0 {
			continue
		}
		delStart := Position{Row: r, Col: 0}
		delEnd := Position{Row: r, Col: k}
		before := e.beforeStateAt(delStart)
		deleted := e.model.DeleteRange(delStart, delEnd)
		e.history.Record(EditRecord{
			Kind:        KindDeleteRange,
			Before:      before,
			After:       before,
			DeleteStart: delStart,
			DeleteEnd:   delEnd,
			DeletedText: deleted,
		})
		removed[r] = k
	}
	e.history.EndGroup()

	shiftCol := func(pos Position) Position {
		if k, ok := removed[pos.Row]; ok {
			pos.Col -= k
			if pos.Col < 0 {
				pos.Col = 0
			}
		}
		return pos
	}
	if hadSelection {
		shiftedStart, shiftedEnd := shiftCol(start), shiftCol(end)
		if forward {
			e.tail, e.cursor.Position = shiftedStart, shiftedEnd
		} else {
			e.tail, e.cursor.Position = shiftedEnd, shiftedStart
		}
	} else {
		e.cursor.Position = shiftCol(e.cursor.Position)
		e.tail = e.cursor.Position
	}
	e.cursor.DesiredCol = e.cursor.Position.Col
	e.viewport.Follow(e.cursor.Position.Row)
}

func spacesString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// runMotion executes one Motion against the cursor, returning the same
// no-op error the underlying Cursor method returns. Word motions get an
// editor-level pre-scroll check: moveWord at the Viewport's
// last visible row scrolls it down by one before stepping onto the
// newly-visible line; moveBackWord at the Viewport's first visible row
// scrolls it up by one before stepping onto the newly-visible line.
func (e *Editor) runMotion(mo Motion) error {
	switch mo {
	case MotionLeft:
		return e.cursor.MoveLeft(e.model)
	case MotionRight:
		return e.cursor.MoveRight(e.model)
	case MotionUp:
		return e.cursor.MoveUp(e.model)
	case MotionDown:
		return e.cursor.MoveDown(e.model)
	case MotionLineStart:
		e.cursor.MoveLineStart(e.model)
		return nil
	case MotionLineEnd:
		e.cursor.MoveLineEnd(e.model)
		return nil
	case MotionWordForward:
		lastVisible := e.viewport.Start + e.viewport.Rows - 1
		if e.cursor.Position.Row == lastVisible && e.cursor.Position.Col == e.model.LineLen(e.cursor.Position.Row) &&
			e.cursor.Position.Row < e.model.LineCount()-1 {
			e.viewport.Scroll(1)
		}
		return e.cursor.MoveWord(e.model)
	case MotionWordBackward:
		if e.cursor.Position.Row == e.viewport.Start && e.cursor.Position.Col == 0 {
			e.viewport.Scroll(-1)
		}
		return e.cursor.MoveBackWord(e.model)
	}
	return nil
}

// Apply executes one already-translated Op against the editor. It is
// exported so a host can drive the editor from its own gesture source
// without going through HandleGesture's Translate step.
func (e *Editor) Apply(op Op) error {
	switch v := op.(type) {
	case MoveOp:
		if err := e.runMotion(v.Motion); err != nil {
			return err
		}
		e.tail = e.cursor.Position
		e.history.BreakCoalescing()
		e.viewport.Follow(e.cursor.Position.Row)
		return nil

	case ExtendOp:
		if err := e.runMotion(v.Motion); err != nil {
			return err
		}
		e.history.BreakCoalescing()
		e.viewport.Follow(e.cursor.Position.Row)
		return nil

	case CollapseOp:
		start, end := e.Selection().Ordered()
		dest := end
		if v.ToStart {
			dest = start
		}
		e.cursor.Set(e.model, dest)
		e.tail = e.cursor.Position
		e.history.BreakCoalescing()
		e.viewport.Follow(e.cursor.Position.Row)
		return nil

	case InsertOp:
		if e.Selection().Active() {
			e.applyReplace(v.Text)
			return nil
		}
		e.applyInsert(v.Text, v.Kind)
		return nil

	case ReplaceOp:
		e.applyReplace(v.Text)
		return nil

	case BackspaceOp:
		return e.applyBackspace()

	case IndentOp:
		e.applyIndent()
		return nil

	case UnindentOp:
		e.applyUnindent()
		return nil

	case NoneOp:
		return nil
	}
	return nil
}

// HandleGesture translates g against the editor's current state and
// applies the result g.RepeatCount times: applied as a sequence of
// N identical steps, not N-1 then 1. State — in
// particular whether a selection is active — is re-examined before each
// repeat, so e.g. a repeated Left with an active selection collapses it
// on the first step and moves the cursor on the rest.
//
// A negative RepeatCount is a precondition violation; zero is treated
// as 1. HandleGesture returns the last no-op error encountered, if any;
// it never returns a PreconditionError (those panic).
func (e *Editor) HandleGesture(g Gesture) error {
	if g.RepeatCount < 0 {
		precondition("Editor.HandleGesture", "negative repeat count")
	}
	n := g.RepeatCount
	if n == 0 {
		n = 1
	}

	single := g
	single.RepeatCount = 1

	var lastErr error
	for i := 0; i < n; i++ {
		sel := e.Selection()
		multiline := false
		if sel.Active() {
			start, end := sel.Ordered()
			multiline = start.Row != end.Row
		}
		ctx := Context{
			HasSelection:       sel.Active(),
			SelectionMultiline: multiline,
			Spaces:             e.mode.Spaces,
			TabInsertsSpaces:   e.mode.TabInsertsSpaces,
		}
		op := Translate(single, ctx)
		if err := e.Apply(op); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Undo pops the most recent transaction, inverts each of its records
// against the Model in reverse order, restores the first record's
// before-state, and pushes the transaction onto the redo stack. Returns
// ErrEmptyStack if there is nothing to undo.
func (e *Editor) Undo() error {
	txn, ok := e.history.PopUndo()
	if !ok {
		return noop(ErrEmptyStack)
	}
	for i := len(txn) - 1; i >= 0; i-- {
		e.invert(txn[i])
	}
	e.restore(txn[0].Before)
	e.history.PushRedo(txn)
	return nil
}

// Redo pops the most recently undone transaction, re-applies each of
// its records in forward order, restores the last record's after-state,
// and pushes the transaction back onto the undo stack. Returns
// ErrEmptyStack if there is nothing to redo.
func (e *Editor) Redo() error {
	txn, ok := e.history.PopRedo()
	if !ok {
		return noop(ErrEmptyStack)
	}
	for _, rec := range txn {
		e.reapply(rec)
	}
	e.restore(txn[len(txn)-1].After)
	e.history.PushUndo(txn)
	return nil
}

func (e *Editor) restore(s EditorSelState) {
	e.cursor = s.Cursor
	e.tail = s.Selection.Tail
	e.viewport.Follow(e.cursor.Position.Row)
}

// invert undoes one EditRecord: delete what was inserted, re-insert
// what was deleted.
func (e *Editor) invert(rec EditRecord) {
	switch rec.Kind {
	case KindInsertText, KindSplitLine:
		e.model.DeleteRange(rec.InsertPos, rec.InsertEnd)
	case KindDeleteRange, KindJoinLines:
		e.model.InsertText(rec.DeleteStart.Row, rec.DeleteStart.Col, rec.DeletedText)
	case KindReplaceRange:
		e.model.DeleteRange(rec.InsertPos, rec.InsertEnd)
		e.model.InsertText(rec.DeleteStart.Row, rec.DeleteStart.Col, rec.DeletedText)
	}
}

// reapply redoes one EditRecord: replay the same mutation forward.
func (e *Editor) reapply(rec EditRecord) {
	switch rec.Kind {
	case KindInsertText, KindSplitLine:
		e.model.InsertText(rec.InsertPos.Row, rec.InsertPos.Col, rec.InsertedText)
	case KindDeleteRange, KindJoinLines:
		e.model.DeleteRange(rec.DeleteStart, rec.DeleteEnd)
	case KindReplaceRange:
		e.model.DeleteRange(rec.DeleteStart, rec.DeleteEnd)
		e.model.InsertText(rec.InsertPos.Row, rec.InsertPos.Col, rec.InsertedText)
	}
}

// UndoLen and RedoLen expose the two stack depths.
func (e *Editor) UndoLen() int { return e.history.UndoLen() }
func (e *Editor) RedoLen() int { return e.history.RedoLen() }

// SetViewportRows resizes the Viewport's fixed row count (a host window
// resize) and re-follows the cursor so it stays visible under the new
// size.
func (e *Editor) SetViewportRows(rows int) {
	if rows <= 0 {
		rows = 1
	}
	e.mode.ViewportRows = rows
	e.viewport.Rows = rows
	e.viewport.Follow(e.cursor.Position.Row)
}
