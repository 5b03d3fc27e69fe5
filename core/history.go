package core

import "unicode"

// EditKind tags the shape of an EditRecord's payload.
type EditKind int

const (
	KindInsertText EditKind = iota
	KindDeleteRange
	KindSplitLine
	KindJoinLines
	KindReplaceRange
)

// EditorSelState is the cursor+selection snapshot History clones into
// every record's Before/After — History never aliases the live Cursor
// or Selection.
type EditorSelState struct {
	Cursor    Cursor
	Selection Selection
}

// EditRecord is one atomic edit: everything needed to invert it against
// the Model plus the before/after cursor+selection state.
type EditRecord struct {
	Kind   EditKind
	Before EditorSelState
	After  EditorSelState

	// Insert-like payload (InsertText, SplitLine, and the insert half
	// of ReplaceRange).
	InsertPos    Position
	InsertedText string
	InsertEnd    Position // Model.InsertText's returned end position

	// Delete-like payload (DeleteRange, JoinLines, and the delete half
	// of ReplaceRange). DeleteStart/DeleteEnd describe the pre-deletion
	// span; DeletedText is what Model.DeleteRange returned.
	DeleteStart Position
	DeleteEnd   Position
	DeletedText string

	Seq uint64
}

// Transaction is the smallest undoable unit: one or more EditRecords
// applied and inverted together.
type Transaction []EditRecord

type coalesceState struct {
	row     int
	nextCol int
}

// History is the two-stack undo/redo log. It owns cloned
// before/after states and payloads by value and never retains a
// reference into the live Model.
type History struct {
	undo []Transaction
	redo []Transaction

	seq uint64

	groupDepth int
	pending    Transaction

	coalesce *coalesceState
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

func (h *History) nextSeq() uint64 {
	h.seq++
	return h.seq
}

// BeginGroup opens a composite-edit boundary (e.g. replace = delete +
// insert); records made while a group is open accumulate into one
// transaction instead of being individually coalesced or pushed.
// Groups nest; the transaction is only finalized when the outermost
// EndGroup runs.
func (h *History) BeginGroup() {
	h.groupDepth++
	h.breakCoalescing()
}

// EndGroup closes a group opened by BeginGroup. Calling it without a
// matching BeginGroup is a precondition violation.
func (h *History) EndGroup() {
	if h.groupDepth <= 0 {
		precondition("History.EndGroup", "no matching BeginGroup")
	}
	h.groupDepth--
	if h.groupDepth == 0 && len(h.pending) > 0 {
		h.pushTransaction(h.pending)
		h.pending = nil
	}
	h.breakCoalescing()
}

// BreakCoalescing ends any in-progress typing-run coalescing without
// recording an edit. The edit pipeline calls this on caret motion,
// deletions, selection edits, Enter, and any other non-typing event.
func (h *History) BreakCoalescing() {
	h.breakCoalescing()
}

func (h *History) breakCoalescing() {
	h.coalesce = nil
}

// Record appends one atomic edit. Outside a group, a single-character,
// non-whitespace insertText at the column immediately after the
// previous coalesced insertion on the same row merges into the current
// top-of-undoStack transaction instead of starting a new one.
// Recording always clears the redo stack.
func (h *History) Record(rec EditRecord) {
	rec.Seq = h.nextSeq()

	if h.groupDepth > 0 {
		h.pending = append(h.pending, rec)
		return
	}

	if h.canCoalesce(rec) {
		top := h.undo[len(h.undo)-1]
		top[0].After = rec.After
		top = append(top, rec)
		h.undo[len(h.undo)-1] = top
		h.redo = nil
		h.updateCoalesceState(rec)
		return
	}

	h.pushTransaction(Transaction{rec})
	h.updateCoalesceState(rec)
}

func (h *History) pushTransaction(txn Transaction) {
	h.undo = append(h.undo, txn)
	h.redo = nil
}

func (h *History) canCoalesce(rec EditRecord) bool {
	if h.coalesce == nil || len(h.undo) == 0 {
		return false
	}
	if rec.Kind != KindInsertText {
		return false
	}
	runes := []rune(rec.InsertedText)
	if len(runes) != 1 || unicode.IsSpace(runes[0]) {
		return false
	}
	return rec.InsertPos.Row == h.coalesce.row && rec.InsertPos.Col == h.coalesce.nextCol
}

func (h *History) updateCoalesceState(rec EditRecord) {
	runes := []rune(rec.InsertedText)
	if rec.Kind == KindInsertText && len(runes) == 1 && !unicode.IsSpace(runes[0]) {
		h.coalesce = &coalesceState{row: rec.InsertPos.Row, nextCol: rec.InsertEnd.Col}
		return
	}
	h.breakCoalescing()
}

// UndoLen and RedoLen expose the stack depths, for hosts that want to
// show an undo/redo affordance.
func (h *History) UndoLen() int { return len(h.undo) }
func (h *History) RedoLen() int { return len(h.redo) }

// PopUndo removes and returns the most recent transaction, or ok=false
// if the undo stack is empty.
func (h *History) PopUndo() (txn Transaction, ok bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	txn = h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.breakCoalescing()
	return txn, true
}

// PopRedo removes and returns the most recently undone transaction.
func (h *History) PopRedo() (txn Transaction, ok bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	txn = h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.breakCoalescing()
	return txn, true
}

// PushUndo puts a transaction back on the undo stack (used by Redo).
func (h *History) PushUndo(txn Transaction) {
	h.undo = append(h.undo, txn)
	h.breakCoalescing()
}

// PushRedo puts a transaction on the redo stack (used by Undo). It
// does NOT clear the undo stack.
func (h *History) PushRedo(txn Transaction) {
	h.redo = append(h.redo, txn)
}

// Reset clears both stacks and any in-flight group/coalescing state —
// used when the Model's text is replaced wholesale, since a bulk
// replacement has no prior edit worth undoing back to.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
	h.groupDepth = 0
	h.pending = nil
	h.coalesce = nil
}
