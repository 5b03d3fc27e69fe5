package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestEditor(text string) *Editor {
	return NewEditor(Config{Text: text, Mode: Mode{Spaces: 4, ViewportRows: 3, TabInsertsSpaces: true}})
}

// S1: moving down past a short line and back up restores the original
// column via the cursor's remembered desired column.
func TestEditor_S1_PhantomColumnRoundTrip(t *testing.T) {
	e := newTestEditor("hello\nhi\nworld")
	e.SetCursor(Position{Row: 0, Col: 4})

	require.NoError(t, e.HandleGesture(Press(KeyDown, ModNone)))
	require.Equal(t, Position{Row: 1, Col: 2}, e.Cursor().Position, "clamped to short line's end")

	require.NoError(t, e.HandleGesture(Press(KeyDown, ModNone)))
	require.Equal(t, Position{Row: 2, Col: 4}, e.Cursor().Position, "desired column restored once room exists")
}

// S2: typing over an active selection is one atomic replace, and undo
// restores the cursor to the ordered start of what was replaced (not a
// revived highlight).
func TestEditor_S2_ReplaceSelectionAtomicUndo(t *testing.T) {
	e := newTestEditor("hello world")
	e.SetSelection(Position{Row: 0, Col: 6}, Position{Row: 0, Col: 11})

	require.NoError(t, e.HandleGesture(Char('X')))
	require.Equal(t, "hello X", e.Text())
	require.Equal(t, 1, e.UndoLen(), "delete+insert recorded as one transaction")

	require.NoError(t, e.Undo())
	require.Equal(t, "hello world", e.Text())
	require.Equal(t, Position{Row: 0, Col: 6}, e.Cursor().Position)
	require.True(t, e.Selection().Empty())
}

// S3: Shift+Tab un-indents every selected row independently, removing at
// most each line's own leading-space count, and preserves selection direction.
func TestEditor_S3_UnindentPerLineDirectionPreserving(t *testing.T) {
	e := newTestEditor("    a\n  b\nc")
	// backward selection: head above tail
	e.SetSelection(Position{Row: 2, Col: 1}, Position{Row: 0, Col: 0})

	require.NoError(t, e.HandleGesture(Press(KeyTab, ModShift)))
	require.Equal(t, "a\nb\nc", e.Text())

	sel := e.Selection()
	require.False(t, sel.IsForward(), "backward selection direction survives unindent")
}

// S4: word-forward motion at the last visible row scrolls the viewport
// by exactly one row before stepping onto the newly visible line.
func TestEditor_S4_ViewportFollowsWordMotionAtEdge(t *testing.T) {
	e := newTestEditor("aaa\nbbb\nccc\nddd\neee")
	// Rows is 3: visible [0,3). Put cursor at end of row 2 (last visible).
	e.SetCursor(Position{Row: 2, Col: 3})
	require.Equal(t, 0, e.Viewport().Start)

	require.NoError(t, e.HandleGesture(Press(KeyRight, ModAlt)))
	require.Equal(t, 1, e.Viewport().Start, "scrolled down by exactly one row")
	require.Equal(t, 3, e.Cursor().Position.Row)
}

// S5: rendered segments cover exactly the selection's width on each row.
func TestEditor_S5_SelectionWidthRendering(t *testing.T) {
	e := newTestEditor("hello world")
	e.SetSelection(Position{Row: 0, Col: 2}, Position{Row: 0, Col: 7})

	snap := e.Render()
	require.Len(t, snap.Segments, 1)
	seg := snap.Segments[0]
	require.Equal(t, 0, seg.Row)
	require.Equal(t, 2, seg.Left)
	require.Equal(t, 5, seg.Width)
}

// S6: a backward selection (head above/before tail) is reported as such
// so a host can render direction-appropriate status text.
func TestEditor_S6_BackwardSelectionDirection(t *testing.T) {
	e := newTestEditor("hello world")
	e.SetSelection(Position{Row: 0, Col: 7}, Position{Row: 0, Col: 2})

	sel := e.Selection()
	require.False(t, sel.IsForward())
	start, end := sel.Ordered()
	require.Equal(t, Position{Row: 0, Col: 2}, start)
	require.Equal(t, Position{Row: 0, Col: 7}, end)
}

// S7: scrolling up from row 0 never drives the viewport negative.
func TestEditor_S7_ScrollNeverNegative(t *testing.T) {
	e := newTestEditor("aaa\nbbb\nccc")
	e.SetCursor(Position{Row: 0, Col: 0})

	err := e.HandleGesture(Press(KeyLeft, ModAlt))
	require.ErrorIs(t, err, ErrNoop)
	require.GreaterOrEqual(t, e.Viewport().Start, 0)
}

func TestEditor_Backspace_JoinsLines(t *testing.T) {
	e := newTestEditor("foo\nbar")
	e.SetCursor(Position{Row: 1, Col: 0})

	require.NoError(t, e.HandleGesture(Press(KeyBackspace, ModNone)))
	require.Equal(t, "foobar", e.Text())
	require.Equal(t, Position{Row: 0, Col: 3}, e.Cursor().Position)
}

func TestEditor_Backspace_AtStartOfBufferIsNoop(t *testing.T) {
	e := newTestEditor("abc")
	err := e.HandleGesture(Press(KeyBackspace, ModNone))
	require.True(t, errors.Is(err, ErrNoop))
	require.True(t, errors.Is(err, ErrStartOfBuffer))
	require.Equal(t, "abc", e.Text())
}

func TestEditor_Tab_MultilineSelection_IndentsAllRows(t *testing.T) {
	e := newTestEditor("a\nb\nc")
	e.SetSelection(Position{Row: 0, Col: 0}, Position{Row: 2, Col: 1})

	require.NoError(t, e.HandleGesture(Press(KeyTab, ModNone)))
	require.Equal(t, "    a\n    b\n    c", e.Text())
	require.Equal(t, 1, e.UndoLen(), "grouped as one transaction")
}

func TestEditor_UndoRedo_RoundTrips(t *testing.T) {
	e := newTestEditor("")
	require.NoError(t, e.HandleGesture(Char('a')))
	require.NoError(t, e.HandleGesture(Char('b')))
	require.Equal(t, "ab", e.Text())

	require.NoError(t, e.Undo())
	require.Equal(t, "", e.Text())
	require.Equal(t, 1, e.RedoLen())

	require.NoError(t, e.Redo())
	require.Equal(t, "ab", e.Text())
}

func TestEditor_Undo_EmptyStackIsNoop(t *testing.T) {
	e := newTestEditor("x")
	err := e.Undo()
	require.True(t, errors.Is(err, ErrNoop))
	require.True(t, errors.Is(err, ErrEmptyStack))
}

func TestEditor_HandleGesture_RepeatCount(t *testing.T) {
	e := newTestEditor("")
	g := Char('x')
	g.RepeatCount = 3
	require.NoError(t, e.HandleGesture(g))
	require.Equal(t, "xxx", e.Text())
}

func TestEditor_HandleGesture_NegativeRepeatCountPanics(t *testing.T) {
	e := newTestEditor("")
	g := Char('x')
	g.RepeatCount = -1
	require.Panics(t, func() { e.HandleGesture(g) })
}

func TestEditor_SetViewportRows_RefollowsCursor(t *testing.T) {
	e := newTestEditor("a\nb\nc\nd\ne")
	e.SetCursor(Position{Row: 4, Col: 0})
	require.Equal(t, 2, e.Viewport().Start)

	e.SetViewportRows(2)
	require.Equal(t, 2, e.Viewport().Rows)
	require.Equal(t, 3, e.Viewport().Start)
}

func TestEditor_SetText_ResetsStateAndHistory(t *testing.T) {
	e := newTestEditor("abc")
	require.NoError(t, e.HandleGesture(Char('x')))
	require.Equal(t, 1, e.UndoLen())

	e.SetText("new text")
	require.Equal(t, "new text", e.Text())
	require.Equal(t, Position{}, e.Cursor().Position)
	require.Equal(t, 0, e.UndoLen())
	require.Equal(t, 0, e.RedoLen())
}

// TestEditor_UndoRedo_AlwaysRestoresOriginalText checks the universal
// invariant that undoing every recorded transaction always returns the
// buffer to its starting contents, for randomized edit sequences.
func TestEditor_UndoRedo_AlwaysRestoresOriginalText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := rapid.StringMatching(`[a-z]{0,4}(\n[a-z]{0,4}){0,3}`).Draw(t, "text")
		e := newTestEditor(original)

		n := rapid.IntRange(0, 8).Draw(t, "ops")
		for i := 0; i < n; i++ {
			ch := rapid.StringMatching(`[a-z]`).Draw(t, "ch")[0]
			e.HandleGesture(Char(rune(ch)))
		}
		// Transactions may be coalesced, so undo until the stack is
		// empty rather than once per edit.
		for e.Undo() == nil {
		}
		require.Equal(t, original, e.Text())
	})
}

// TestEditor_CursorAlwaysWithinBounds checks that after any sequence of
// motion gestures the cursor position is always a valid position inside
// the buffer.
func TestEditor_CursorAlwaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,5}`), 1, 4).Draw(t, "lines")
		text := lines[0]
		for _, l := range lines[1:] {
			text += "\n" + l
		}
		e := newTestEditor(text)

		keys := []Key{KeyLeft, KeyRight, KeyUp, KeyDown}
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			k := keys[rapid.IntRange(0, len(keys)-1).Draw(t, "key")]
			_ = e.HandleGesture(Press(k, ModNone))

			pos := e.Cursor().Position
			require.GreaterOrEqual(t, pos.Row, 0)
			require.Less(t, pos.Row, e.model.LineCount())
			require.GreaterOrEqual(t, pos.Col, 0)
			require.LessOrEqual(t, pos.Col, e.model.LineLen(pos.Row))
		}
	})
}
