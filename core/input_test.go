package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslate_CharNoSelection_Inserts(t *testing.T) {
	op := Translate(Char('x'), Context{})
	require.Equal(t, InsertOp{Text: "x", Kind: KindInsertText}, op)
}

func TestTranslate_CharWithSelection_Replaces(t *testing.T) {
	op := Translate(Char('x'), Context{HasSelection: true})
	require.Equal(t, ReplaceOp{Text: "x"}, op)
}

func TestTranslate_Enter_SplitsOrReplaces(t *testing.T) {
	require.Equal(t, InsertOp{Text: "\n", Kind: KindSplitLine}, Translate(Press(KeyEnter, ModNone), Context{}))
	require.Equal(t, ReplaceOp{Text: "\n"}, Translate(Press(KeyEnter, ModNone), Context{HasSelection: true}))
}

func TestTranslate_Backspace_AlwaysBackspaceOp(t *testing.T) {
	require.Equal(t, BackspaceOp{}, Translate(Press(KeyBackspace, ModNone), Context{}))
	require.Equal(t, BackspaceOp{}, Translate(Press(KeyBackspace, ModNone), Context{HasSelection: true}))
}

func TestTranslate_ShiftTab_AlwaysUnindent(t *testing.T) {
	op := Translate(Press(KeyTab, ModShift), Context{})
	require.Equal(t, UnindentOp{}, op)

	op = Translate(Press(KeyTab, ModShift), Context{HasSelection: true, SelectionMultiline: true})
	require.Equal(t, UnindentOp{}, op)
}

func TestTranslate_Tab_MultilineSelection_Indents(t *testing.T) {
	op := Translate(Press(KeyTab, ModNone), Context{HasSelection: true, SelectionMultiline: true, Spaces: 4})
	require.Equal(t, IndentOp{}, op)
}

func TestTranslate_Tab_NoSelection_InsertsSpaces(t *testing.T) {
	op := Translate(Press(KeyTab, ModNone), Context{Spaces: 2, TabInsertsSpaces: true})
	require.Equal(t, InsertOp{Text: "  ", Kind: KindInsertText}, op)
}

func TestTranslate_Tab_NoSelection_InsertsLiteralTabWhenConfigured(t *testing.T) {
	op := Translate(Press(KeyTab, ModNone), Context{TabInsertsSpaces: false})
	require.Equal(t, InsertOp{Text: "\t", Kind: KindInsertText}, op)
}

func TestTranslate_Tab_SingleLineSelection_ReplacesWithSpaces(t *testing.T) {
	op := Translate(Press(KeyTab, ModNone), Context{HasSelection: true, SelectionMultiline: false, Spaces: 4, TabInsertsSpaces: true})
	require.Equal(t, ReplaceOp{Text: "    "}, op)
}

func TestTranslate_Left_PlainMovesCursor(t *testing.T) {
	op := Translate(Press(KeyLeft, ModNone), Context{})
	require.Equal(t, MoveOp{Motion: MotionLeft}, op)
}

func TestTranslate_Left_WithSelectionNoShift_Collapses(t *testing.T) {
	op := Translate(Press(KeyLeft, ModNone), Context{HasSelection: true})
	require.Equal(t, CollapseOp{ToStart: true}, op)
}

func TestTranslate_Right_WithSelectionNoShift_CollapsesToEnd(t *testing.T) {
	op := Translate(Press(KeyRight, ModNone), Context{HasSelection: true})
	require.Equal(t, CollapseOp{ToStart: false}, op)
}

func TestTranslate_ShiftLeft_Extends(t *testing.T) {
	op := Translate(Press(KeyLeft, ModShift), Context{HasSelection: true})
	require.Equal(t, ExtendOp{Motion: MotionLeft}, op)
}

func TestTranslate_MetaLeft_MovesToLineStart(t *testing.T) {
	op := Translate(Press(KeyLeft, ModMeta), Context{})
	require.Equal(t, MoveOp{Motion: MotionLineStart}, op)
}

func TestTranslate_MetaShiftRight_ExtendsToLineEnd(t *testing.T) {
	op := Translate(Press(KeyRight, ModMeta|ModShift), Context{})
	require.Equal(t, ExtendOp{Motion: MotionLineEnd}, op)
}

func TestTranslate_AltLeft_MovesWordBackward(t *testing.T) {
	op := Translate(Press(KeyLeft, ModAlt), Context{})
	require.Equal(t, MoveOp{Motion: MotionWordBackward}, op)
}

func TestTranslate_AltShiftRight_ExtendsWordForward(t *testing.T) {
	op := Translate(Press(KeyRight, ModAlt|ModShift), Context{})
	require.Equal(t, ExtendOp{Motion: MotionWordForward}, op)
}

func TestTranslate_UpDown_MoveOrExtend(t *testing.T) {
	require.Equal(t, MoveOp{Motion: MotionUp}, Translate(Press(KeyUp, ModNone), Context{}))
	require.Equal(t, ExtendOp{Motion: MotionDown}, Translate(Press(KeyDown, ModShift), Context{}))
}

func TestTypeText_OneGesturePerRune(t *testing.T) {
	gs := TypeText("abc")
	require.Len(t, gs, 3)
	require.Equal(t, 'a', gs[0].Rune)
	require.Equal(t, 'b', gs[1].Rune)
	require.Equal(t, 'c', gs[2].Rune)
	for _, g := range gs {
		require.Equal(t, KeyChar, g.Key)
		require.Equal(t, 1, g.RepeatCount)
	}
}
