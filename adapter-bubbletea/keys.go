package bubbleadapter

import (
	tea "github.com/charmbracelet/bubbletea"

	core "github.com/embedx/lineeditor/core"
)

// bubbleKeyToGesture translates one bubbletea key message into the
// core's platform-neutral gesture vocabulary. ok is false for keys the
// editor has no mapping for (Esc, function keys, …).
func bubbleKeyToGesture(msg tea.KeyMsg) (core.Gesture, bool) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) != 1 {
			return core.Gesture{}, false
		}
		return core.Char(msg.Runes[0]), true

	case tea.KeyEnter:
		return core.Press(core.KeyEnter, core.ModNone), true
	case tea.KeyBackspace:
		return core.Press(core.KeyBackspace, core.ModNone), true
	case tea.KeyTab:
		return core.Press(core.KeyTab, core.ModNone), true
	case tea.KeyShiftTab:
		return core.Press(core.KeyTab, core.ModShift), true

	case tea.KeyLeft:
		return core.Press(core.KeyLeft, core.ModNone), true
	case tea.KeyShiftLeft:
		return core.Press(core.KeyLeft, core.ModShift), true
	case tea.KeyCtrlLeft:
		return core.Press(core.KeyLeft, core.ModMeta), true
	case tea.KeyCtrlShiftLeft:
		return core.Press(core.KeyLeft, core.ModMeta|core.ModShift), true
	case tea.KeyAltLeft:
		return core.Press(core.KeyLeft, core.ModAlt), true
	case tea.KeyAltShiftLeft:
		return core.Press(core.KeyLeft, core.ModAlt|core.ModShift), true

	case tea.KeyRight:
		return core.Press(core.KeyRight, core.ModNone), true
	case tea.KeyShiftRight:
		return core.Press(core.KeyRight, core.ModShift), true
	case tea.KeyCtrlRight:
		return core.Press(core.KeyRight, core.ModMeta), true
	case tea.KeyCtrlShiftRight:
		return core.Press(core.KeyRight, core.ModMeta|core.ModShift), true
	case tea.KeyAltRight:
		return core.Press(core.KeyRight, core.ModAlt), true
	case tea.KeyAltShiftRight:
		return core.Press(core.KeyRight, core.ModAlt|core.ModShift), true

	case tea.KeyUp:
		return core.Press(core.KeyUp, core.ModNone), true
	case tea.KeyShiftUp:
		return core.Press(core.KeyUp, core.ModShift), true

	case tea.KeyDown:
		return core.Press(core.KeyDown, core.ModNone), true
	case tea.KeyShiftDown:
		return core.Press(core.KeyDown, core.ModShift), true

	case tea.KeyHome:
		return core.Press(core.KeyLeft, core.ModMeta), true
	case tea.KeyShiftHome:
		return core.Press(core.KeyLeft, core.ModMeta|core.ModShift), true
	case tea.KeyEnd:
		return core.Press(core.KeyRight, core.ModMeta), true
	case tea.KeyShiftEnd:
		return core.Press(core.KeyRight, core.ModMeta|core.ModShift), true
	}

	return core.Gesture{}, false
}
