package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestViewport_Follow_HeadAboveWindow(t *testing.T) {
	v := Viewport{Start: 10, Rows: 5}
	v.Follow(3)
	require.Equal(t, 3, v.Start)
}

func TestViewport_Follow_HeadAtOrBelowWindow(t *testing.T) {
	v := Viewport{Start: 0, Rows: 5}
	v.Follow(5)
	require.Equal(t, 1, v.Start)

	v2 := Viewport{Start: 0, Rows: 5}
	v2.Follow(9)
	require.Equal(t, 5, v2.Start)
}

func TestViewport_Follow_HeadWithinWindowIsNoop(t *testing.T) {
	v := Viewport{Start: 2, Rows: 5}
	v.Follow(4)
	require.Equal(t, 2, v.Start)
}

func TestViewport_Scroll_NeverNegative(t *testing.T) {
	v := Viewport{Start: 2, Rows: 5}
	v.Scroll(-10)
	require.Equal(t, 0, v.Start)
}

func TestViewport_VisibleRange_ClampsToLineCount(t *testing.T) {
	v := Viewport{Start: 8, Rows: 5}
	start, end := v.VisibleRange(10)
	require.Equal(t, 8, start)
	require.Equal(t, 10, end)
}

func TestViewport_VisibleRange_EmptyWhenStartPastLineCount(t *testing.T) {
	v := Viewport{Start: 20, Rows: 5}
	start, end := v.VisibleRange(10)
	require.Equal(t, 20, start)
	require.Equal(t, 20, end)
}

// TestViewport_Follow_NeverNegative checks the documented invariant
// that Start never goes negative, for any sequence of Follow calls.
func TestViewport_Follow_NeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 30).Draw(t, "rows")
		v := Viewport{Start: 0, Rows: rows}
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			head := rapid.IntRange(0, 100).Draw(t, "head")
			v.Follow(head)
			require.GreaterOrEqual(t, v.Start, 0)
			require.True(t, head >= v.Start && head < v.Start+v.Rows,
				"head %d not within window [%d,%d)", head, v.Start, v.Start+v.Rows)
		}
	})
}
