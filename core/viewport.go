package core

// Viewport is a window [Start, Start+Rows) into the Model. It only
// ever follows the cursor or scrolls explicitly; it holds no
// reference into the Model.
type Viewport struct {
	Start int
	Rows  int
}

// Scroll adds delta to Start, clamping the lower bound at 0. The upper
// bound is soft: Start may exceed lineCount-Rows transiently (e.g.
// right after lines are deleted); the next Follow call corrects it.
func (v *Viewport) Scroll(delta int) {
	v.Start += delta
	if v.Start < 0 {
		v.Start = 0
	}
}

// Follow applies the monotonic scroll rule: if headRow is above
// the window, Start becomes headRow; if it's at or below the window,
// Start becomes headRow-Rows+1. Scrolling never goes negative.
func (v *Viewport) Follow(headRow int) {
	if headRow < v.Start {
		v.Start = headRow
	} else if headRow >= v.Start+v.Rows {
		v.Start = headRow - v.Rows + 1
	}
	if v.Start < 0 {
		v.Start = 0
	}
}

// VisibleRange returns [Start, min(Start+Rows, lineCount)).
func (v *Viewport) VisibleRange(lineCount int) (start, end int) {
	start = v.Start
	end = v.Start + v.Rows
	if end > lineCount {
		end = lineCount
	}
	if end < start {
		end = start
	}
	return start, end
}
