package core

// Mode holds the static per-session editor configuration.
type Mode struct {
	// Spaces is the soft-tab width used by indent/unindent and Tab
	// insertion. Must be positive; defaults to 4.
	Spaces int

	// ViewportRows is the fixed height of the Viewport.
	ViewportRows int

	// TabInsertsSpaces governs whether a plain Tab gesture inserts
	// Spaces spaces or a literal '\t' rune. Default true; an explicit
	// field rather than a hidden constant so a host can offer it as a
	// setting.
	TabInsertsSpaces bool
}

// DefaultMode returns the documented defaults: four-space soft tabs,
// a 24-row viewport, spaces-for-tab.
func DefaultMode() Mode {
	return Mode{Spaces: 4, ViewportRows: 24, TabInsertsSpaces: true}
}

func (mo Mode) normalized() Mode {
	if mo.Spaces <= 0 {
		mo.Spaces = 4
	}
	if mo.ViewportRows <= 0 {
		mo.ViewportRows = 24
	}
	return mo
}
