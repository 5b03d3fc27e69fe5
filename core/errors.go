package core

import "errors"

// ErrNoop marks a user-gesture no-op: a motion or edit request
// that would move past document bounds. Callers can test for it with
// errors.Is; the editor's visible state is guaranteed unchanged when it
// is returned.
var ErrNoop = errors.New("gesture had no effect")

// Sentinels wrapped by ErrNoop-returning paths, kept distinct so a host
// can log *why* a gesture was a no-op without string matching.
var (
	ErrStartOfBuffer = errors.New("start of buffer")
	ErrEndOfBuffer   = errors.New("end of buffer")
	ErrStartOfLine   = errors.New("start of line")
	ErrEndOfLine     = errors.New("end of line")
	ErrEmptyStack    = errors.New("history stack empty")
)

// PreconditionError reports a programmer error: an invariant the caller
// was responsible for upholding (valid positions, balanced history
// groups, a non-negative repeat count) was violated. These are never
// recovered by the core; Editor.HandleGesture and the Model/History primitives
// panic with a PreconditionError rather than return one, since there is
// no well-defined state to hand back to the caller.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return "lineeditor: precondition violated in " + e.Op + ": " + e.Msg
}

func precondition(op, msg string) {
	panic(&PreconditionError{Op: op, Msg: msg})
}
