package cairo

import (
	"errors"

	"github.com/gogpu/cairo/engine"
)

// Sentinel errors for the cairo package.
var (
	// ErrNotSupported is returned when a caller requests a capability the
	// adapter does not provide, such as an unknown image pixel format.
	// It is the only error this package raises from its own validation;
	// everything else is relayed from the engine.
	ErrNotSupported = errors.New("cairo: not supported")

	// ErrBorrowConflict is returned when an engine resource that requires
	// exclusive access is already borrowed elsewhere: an engine context
	// already driven by another Context, or surface pixel data already
	// held by another borrower.
	ErrBorrowConflict = errors.New("cairo: resource exclusively borrowed elsewhere")
)

// StatusError wraps the engine's sticky status flag. It is returned by
// Status, Finish, Save and Restore whenever the flag is not success. The
// flag persists on the engine, so repeated polls keep returning the same
// status until the engine clears it.
type StatusError struct {
	Status engine.Status
}

func (e *StatusError) Error() string {
	return "cairo: engine status: " + e.Status.String()
}

// Is reports equality by status code, so
// errors.Is(err, &StatusError{Status: s}) works.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	return ok && t.Status == e.Status
}
