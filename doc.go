// Package cairo adapts a retained, value-oriented 2D drawing model onto a
// stateful Cairo-style rendering engine.
//
// # Overview
//
// The engine behind this package (see the engine subpackage) accumulates
// state: a current path, a current source pattern, a current transform and
// a save/restore stack. This package presents the opposite model, where
// brushes are immutable values and every draw call is self-contained, and
// does the impedance matching in between: each operation pushes exactly
// the state it needs (source, path, fill rule, stroke parameters) and
// leaves the engine's path state empty afterwards.
//
// # Quick start
//
//	eng := ... // an engine.Context from a binding, or enginetest.New()
//	rc, err := cairo.NewContext(eng)
//	if err != nil {
//		return err
//	}
//	defer rc.Close()
//
//	rc.Clear(cairo.RGB8(255, 255, 255))
//	rc.Fill(cairo.NewRect(10, 10, 90, 90), cairo.RGB8(200, 30, 30))
//	if err := rc.Finish(); err != nil {
//		return err
//	}
//
// # Error model
//
// Drawing primitives mirror the engine's deferred-error model: they are
// no-ops when the engine's sticky status flag is set, and report nothing
// at the call site. Poll Status or Finish after a batch of drawing calls.
// Operations that can fail eagerly (context construction, gradient and
// image creation, save/restore) return errors directly.
//
// # Ownership
//
// A Context exclusively owns its engine handle: constructing a second
// Context over the same handle fails with ErrBorrowConflict until the
// first is closed. This makes aliased mutation of engine state a
// construction-time impossibility rather than a runtime race.
//
// # Coordinate system
//
// Origin at the top-left, X increasing right, Y increasing down, angles in
// radians.
package cairo
