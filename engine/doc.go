// Package engine defines the contract between the cairo adapter and the
// stateful drawing engine it drives.
//
// The interfaces here mirror the capability surface of a Cairo-style
// graphics context: stateful path construction, fill/stroke/clip with a
// selectable fill rule, source patterns (solid colors, gradients, surface
// patterns), save/restore, transform concatenation and query, a sticky
// status flag, image surfaces with an engine-chosen row stride, and the
// toy text API (scaled fonts plus a single-call text show).
//
// A binding to a real engine implements [Context] and [Device]; the
// enginetest package provides an in-memory fake for testing code built on
// this contract.
//
// Engine state is mutable and not safe for concurrent use. The adapter in
// the parent package enforces exclusive ownership of a Context; engine
// implementations do not need their own locking.
package engine
