// Package text is the text-subsystem boundary of the cairo adapter.
//
// It produces shaped Layout objects that the drawing context consumes as
// opaque values: each layout carries a ready-to-set engine font handle and
// the renderable string, plus a measured width obtained by HarfBuzz
// shaping via go-text/typesetting. Rendering itself stays in the engine's
// single-call text show; this package never rasterizes glyphs.
package text
