package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/cairo/engine"
)

// Layout is a shaped, measured run of text ready for drawing. It is
// immutable; the drawing context reads the font handle and the string and
// issues a single text-show call.
type Layout struct {
	font   *Font
	text   string
	width  float64
	glyphs []shaping.Glyph
}

// Text returns the renderable string.
func (l *Layout) Text() string { return l.text }

// Width returns the total advance width of the shaped run, in pixels.
func (l *Layout) Width() float64 { return l.width }

// Font returns the layout's font.
func (l *Layout) Font() *Font { return l.font }

// ScaledFont returns the ready-to-set engine font handle.
func (l *Layout) ScaledFont() engine.ScaledFont { return l.font.scaled }

// GlyphCount returns the number of glyphs in the shaped run. Ligatures
// and complex-script shaping make this differ from the rune count.
func (l *Layout) GlyphCount() int { return len(l.glyphs) }

// NewLayout shapes a string with the given font and measures its advance
// width. The base direction is detected from the text; right-to-left
// paragraphs shape right-to-left.
func (s *Source) NewLayout(f *Font, str string) (*Layout, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	layout := &Layout{font: f, text: str}
	if str == "" {
		return layout, nil
	}

	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(str),
		Face:      font.NewFace(f.parsed),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	s.shaperPool.Put(shaper)

	layout.glyphs = output.Glyphs
	layout.width = fixedToFloat(output.Advance)
	if layout.width < 0 {
		layout.width = -layout.width
	}
	return layout, nil
}

// baseDirection detects the paragraph's base direction with the Unicode
// bidi algorithm.
func baseDirection(str string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(str); err != nil {
		return di.DirectionLTR
	}
	if _, err := p.Order(); err != nil {
		return di.DirectionLTR
	}
	if p.IsLeftToRight() {
		return di.DirectionLTR
	}
	return di.DirectionRTL
}

// detectScript picks the script of the first non-space rune, defaulting to
// Latin for whitespace-only text.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6 (6 fractional
// bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
