package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/cairo/engine"
)

// FontEngine is the capability this package needs from the engine: turning
// raw font data into a scaled font handle settable as the context's active
// font. engine.Device satisfies it.
type FontEngine interface {
	CreateScaledFont(data []byte, index int, size float64) (engine.ScaledFont, error)
}

// Source loads fonts and builds shaped layouts. One Source belongs to one
// drawing context; like the context it is not safe for concurrent use,
// except that the shaper pool below tolerates it.
type Source struct {
	fonts FontEngine

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing one across sequential layouts avoids reallocation.
	shaperPool sync.Pool
}

// New creates a text source backed by the given font engine.
func New(fonts FontEngine) *Source {
	return &Source{
		fonts: fonts,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Font pairs an engine scaled-font handle, used for rendering, with the
// parsed font the shaper measures against. Fonts are immutable; one Font
// can back any number of layouts.
type Font struct {
	scaled engine.ScaledFont
	parsed *font.Font
	size   float64
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 { return f.size }

// ScaledFont returns the engine handle for this font.
func (f *Font) ScaledFont() engine.ScaledFont { return f.scaled }

// LoadFont creates a font at the given pixel size from raw TTF or OTF
// data. The data is parsed once for shaping and handed to the engine once
// for the render-side scaled font.
func (s *Source) LoadFont(data []byte, size float64) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	scaled, err := s.fonts.CreateScaledFont(data, 0, size)
	if err != nil {
		return nil, fmt.Errorf("text: create scaled font: %w", err)
	}
	return &Font{scaled: scaled, parsed: face.Font, size: size}, nil
}
