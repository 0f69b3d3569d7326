package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFont is returned when a layout is requested without a font.
	ErrNilFont = errors.New("text: nil font")
)
