package cairo

import "image/color"

// Color is a packed 32-bit RGBA color, 0xRRGGBBAA.
type Color uint32

// Common colors.
const (
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Transparent Color = 0x00000000
)

// RGB8 creates an opaque color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xff)
}

// RGBA8 creates a color from 8-bit channels. The alpha is straight, not
// premultiplied.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return Color(r<<24 | g<<16 | b<<8 | a)
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the straight alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&^0xff | uint32(a))
}

// byteToFrac converts the low byte of a shifted packed color to a fraction
// in [0, 1].
func byteToFrac(b uint32) float64 {
	return float64(b&255) * (1.0 / 255.0)
}

// premultiply scales a color channel by a straight alpha using exact 8-bit
// fixed-point arithmetic with round-to-nearest.
func premultiply(x, a uint8) uint8 {
	y := uint32(x) * uint32(a)
	return uint8((y + (y >> 8) + 0x80) >> 8)
}
