package cairo

import (
	"image/color"
	"math"
	"testing"
)

func TestPremultiply(t *testing.T) {
	tests := []struct {
		name string
		x, a uint8
		want uint8
	}{
		{"opaque white", 255, 255, 255},
		{"zero channel", 0, 200, 0},
		{"zero alpha", 200, 0, 0},
		{"half alpha full channel", 255, 128, 128},
		{"full alpha half channel", 128, 255, 128},
		{"half half", 128, 128, 64},
		{"one one", 1, 1, 0},
		{"almost opaque", 254, 254, 253},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := premultiply(tt.x, tt.a); got != tt.want {
				t.Errorf("premultiply(%d, %d) = %d, want %d", tt.x, tt.a, got, tt.want)
			}
		})
	}
}

// The fixed-point formula rounds to nearest: the result must never differ
// from the real-valued product by more than half a step, for any input.
func TestPremultiplyRounding(t *testing.T) {
	for x := 0; x < 256; x++ {
		for a := 0; a < 256; a++ {
			exact := float64(x) * float64(a) / 255.0
			got := float64(premultiply(uint8(x), uint8(a)))
			if math.Abs(got-exact) > 0.5+1e-9 {
				t.Fatalf("premultiply(%d, %d) = %g, exact %g", x, a, got, exact)
			}
		}
	}
}

func TestByteToFrac(t *testing.T) {
	tests := []struct {
		in   uint32
		want float64
	}{
		{0, 0},
		{255, 1},
		{0xff00, 0}, // only the low byte counts
		{128, 128.0 / 255.0},
	}
	for _, tt := range tests {
		if got := byteToFrac(tt.in); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("byteToFrac(%#x) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestColorChannels(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Errorf("RGBA8 channels = %x %x %x %x", c.R(), c.G(), c.B(), c.A())
	}
	if got := RGB8(1, 2, 3).A(); got != 0xff {
		t.Errorf("RGB8 alpha = %d, want 255", got)
	}
	if got := c.WithAlpha(0xff); got != RGBA8(0x12, 0x34, 0x56, 0xff) {
		t.Errorf("WithAlpha = %08x", uint32(got))
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", RGB8(255, 0, 0)},
		{"ff0000", RGB8(255, 0, 0)},
		{"#12345678", RGBA8(0x12, 0x34, 0x56, 0x78)},
		{"#fff", White},
		{"#f00a", RGBA8(255, 0, 0, 0xaa)},
		{"#808080", RGB8(128, 128, 128)},
		{"bogus", Black},
		{"", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %08x, want %08x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	want := RGBA8(10, 20, 30, 40)
	if got != want {
		t.Errorf("FromColor = %08x, want %08x", uint32(got), uint32(want))
	}
}
