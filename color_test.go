package pixelstream

import (
	"image/color"
	"testing"
)

func TestColorPackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint32
	}{
		{"black", Black, 0x000000FF},
		{"white", White, 0xFFFFFFFF},
		{"transparent", Transparent, 0x00000000},
		{"red", RGB(255, 0, 0), 0xFF0000FF},
		{"mixed", Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Pack(); got != tt.want {
				t.Errorf("Pack() = %#08x, want %#08x", got, tt.want)
			}
			if got := UnpackColor(tt.want); got != tt.c {
				t.Errorf("UnpackColor(%#08x) = %v, want %v", tt.want, got, tt.c)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#000", Black},
		{"#fff", White},
		{"f00", RGB(255, 0, 0)},
		{"#f00a", Color{R: 255, A: 0xAA}},
		{"#102030", Color{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"10203040", Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{"not-a-color", Black},
		{"", Black},
		// Invalid digits reject the whole string, not just one component.
		{"zzff00", Black},
		{"#ff00gg", Black},
		{"#0g0", Black},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorConversion(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 255}
	std := c.Color()
	if got := FromColor(std); got != c {
		t.Errorf("FromColor(Color()) = %v, want %v", got, c)
	}

	// Conversion from another color.Color implementation.
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255}); got != (Color{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("FromColor(NRGBA) = %v", got)
	}
}
