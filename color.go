package vg

import (
	"fmt"
	"image/color"
)

// Color is a non-premultiplied (r, g, b, a) color with components in
// [0, 1], the layout of the engine's color parameters.
type Color [4]float32

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		float32(n.R) / 255,
		float32(n.G) / 255,
		float32(n.B) / 255,
		float32(n.A) / 255,
	}
}

// NRGBA converts c to an 8-bit color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

// Packed returns c as 0xRRGGBBAA, the form taken by the engine's
// set color call.
func (c Color) Packed() uint32 {
	n := c.NRGBA()
	return uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A)
}

// ColorFromPacked unpacks a 0xRRGGBBAA value.
func ColorFromPacked(rgba uint32) Color {
	return FromColor(color.NRGBA{
		R: uint8(rgba >> 24),
		G: uint8(rgba >> 16),
		B: uint8(rgba >> 8),
		A: uint8(rgba),
	})
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'.
func Hex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint32
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, ok := parseHex(hex[i : i+1])
			if !ok {
				return Color{}, fmt.Errorf("vg: invalid hex color %q", hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			d, ok := parseHex(hex[i : i+2])
			if !ok {
				return Color{}, fmt.Errorf("vg: invalid hex color %q", hex)
			}
			v[i/2] = d
		}
	default:
		return Color{}, fmt.Errorf("vg: invalid hex color %q", hex)
	}

	return Color{
		float32(v[0]) / 255,
		float32(v[1]) / 255,
		float32(v[2]) / 255,
		float32(v[3]) / 255,
	}, nil
}

func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// to8 scales a [0, 1] component to [0, 255], clamping out of range values.
func to8(x float32) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = Color{0, 0, 0, 0}
)
