package line

import (
	"cmp"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a packed 0xRRGGBB stroke color.
type Color uint32

// DefaultColor is the stroke color used when none is configured.
var DefaultColor = FromColor(colornames.White)

// RGB returns the red, green and blue components in [0, 1].
func (c Color) RGB() (r, g, b float64) {
	return float64(c>>16&0xff) / 255,
		float64(c>>8&0xff) / 255,
		float64(c&0xff) / 255
}

// RGBA implements color.Color as an opaque color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}.RGBA()
}

// Premultiplied returns the components premultiplied by alpha, in the
// order r, g, b, a.
func (c Color) Premultiplied(alpha float64) [4]float64 {
	r, g, b := c.RGB()
	alpha = clamp(alpha, 0, 1)
	return [4]float64{r * alpha, g * alpha, b * alpha, alpha}
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c&0xffffff))
}

// FromColor packs a standard color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}

// ParseColor parses a hex color.
// Supports formats "RGB" and "RRGGBB", with or without a leading '#'.
func ParseColor(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v uint32
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, fmt.Errorf("line: invalid color %q", hex)
		}
		v = v<<4 | d
	}

	switch len(hex) {
	case 3:
		r, g, b := v>>8&0xf, v>>4&0xf, v&0xf
		return Color(r*17<<16 | g*17<<8 | b*17), nil
	case 6:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("line: invalid color %q", hex)
	}
}

// hexDigit is a helper for hex parsing
func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}

// clamp restricts value to [lo, hi].
func clamp[T cmp.Ordered](value, lo, hi T) T {
	return min(max(value, lo), hi)
}
