package qd

import "image/color"

// Color is a packed 24-bit RGB color in the form 0xRRGGBB.
// Red occupies bits 16-23, green bits 8-15, blue bits 0-7; bits above
// bit 23 are ignored. There is no alpha channel: every color is opaque.
//
// Color is an immutable value decoded on each draw call; it is never
// cached as driver state.
type Color uint32

// Common colors.
const (
	Black   Color = 0x000000
	White   Color = 0xFFFFFF
	Red     Color = 0xFF0000
	Green   Color = 0x00FF00
	Blue    Color = 0x0000FF
	Yellow  Color = 0xFFFF00
	Cyan    Color = 0x00FFFF
	Magenta Color = 0xFF00FF
	Gray    Color = 0x808080
)

// RGB unpacks the color into three channels normalized to [0, 1].
// High bits beyond the 24 significant ones are silently discarded,
// so any 32-bit value is a valid input.
func (c Color) RGB() (r, g, b float64) {
	r = float64((c>>16)&0xFF) / 255
	g = float64((c>>8)&0xFF) / 255
	b = float64(c&0xFF) / 255
	return r, g, b
}

// Bytes unpacks the color into 8-bit channels.
func (c Color) Bytes() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// NRGBA converts the color to the standard library representation
// with full opacity.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// RGBA implements the color.Color interface (alpha-premultiplied
// 16-bit channels, always opaque).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// PackRGB packs three 8-bit channels into a Color.
func PackRGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromColor converts a standard color.Color to a packed Color,
// discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return PackRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Ensure at compile time that Color implements color.Color.
var _ color.Color = Color(0)
