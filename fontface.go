package qd

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontFace exposes the built-in 8x8 bitmap font as a
// [golang.org/x/image/font.Face], so standard tools like
// font.Drawer and font.MeasureString can use it directly.
//
// The face is monospaced: every printable ASCII glyph advances by
// 8*size pixels. The baseline sits at the bottom of the glyph cell,
// so the ascent is the full cell height and the descent is zero.
type FontFace struct {
	size  int
	masks map[rune]*image.Alpha
}

// NewFontFace creates a face rendering the built-in font at the given
// integer scale. Sizes below 1 are clamped to 1.
func NewFontFace(size int) *FontFace {
	if size < 1 {
		size = 1
	}
	return &FontFace{
		size:  size,
		masks: make(map[rune]*image.Alpha),
	}
}

// cell returns the glyph cell edge in pixels.
func (f *FontFace) cell() int {
	return GlyphCols * f.size
}

// mask returns the cached alpha mask for r, building it on first use.
// The mask is cell x cell, opaque where the bitmap has a set bit, with
// row 0 at the top as image coordinates require.
func (f *FontFace) mask(r rune) (*image.Alpha, bool) {
	if m, ok := f.masks[r]; ok {
		return m, true
	}
	bitmap, ok := GlyphBitmap(r)
	if !ok {
		return nil, false
	}

	edge := f.cell()
	m := image.NewAlpha(image.Rect(0, 0, edge, edge))
	for row := 0; row < GlyphRows; row++ {
		bits := bitmap[row]
		for col := 0; col < GlyphCols; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			for dy := 0; dy < f.size; dy++ {
				for dx := 0; dx < f.size; dx++ {
					m.SetAlpha(col*f.size+dx, row*f.size+dy, color.Alpha{A: 0xff})
				}
			}
		}
	}
	f.masks[r] = m
	return m, true
}

// Close implements font.Face. It releases the mask cache.
func (f *FontFace) Close() error {
	f.masks = make(map[rune]*image.Alpha)
	return nil
}

// Kern implements font.Face. The font is monospaced, so kerning is
// always zero.
func (f *FontFace) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics implements font.Face.
func (f *FontFace) Metrics() font.Metrics {
	edge := fixed.I(f.cell())
	return font.Metrics{
		Height:     edge,
		Ascent:     edge,
		Descent:    0,
		XHeight:    fixed.I(5 * f.size),
		CapHeight:  fixed.I(7 * f.size),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

// GlyphAdvance implements font.Face.
func (f *FontFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if r < FirstGlyph || r > LastGlyph {
		return 0, false
	}
	return fixed.I(f.cell()), true
}

// GlyphBounds implements font.Face. Bounds cover the full glyph cell
// above the baseline.
func (f *FontFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	if r < FirstGlyph || r > LastGlyph {
		return fixed.Rectangle26_6{}, 0, false
	}
	edge := f.cell()
	bounds := fixed.R(0, -edge, edge, 0)
	return bounds, fixed.I(edge), true
}

// Glyph implements font.Face.
func (f *FontFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	m, ok := f.mask(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	edge := f.cell()
	x := dot.X.Floor()
	y := dot.Y.Floor()
	dr := image.Rect(x, y-edge, x+edge, y)
	return dr, m, image.Point{}, fixed.I(edge), true
}

var _ font.Face = (*FontFace)(nil)
