package qd

// Glyph cell geometry. Every glyph occupies an 8x8 cell; DrawText
// scales the cell by an integer size multiplier.
const (
	// GlyphRows is the number of bitmap rows per glyph.
	GlyphRows = 8

	// GlyphCols is the number of bitmap columns per glyph.
	GlyphCols = 8

	// FirstGlyph is the lowest supported character code (space).
	FirstGlyph = ' '

	// LastGlyph is the highest supported character code (tilde).
	LastGlyph = '~'
)

const glyphCount = LastGlyph - FirstGlyph + 1

// GlyphBitmap returns the 8x8 bitmap for a character and whether the
// character is in the supported printable ASCII range 32-126. Row 0 is
// the top row; the most-significant bit of each row is the leftmost
// column.
func GlyphBitmap(r rune) ([GlyphRows]byte, bool) {
	if r < FirstGlyph || r > LastGlyph {
		return [GlyphRows]byte{}, false
	}
	return glyphs[r-FirstGlyph], true
}

// Rect is an axis-aligned rectangle with its origin at the bottom-left
// corner, in the y-up drawing space.
type Rect struct {
	X, Y, W, H float64
}

// TextQuads expands a string into one filled quad per set glyph bit.
//
// (x, y) is the bottom-left corner of the first character cell. A size
// multiplier below 1 is clamped to 1. Each cell is GlyphCols*size wide
// and GlyphRows*size tall: bitmap row r (0 = top) covers the y span
// [y+(7-r)*size, y+(8-r)*size) and bitmap column b covers the x span
// [x+b*size, x+(b+1)*size), so glyphs read top-to-bottom in bitmap
// order while sitting upright in the y-up coordinate space. The cursor
// advances GlyphCols*size per character.
//
// Characters outside the supported range produce no quads but still
// advance the cursor by one cell, so surrounding text keeps its
// position. The expansion is pure: identical inputs always yield
// identical output.
func TextQuads(x, y float64, text string, size int) []Rect {
	if size < 1 {
		size = 1
	}
	s := float64(size)

	var quads []Rect
	for _, r := range text {
		bitmap, ok := GlyphBitmap(r)
		if ok {
			for row := 0; row < GlyphRows; row++ {
				bits := bitmap[row]
				if bits == 0 {
					continue
				}
				rowY := y + float64(GlyphRows-1-row)*s
				for col := 0; col < GlyphCols; col++ {
					if bits&(0x80>>col) != 0 {
						quads = append(quads, Rect{
							X: x + float64(col)*s,
							Y: rowY,
							W: s,
							H: s,
						})
					}
				}
			}
		}
		x += GlyphCols * s
	}
	return quads
}

// TextWidth returns the horizontal advance of text at the given size
// multiplier: one fixed-width cell per character, no kerning.
func TextWidth(text string, size int) float64 {
	if size < 1 {
		size = 1
	}
	n := 0
	for range text {
		n++
	}
	return float64(n * GlyphCols * size)
}
