// Package raster implements CPU scanline rasterization primitives for
// the software driver: spans, rectangles, discs, hairlines, and convex
// polygon fills in top-down device coordinates.
//
// A pixel (px, py) is covered when its center (px+0.5, py+0.5) lies
// inside the shape. Coordinates arriving here are already flipped into
// device space by the caller.
package raster

import "math"

// Target receives rasterized pixels. The color is bound by the caller;
// raster only decides coverage.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Set marks a single pixel as covered. Implementations must
	// tolerate out-of-bounds coordinates.
	Set(x, y int)
}

// FillSpan fills the horizontal run of pixels on row py whose centers
// fall in [x0, x1).
func FillSpan(t Target, py int, x0, x1 float64) {
	if py < 0 || py >= t.Height() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if max := float64(t.Width()); x1 > max {
		x1 = max
	}
	start := int(math.Ceil(x0 - 0.5))
	end := int(math.Ceil(x1 - 0.5))
	if start < 0 {
		start = 0
	}
	for px := start; px < end; px++ {
		t.Set(px, py)
	}
}

// FillRect fills the axis-aligned rectangle [x, x+w) x [y, y+h).
func FillRect(t Target, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	y0 := int(math.Ceil(y - 0.5))
	y1 := int(math.Ceil(y + h - 0.5))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > t.Height() {
		y1 = t.Height()
	}
	for py := y0; py < y1; py++ {
		FillSpan(t, py, x, x+w)
	}
}

// FillDisc fills a circle of the given radius centered at (cx, cy).
func FillDisc(t Target, cx, cy, radius float64) {
	if radius <= 0 {
		return
	}
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - cy
		rem := radius*radius - dy*dy
		if rem < 0 {
			continue
		}
		half := math.Sqrt(rem)
		FillSpan(t, py, cx-half, cx+half)
	}
}

// Hairline draws a one-pixel line from (x0, y0) to (x1, y1) by DDA
// stepping along the major axis.
func Hairline(t Target, x0, y0, x1, y1 float64) {
	dx := x1 - x0
	dy := y1 - y0
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		t.Set(int(math.Floor(x0)), int(math.Floor(y0)))
		return
	}
	sx := dx / steps
	sy := dy / steps
	x, y := x0, y0
	for i := 0; i <= int(steps); i++ {
		t.Set(int(math.Floor(x)), int(math.Floor(y)))
		x += sx
		y += sy
	}
}
