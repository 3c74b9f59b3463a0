package raster

import "math"

// Pt is a 2D point in device coordinates.
type Pt struct {
	X, Y float64
}

const epsilon = 1e-9

// FillConvex fills a convex polygon given by its outline vertices.
// For each scanline the span between the leftmost and rightmost edge
// crossings is filled; convexity guarantees there are at most two.
func FillConvex(t Target, pts []Pt) {
	if len(pts) < 3 {
		return
	}

	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > t.Height() {
		y1 = t.Height()
	}

	for py := y0; py < y1; py++ {
		sy := float64(py) + 0.5

		xLeft := math.Inf(1)
		xRight := math.Inf(-1)
		hit := false

		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			lo, hi := a.Y, b.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			// Half-open [lo, hi) so shared vertices count once.
			if sy < lo || sy >= hi || hi-lo < epsilon {
				continue
			}
			x := a.X + (sy-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			xLeft = math.Min(xLeft, x)
			xRight = math.Max(xRight, x)
			hit = true
		}

		if hit {
			FillSpan(t, py, xLeft, xRight)
		}
	}
}

// FillTriangleFan fills a triangle fan: fan[0] is the hub and each
// consecutive rim pair plus the hub forms one triangle. Rasterizing
// per triangle rather than as one outline keeps the hub spokes from
// perturbing scanline parity.
func FillTriangleFan(t Target, fan []Pt) {
	if len(fan) < 3 {
		return
	}
	hub := fan[0]
	tri := make([]Pt, 3)
	for i := 1; i+1 < len(fan); i++ {
		tri[0] = hub
		tri[1] = fan[i]
		tri[2] = fan[i+1]
		FillConvex(t, tri)
	}
}

// QuadAround returns the four corners of the rectangle of the given
// width centered on the segment (x0, y0)-(x1, y1), used for thick
// line rendering.
func QuadAround(x0, y0, x1, y1, width float64) [4]Pt {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length < epsilon {
		h := width / 2
		return [4]Pt{
			{x0 - h, y0 - h}, {x0 + h, y0 - h},
			{x0 + h, y0 + h}, {x0 - h, y0 + h},
		}
	}
	// Unit normal scaled to half width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	return [4]Pt{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}
}
