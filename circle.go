package qd

import "math"

const (
	// DefaultCircleSides is the side count that produces a visually
	// smooth circle, used when a caller passes sides <= 0.
	DefaultCircleSides = 360

	// MinCircleSides is the smallest side count the tessellator
	// accepts. Requests below it are clamped, so the degenerate
	// one- and two-sided fans never occur.
	MinCircleSides = 3
)

// TessellateCircle converts a center, radius, and side count into a
// triangle-fan vertex list approximating a filled circle, or a regular
// polygon for small side counts.
//
// The result holds sides+2 vertices: vertex 0 is the hub (the center),
// followed by sides+1 rim vertices sampled at equal angular steps of
// 2*pi/sides starting at index 1. The final rim vertex lands on the same
// angle as the first, closing the fan. Consecutive rim vertices plus the
// hub form each filled triangle.
//
// A side count below MinCircleSides is clamped to MinCircleSides.
// Radius zero or negative collapses the rim onto or around the hub;
// it is degenerate but not rejected.
//
// Tessellation is O(sides) and regenerated on every call; nothing is
// cached between invocations, so identical inputs always produce
// identical output.
func TessellateCircle(center Point, radius float64, sides int) []Point {
	if sides < MinCircleSides {
		sides = MinCircleSides
	}

	verts := make([]Point, 0, sides+2)
	verts = append(verts, center)

	step := 2 * math.Pi / float64(sides)
	for i := 1; i <= sides+1; i++ {
		angle := float64(i) * step
		verts = append(verts, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}

	return verts
}
