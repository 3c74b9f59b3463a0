package qd

import (
	"math"
	"testing"
)

func TestTessellateCircle_VertexCount(t *testing.T) {
	tests := []struct {
		name  string
		sides int
		want  int
	}{
		{name: "triangle", sides: 3, want: 5},
		{name: "square", sides: 4, want: 6},
		{name: "hexagon", sides: 6, want: 8},
		{name: "smooth", sides: 360, want: 362},
		{name: "clamp zero", sides: 0, want: 5},
		{name: "clamp one", sides: 1, want: 5},
		{name: "clamp negative", sides: -7, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fan := TessellateCircle(Pt(10, 20), 5, tt.sides)
			if len(fan) != tt.want {
				t.Errorf("len = %d, want %d", len(fan), tt.want)
			}
		})
	}
}

func TestTessellateCircle_HubAndRim(t *testing.T) {
	center := Pt(100, 50)
	const radius = 25.0
	const sides = 16

	fan := TessellateCircle(center, radius, sides)

	if fan[0] != center {
		t.Fatalf("fan[0] = %v, want center %v", fan[0], center)
	}

	const tolerance = 1e-9
	for i, p := range fan[1:] {
		if d := p.Distance(center); math.Abs(d-radius) > tolerance {
			t.Errorf("rim[%d] distance = %v, want %v", i, d, radius)
		}
	}
}

func TestTessellateCircle_Angles(t *testing.T) {
	// With 4 sides, rim sample i sits at angle i*2*pi/4 starting
	// at i=1: (0,r), (-r,0), (0,-r), (r,0), (0,r).
	fan := TessellateCircle(Pt(0, 0), 1, 4)
	want := []Point{
		{0, 0},
		{0, 1},
		{-1, 0},
		{0, -1},
		{1, 0},
		{0, 1},
	}

	const tolerance = 1e-9
	for i := range want {
		if math.Abs(fan[i].X-want[i].X) > tolerance || math.Abs(fan[i].Y-want[i].Y) > tolerance {
			t.Errorf("fan[%d] = %v, want %v", i, fan[i], want[i])
		}
	}
}

func TestTessellateCircle_ClosingVertex(t *testing.T) {
	fan := TessellateCircle(Pt(3, 4), 7, 13)
	first, last := fan[1], fan[len(fan)-1]

	const tolerance = 1e-9
	if math.Abs(first.X-last.X) > tolerance || math.Abs(first.Y-last.Y) > tolerance {
		t.Errorf("last rim vertex %v does not close onto first %v", last, first)
	}
}

func TestTessellateCircle_DegenerateRadius(t *testing.T) {
	center := Pt(5, 5)
	fan := TessellateCircle(center, 0, 8)

	for i, p := range fan {
		if p != center {
			t.Errorf("fan[%d] = %v, want %v for zero radius", i, p, center)
		}
	}
}

func TestTessellateCircle_Deterministic(t *testing.T) {
	a := TessellateCircle(Pt(1, 2), 3, 17)
	b := TessellateCircle(Pt(1, 2), 3, 17)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tessellation not deterministic at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
