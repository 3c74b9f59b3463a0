package qd

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
}

func TestPoint_LengthDistance(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	n := Pt(0, -7).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 || n.Y >= 0 {
		t.Errorf("Normalize = %v", n)
	}

	// A zero vector stays zero rather than producing NaN.
	z := Pt(0, 0).Normalize()
	if z != Pt(0, 0) {
		t.Errorf("Normalize(zero) = %v", z)
	}
}
