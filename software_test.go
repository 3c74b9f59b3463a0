package qd

import (
	"testing"
)

// pixelAt reads the pixel at drawing-space coordinates, where (0, 0)
// is the bottom-left of the target.
func pixelAt(pm *Pixmap, x, y int) Color {
	return pm.GetPixel(x, pm.Height()-1-y)
}

func newSoftwareCanvas(t *testing.T, w, h int) (*Canvas, *Pixmap) {
	t.Helper()
	canvas, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	t.Cleanup(func() { canvas.Close() })
	return canvas, canvas.Pixmap()
}

func TestSoftwareDriver_Clear(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 8, 8)

	canvas.Clear(Magenta)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := pm.GetPixel(x, y); got != Magenta {
				t.Fatalf("pixel (%d,%d) = %#06x, want magenta", x, y, uint32(got))
			}
		}
	}
}

func TestSoftwareDriver_FillRect(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 10, 10)
	canvas.Clear(Black)

	// A 3x2 rect with its bottom-left at drawing-space (2, 3).
	canvas.DrawQuad(2, 3, 3, 2, White)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			want := Black
			if inside {
				want = White
			}
			if got := pixelAt(pm, x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#06x, want %#06x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestSoftwareDriver_RectAtOrigin(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 4, 4)
	canvas.Clear(Black)

	canvas.DrawQuad(0, 0, 1, 1, Red)

	// Drawing-space (0, 0) is the bottom-left pix: pixmap row H-1.
	if got := pm.GetPixel(0, 3); got != Red {
		t.Errorf("bottom-left pixel = %#06x, want red", uint32(got))
	}
	if got := pm.GetPixel(0, 0); got != Black {
		t.Errorf("top-left pixel = %#06x, want black", uint32(got))
	}
}

func TestSoftwareDriver_FillCircleCoverage(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 40, 40)
	canvas.Clear(Black)

	canvas.DrawCircle(20, 20, 10, Green, 360)

	// Center must be filled, well outside must not.
	if got := pixelAt(pm, 20, 20); got != Green {
		t.Errorf("center = %#06x, want green", uint32(got))
	}
	for _, p := range [][2]int{{20, 33}, {20, 7}, {33, 20}, {7, 20}, {0, 0}} {
		if got := pixelAt(pm, p[0], p[1]); got != Black {
			t.Errorf("outside pixel (%d,%d) = %#06x, want black", p[0], p[1], uint32(got))
		}
	}

	// Interior points short of the rim on the axes.
	for _, p := range [][2]int{{20, 27}, {20, 13}, {27, 20}, {13, 20}} {
		if got := pixelAt(pm, p[0], p[1]); got != Green {
			t.Errorf("interior pixel (%d,%d) = %#06x, want green", p[0], p[1], uint32(got))
		}
	}
}

func TestSoftwareDriver_TriangleFan(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 20, 20)
	canvas.Clear(Black)

	// A square expressed as a fan around its center.
	fan := []Point{
		Pt(10, 10),
		Pt(5, 5), Pt(15, 5), Pt(15, 15), Pt(5, 15), Pt(5, 5),
	}
	canvas.Driver().FillPolygon(fan, Cyan)

	if got := pixelAt(pm, 10, 10); got != Cyan {
		t.Errorf("hub pixel = %#06x, want cyan", uint32(got))
	}
	if got := pixelAt(pm, 7, 7); got != Cyan {
		t.Errorf("interior pixel = %#06x, want cyan", uint32(got))
	}
	if got := pixelAt(pm, 2, 2); got != Black {
		t.Errorf("outside pixel = %#06x, want black", uint32(got))
	}
}

func TestSoftwareDriver_HorizontalLine(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 20, 10)
	canvas.Clear(Black)

	canvas.DrawLine(2, 5.5, 17, 5.5, 1, Yellow, false)

	for x := 3; x < 17; x++ {
		if got := pixelAt(pm, x, 5); got != Yellow {
			t.Errorf("line pixel (%d,5) = %#06x, want yellow", x, uint32(got))
		}
	}
	if got := pixelAt(pm, 10, 7); got != Black {
		t.Errorf("off-line pixel = %#06x, want black", uint32(got))
	}
}

func TestSoftwareDriver_ThickLine(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 20, 20)
	canvas.Clear(Black)

	canvas.DrawLine(4, 10, 16, 10, 4, Red, false)

	// Width 4 spans two pixels each side of the center line.
	for _, y := range []int{9, 10} {
		if got := pixelAt(pm, 10, y); got != Red {
			t.Errorf("thick line pixel (10,%d) = %#06x, want red", y, uint32(got))
		}
	}
	if got := pixelAt(pm, 10, 14); got != Black {
		t.Errorf("pixel above thick line = %#06x, want black", uint32(got))
	}
}

func TestSoftwareDriver_Points(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 16, 16)
	canvas.Clear(Black)

	canvas.DrawPoint(4.5, 4.5, 1, White, false)
	canvas.DrawPoint(10, 10, 4, Blue, true)

	if got := pixelAt(pm, 4, 4); got != White {
		t.Errorf("point pixel = %#06x, want white", uint32(got))
	}
	if got := pixelAt(pm, 10, 10); got != Blue {
		t.Errorf("disc center = %#06x, want blue", uint32(got))
	}
	if got := pixelAt(pm, 13, 13); got != Black {
		t.Errorf("disc corner overreach = %#06x, want black", uint32(got))
	}
}

func TestSoftwareDriver_ClipsOutOfBounds(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 8, 8)
	canvas.Clear(Black)

	// Shapes straddling and beyond the edges must not panic.
	canvas.DrawQuad(-4, -4, 20, 2, Red)
	canvas.DrawCircle(0, 0, 6, Green, 12)
	canvas.DrawLine(-5, 4.5, 12, 4.5, 1, Blue, false)
	canvas.DrawText(-3, 6, "EDGE", 1, White)

	if got := pixelAt(pm, 0, 4); got != Blue {
		t.Errorf("clipped line pixel = %#06x, want blue", uint32(got))
	}
}

func TestSoftwareDriver_TextMarksPixels(t *testing.T) {
	canvas, pm := newSoftwareCanvas(t, 16, 16)
	canvas.Clear(Black)

	canvas.DrawText(0, 0, "#", 1, White)

	lit := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if pixelAt(pm, x, y) == White {
				lit++
			}
		}
	}

	bitmap, _ := GlyphBitmap('#')
	want := 0
	for _, bits := range bitmap {
		for col := 0; col < GlyphCols; col++ {
			if bits&(0x80>>col) != 0 {
				want++
			}
		}
	}

	if lit != want {
		t.Errorf("lit pixels = %d, want %d", lit, want)
	}
}
