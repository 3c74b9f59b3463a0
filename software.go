package qd

import "github.com/qdgfx/qd/internal/raster"

// SoftwareDriver is a CPU scanline rasterizer targeting a Pixmap.
// It is the default driver used by NewCanvas.
type SoftwareDriver struct {
	pixmap *Pixmap
}

// NewSoftwareDriver creates a software driver rendering into pm.
func NewSoftwareDriver(pm *Pixmap) *SoftwareDriver {
	return &SoftwareDriver{pixmap: pm}
}

// Pixmap returns the driver's render target.
func (d *SoftwareDriver) Pixmap() *Pixmap {
	return d.pixmap
}

// target adapts the pixmap to the raster.Target interface with a color
// bound for the duration of one draw call. Drawing coordinates are
// y-up; the flip into the pixmap's top-down rows happens in deviceY.
type target struct {
	pixmap *Pixmap
	color  Color
}

func (t target) Width() int  { return t.pixmap.Width() }
func (t target) Height() int { return t.pixmap.Height() }
func (t target) Set(x, y int) {
	t.pixmap.SetPixel(x, y, t.color)
}

// deviceY maps a y-up drawing coordinate into top-down device space.
func (d *SoftwareDriver) deviceY(y float64) float64 {
	return float64(d.pixmap.Height()) - y
}

func (d *SoftwareDriver) devicePt(p Point) raster.Pt {
	return raster.Pt{X: p.X, Y: d.deviceY(p.Y)}
}

// Clear implements Driver.
func (d *SoftwareDriver) Clear(c Color) {
	d.pixmap.Clear(c)
}

// FillPolygon implements Driver. The fan is rasterized one triangle at
// a time, matching the hub-plus-rim-pair topology.
func (d *SoftwareDriver) FillPolygon(fan []Point, c Color) {
	if len(fan) < 3 {
		return
	}
	pts := make([]raster.Pt, len(fan))
	for i, p := range fan {
		pts[i] = d.devicePt(p)
	}
	raster.FillTriangleFan(target{d.pixmap, c}, pts)
}

// FillRect implements Driver. (x, y) is the bottom-left corner in the
// y-up drawing space.
func (d *SoftwareDriver) FillRect(x, y, w, h float64, c Color) {
	raster.FillRect(target{d.pixmap, c}, x, d.deviceY(y+h), w, h)
}

// DrawPoints implements Driver. Smooth points become discs, others
// size x size squares centered on the point.
func (d *SoftwareDriver) DrawPoints(pts []Point, size float64, c Color, smooth bool) {
	if size < 1 {
		size = 1
	}
	t := target{d.pixmap, c}
	for _, p := range pts {
		dp := d.devicePt(p)
		if smooth {
			raster.FillDisc(t, dp.X, dp.Y, size/2)
		} else {
			raster.FillRect(t, dp.X-size/2, dp.Y-size/2, size, size)
		}
	}
}

// DrawLines implements Driver. Widths at or below one pixel take the
// hairline path; wider lines are filled as quads around each segment.
// The smooth flag is accepted but the software driver does not
// anti-alias.
func (d *SoftwareDriver) DrawLines(segs []Point, width float64, c Color, smooth bool) {
	_ = smooth
	t := target{d.pixmap, c}
	for i := 0; i+1 < len(segs); i += 2 {
		a := d.devicePt(segs[i])
		b := d.devicePt(segs[i+1])
		if width <= 1 {
			raster.Hairline(t, a.X, a.Y, b.X, b.Y)
			continue
		}
		quad := raster.QuadAround(a.X, a.Y, b.X, b.Y, width)
		raster.FillConvex(t, quad[:])
	}
}

// Flush implements Driver. The software driver renders synchronously,
// so there is nothing to wait for.
func (d *SoftwareDriver) Flush() error {
	return nil
}

// Close implements Driver.
func (d *SoftwareDriver) Close() error {
	return nil
}

// Ensure interface compliance at compile time.
var (
	_ Driver         = (*SoftwareDriver)(nil)
	_ PixmapProvider = (*SoftwareDriver)(nil)
)
