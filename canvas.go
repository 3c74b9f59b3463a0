package qd

import (
	"errors"
	"fmt"
)

// Common canvas errors.
var (
	// ErrInvalidDimensions is returned when width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("qd: invalid dimensions")

	// ErrCanvasClosed is returned when operations are attempted on a
	// closed canvas.
	ErrCanvasClosed = errors.New("qd: canvas is closed")
)

// Canvas is the immediate-mode drawing context. It owns a Driver and
// its dimensions; nothing else is retained between draw calls. The
// caller owns the Canvas explicitly — there is no package-level
// drawing state.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	driver Driver
	closed bool
}

// NewCanvas creates a canvas with the given dimensions. Without
// options it renders through a SoftwareDriver into a fresh Pixmap;
// use WithDriver to inject another backend.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	driver := options.driver
	if driver == nil {
		pm := options.pixmap
		if pm == nil {
			pm = NewPixmap(width, height)
		}
		driver = NewSoftwareDriver(pm)
	}

	return &Canvas{
		width:  width,
		height: height,
		driver: driver,
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Driver returns the canvas's driver.
func (c *Canvas) Driver() Driver {
	return c.driver
}

// Pixmap returns the CPU-side render target, or nil when the driver
// does not expose one.
func (c *Canvas) Pixmap() *Pixmap {
	if p, ok := c.driver.(PixmapProvider); ok {
		return p.Pixmap()
	}
	return nil
}

// Clear fills the whole target with a color.
func (c *Canvas) Clear(color Color) {
	if c.closed {
		return
	}
	c.driver.Clear(color)
}

// DrawQuad draws a filled rectangle with its bottom-left corner at
// (x, y).
func (c *Canvas) DrawQuad(x, y, width, height float64, color Color) {
	if c.closed {
		return
	}
	c.driver.FillRect(x, y, width, height, color)
}

// DrawPoint draws a filled point of the given pixel size centered at
// (x, y). Use DrawCircle for anything larger than a few pixels; smooth
// rounds the point into a disc where the driver supports it.
func (c *Canvas) DrawPoint(x, y, size float64, color Color, smooth bool) {
	if c.closed {
		return
	}
	c.driver.DrawPoints([]Point{{X: x, Y: y}}, size, color, smooth)
}

// DrawLine draws a line of the given width from (x1, y1) to (x2, y2).
func (c *Canvas) DrawLine(x1, y1, x2, y2, width float64, color Color, smooth bool) {
	if c.closed {
		return
	}
	c.driver.DrawLines([]Point{{X: x1, Y: y1}, {X: x2, Y: y2}}, width, color, smooth)
}

// DrawCircle draws a filled circle as a triangle fan. 360 sides make a
// smooth circle, 6 make a hexagon. Passing sides <= 0 selects
// DefaultCircleSides; 1 or 2 clamp to MinCircleSides.
func (c *Canvas) DrawCircle(x, y, radius float64, color Color, sides int) {
	if c.closed {
		return
	}
	if sides <= 0 {
		sides = DefaultCircleSides
	}
	fan := TessellateCircle(Point{X: x, Y: y}, radius, sides)
	c.driver.FillPolygon(fan, color)
}

// DrawText draws 8x8 bitmap characters with (x, y) as the bottom-left
// of the first cell. The integer size multiplier scales each cell
// (2 gives 16x16 characters); values below 1 are clamped to 1.
// Characters outside the printable ASCII range are skipped, advancing
// the cursor by one empty cell.
func (c *Canvas) DrawText(x, y float64, text string, size int, color Color) {
	if c.closed {
		return
	}
	for _, q := range TextQuads(x, y, text, size) {
		c.driver.FillRect(q.X, q.Y, q.W, q.H, color)
	}
}

// Flush ensures all pending driver operations have reached the target.
func (c *Canvas) Flush() error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.driver.Flush()
}

// SavePNG writes the current target to a PNG file. It fails when the
// driver has no CPU-side pixmap.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	pm := c.Pixmap()
	if pm == nil {
		return errors.New("qd: driver has no pixmap to save")
	}
	if err := c.driver.Flush(); err != nil {
		return err
	}
	return pm.SavePNG(path)
}

// Close releases the driver. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.driver.Close()
}
