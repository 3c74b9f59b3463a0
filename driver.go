package qd

// Driver is the interface for immediate-mode rasterizer backends.
//
// All coordinates are in the Canvas's y-up pixel space; drivers are
// responsible for mapping into their target's storage order. Color is
// an explicit parameter on every call — drivers must not retain a
// current-color register across calls.
//
// Drivers are not safe for concurrent use. All operations execute on
// the goroutine owning the target.
type Driver interface {
	// Clear fills the entire target with a color.
	Clear(c Color)

	// FillPolygon fills a triangle fan: vertex 0 is the hub and each
	// consecutive rim pair plus the hub forms one filled triangle.
	FillPolygon(fan []Point, c Color)

	// FillRect fills an axis-aligned rectangle with its bottom-left
	// corner at (x, y).
	FillRect(x, y, w, h float64, c Color)

	// DrawPoints draws filled points of the given pixel size centered
	// on each point. When smooth is set the points are drawn as discs,
	// otherwise as squares.
	DrawPoints(pts []Point, size float64, c Color, smooth bool)

	// DrawLines draws one line segment per consecutive pair of points
	// with the given width. The smooth flag requests edge smoothing on
	// backends that support it.
	DrawLines(segs []Point, width float64, c Color, smooth bool)

	// Flush ensures all pending operations have reached the target.
	// For CPU drivers this is typically a no-op.
	Flush() error

	// Close releases driver resources. Close is idempotent.
	Close() error
}

// PixmapProvider is an optional interface for drivers whose target is
// a CPU-side pixmap, allowing callers to read back or present pixels.
type PixmapProvider interface {
	Pixmap() *Pixmap
}
