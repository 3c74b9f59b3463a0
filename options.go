package qd

// canvasOptions holds construction-time settings for a Canvas.
type canvasOptions struct {
	driver Driver
	pixmap *Pixmap
}

func defaultOptions() canvasOptions {
	return canvasOptions{}
}

// CanvasOption configures a Canvas at construction time.
type CanvasOption func(*canvasOptions)

// WithDriver renders through the given driver instead of the default
// software driver.
func WithDriver(d Driver) CanvasOption {
	return func(o *canvasOptions) {
		o.driver = d
	}
}

// WithPixmap makes the default software driver render into an existing
// pixmap instead of allocating one. Ignored when WithDriver is also
// given.
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}
