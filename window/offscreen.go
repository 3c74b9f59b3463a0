package window

import (
	"fmt"

	"github.com/qdgfx/qd"
)

// ProviderOffscreen is the headless provider name. Always available.
const ProviderOffscreen = "offscreen"

// offscreenFrameTime advances the clock per Swap, simulating a 60 Hz
// display.
const offscreenFrameTime = 1.0 / 60.0

// Offscreen is a headless window. Frames render into its pixmap and
// Swap only advances the simulated clock, which makes it usable for
// tests, golden-image generation and batch rendering.
type Offscreen struct {
	framebuffer *qd.Pixmap
	width       int
	height      int

	now         float64
	shouldClose bool
	closed      bool

	keys [keyCount]KeyState
}

// NewOffscreen creates a headless window with the given framebuffer
// dimensions.
func NewOffscreen(width, height int) (*Offscreen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrCreateFailed, width, height)
	}
	return &Offscreen{
		framebuffer: qd.NewPixmap(width, height),
		width:       width,
		height:      height,
	}, nil
}

// ShouldClose implements Window.
func (w *Offscreen) ShouldClose() bool {
	return w.shouldClose || w.closed
}

// RequestClose implements Window.
func (w *Offscreen) RequestClose() {
	w.shouldClose = true
}

// Poll implements Window. It settles edge key states: Pressed becomes
// Down and Released becomes Up, the same way a real event pump reports
// a key held across frames.
func (w *Offscreen) Poll() {
	for i := range w.keys {
		switch w.keys[i] {
		case KeyStatePressed:
			w.keys[i] = KeyStateDown
		case KeyStateReleased:
			w.keys[i] = KeyStateUp
		}
	}
}

// Swap implements Window. It advances the simulated clock by one
// frame.
func (w *Offscreen) Swap() {
	w.now += offscreenFrameTime
}

// Time implements Window.
func (w *Offscreen) Time() float64 {
	return w.now
}

// KeyState implements Window.
func (w *Offscreen) KeyState(key Key) KeyState {
	if key < 0 || key >= keyCount {
		return KeyStateUp
	}
	return w.keys[key]
}

// Size implements Window.
func (w *Offscreen) Size() (int, int) {
	return w.width, w.height
}

// Framebuffer implements Window.
func (w *Offscreen) Framebuffer() *qd.Pixmap {
	return w.framebuffer
}

// Close implements Window. Close is idempotent.
func (w *Offscreen) Close() error {
	w.closed = true
	return nil
}

// SetKeyState injects a key state for the next frame. Tests use it to
// script input sequences.
func (w *Offscreen) SetKeyState(key Key, state KeyState) {
	if key < 0 || key >= keyCount {
		return
	}
	w.keys[key] = state
}

var _ Window = (*Offscreen)(nil)

func init() {
	Register(ProviderOffscreen, 10, func(opts Options) (Window, error) {
		return NewOffscreen(opts.Width, opts.Height)
	}, nil)
}
