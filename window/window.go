package window

import (
	"github.com/qdgfx/qd"
)

// Window is a presentation surface with keyboard input and a frame
// clock. Implementations are driven from a single goroutine: Poll,
// Swap and KeyState must all be called from the thread that opened
// the window.
type Window interface {
	// ShouldClose reports whether the user or the program requested
	// that the window close.
	ShouldClose() bool

	// RequestClose marks the window for closing. ShouldClose returns
	// true afterwards; resources are released by Close.
	RequestClose()

	// Poll processes pending window and input events.
	Poll()

	// Swap presents the framebuffer.
	Swap()

	// Time returns seconds elapsed since the window opened.
	Time() float64

	// KeyState returns the current state of a key.
	KeyState(key Key) KeyState

	// Size returns the framebuffer dimensions in pixels.
	Size() (width, height int)

	// Framebuffer returns the pixmap presented by Swap. Drawing into
	// it between Poll and Swap composes the next frame.
	Framebuffer() *qd.Pixmap

	// Close destroys the window and releases its resources.
	Close() error
}

// Options configures window creation.
type Options struct {
	// Title is the window title where the provider shows one.
	Title string

	// Width and Height are the framebuffer dimensions in pixels.
	Width, Height int

	// Provider selects a specific provider by name; empty picks the
	// best available.
	Provider string
}

// Open creates a window using the best available provider.
func Open(title string, width, height int) (Window, error) {
	return OpenWithOptions(Options{Title: title, Width: width, Height: height})
}

// OpenWithOptions creates a window from explicit options.
func OpenWithOptions(opts Options) (Window, error) {
	if opts.Provider != "" {
		return globalRegistry.OpenByName(opts.Provider, opts)
	}
	return globalRegistry.Open(opts)
}
