//go:build linux || darwin

package glfw

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/qdgfx/qd"
	"github.com/qdgfx/qd/window"
)

// Provider is the provider name registered by this package.
const Provider = "glfw"

// GLFW constants (subset of GLFW/glfw3.h).
const (
	glfwTrue  = 1
	glfwFalse = 0
	glfwPress = 1

	glfwResizable = 0x00020003

	glfwKeySpace  = 32
	glfwKeyA      = 65
	glfwKeyEscape = 256
	glfwKeyEnter  = 257
	glfwKeyRight  = 262
	glfwKeyLeft   = 263
	glfwKeyDown   = 264
	glfwKeyUp     = 265
)

// Legacy OpenGL constants (subset of GL/gl.h).
const (
	glModelview  = 0x1700
	glProjection = 0x1701

	glColorBufferBit = 0x00004000

	glRGBA         = 0x1908
	glUnsignedByte = 0x1401
)

var (
	loadOnce sync.Once
	loadErr  error

	// GLFW functions.
	glfwInit                 func() int32
	glfwTerminate            func()
	glfwWindowHint           func(hint, value int32)
	glfwCreateWindow         func(width, height int32, title string, monitor, share uintptr) uintptr
	glfwDestroyWindow        func(win uintptr)
	glfwMakeContextCurrent   func(win uintptr)
	glfwSwapInterval         func(interval int32)
	glfwSwapBuffers          func(win uintptr)
	glfwPollEvents           func()
	glfwWindowShouldClose    func(win uintptr) int32
	glfwSetWindowShouldClose func(win uintptr, value int32)
	glfwGetKey               func(win uintptr, key int32) int32
	glfwGetTime              func() float64
	glfwGetFramebufferSize   func(win uintptr, width, height *int32)

	// Legacy GL functions for pixel presentation.
	glViewport     func(x, y, width, height int32)
	glMatrixMode   func(mode uint32)
	glLoadIdentity func()
	glOrtho        func(left, right, bottom, top, near, far float64)
	glClearColor   func(r, g, b, a float32)
	glClear        func(mask uint32)
	glRasterPos2i  func(x, y int32)
	glDrawPixels   func(width, height int32, format, typ uint32, data unsafe.Pointer)
)

// dlopenFirst opens the first loadable library from names.
func dlopenFirst(names []string) (uintptr, error) {
	var lastErr error
	for _, name := range names {
		lib, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
		lastErr = err
	}
	return 0, lastErr
}

// load resolves the GLFW and GL shared libraries once.
func load() error {
	loadOnce.Do(func() {
		glfwLib, err := dlopenFirst(glfwLibNames)
		if err != nil {
			loadErr = fmt.Errorf("glfw: loading libglfw: %w", err)
			return
		}
		glLib, err := dlopenFirst(glLibNames)
		if err != nil {
			loadErr = fmt.Errorf("glfw: loading libGL: %w", err)
			return
		}

		purego.RegisterLibFunc(&glfwInit, glfwLib, "glfwInit")
		purego.RegisterLibFunc(&glfwTerminate, glfwLib, "glfwTerminate")
		purego.RegisterLibFunc(&glfwWindowHint, glfwLib, "glfwWindowHint")
		purego.RegisterLibFunc(&glfwCreateWindow, glfwLib, "glfwCreateWindow")
		purego.RegisterLibFunc(&glfwDestroyWindow, glfwLib, "glfwDestroyWindow")
		purego.RegisterLibFunc(&glfwMakeContextCurrent, glfwLib, "glfwMakeContextCurrent")
		purego.RegisterLibFunc(&glfwSwapInterval, glfwLib, "glfwSwapInterval")
		purego.RegisterLibFunc(&glfwSwapBuffers, glfwLib, "glfwSwapBuffers")
		purego.RegisterLibFunc(&glfwPollEvents, glfwLib, "glfwPollEvents")
		purego.RegisterLibFunc(&glfwWindowShouldClose, glfwLib, "glfwWindowShouldClose")
		purego.RegisterLibFunc(&glfwSetWindowShouldClose, glfwLib, "glfwSetWindowShouldClose")
		purego.RegisterLibFunc(&glfwGetKey, glfwLib, "glfwGetKey")
		purego.RegisterLibFunc(&glfwGetTime, glfwLib, "glfwGetTime")
		purego.RegisterLibFunc(&glfwGetFramebufferSize, glfwLib, "glfwGetFramebufferSize")

		purego.RegisterLibFunc(&glViewport, glLib, "glViewport")
		purego.RegisterLibFunc(&glMatrixMode, glLib, "glMatrixMode")
		purego.RegisterLibFunc(&glLoadIdentity, glLib, "glLoadIdentity")
		purego.RegisterLibFunc(&glOrtho, glLib, "glOrtho")
		purego.RegisterLibFunc(&glClearColor, glLib, "glClearColor")
		purego.RegisterLibFunc(&glClear, glLib, "glClear")
		purego.RegisterLibFunc(&glRasterPos2i, glLib, "glRasterPos2i")
		purego.RegisterLibFunc(&glDrawPixels, glLib, "glDrawPixels")

		if glfwInit() != glfwTrue {
			loadErr = fmt.Errorf("%w: glfwInit failed", window.ErrCreateFailed)
			return
		}
	})
	return loadErr
}

// keyCodes maps window keys to GLFW key codes. Letters are their
// ASCII uppercase values.
var keyCodes = map[window.Key]int32{
	window.KeyA: glfwKeyA, window.KeyB: glfwKeyA + 1, window.KeyC: glfwKeyA + 2,
	window.KeyD: glfwKeyA + 3, window.KeyE: glfwKeyA + 4, window.KeyF: glfwKeyA + 5,
	window.KeyG: glfwKeyA + 6, window.KeyH: glfwKeyA + 7, window.KeyI: glfwKeyA + 8,
	window.KeyJ: glfwKeyA + 9, window.KeyK: glfwKeyA + 10, window.KeyL: glfwKeyA + 11,
	window.KeyM: glfwKeyA + 12, window.KeyN: glfwKeyA + 13, window.KeyO: glfwKeyA + 14,
	window.KeyP: glfwKeyA + 15, window.KeyQ: glfwKeyA + 16, window.KeyR: glfwKeyA + 17,
	window.KeyS: glfwKeyA + 18, window.KeyT: glfwKeyA + 19, window.KeyU: glfwKeyA + 20,
	window.KeyV: glfwKeyA + 21, window.KeyW: glfwKeyA + 22, window.KeyX: glfwKeyA + 23,
	window.KeyY: glfwKeyA + 24, window.KeyZ: glfwKeyA + 25,

	window.KeySpace:  glfwKeySpace,
	window.KeyEnter:  glfwKeyEnter,
	window.KeyEscape: glfwKeyEscape,

	window.KeyUp:    glfwKeyUp,
	window.KeyDown:  glfwKeyDown,
	window.KeyLeft:  glfwKeyLeft,
	window.KeyRight: glfwKeyRight,
}

// Window presents a pixmap framebuffer through a GLFW window.
type Window struct {
	handle      uintptr
	framebuffer *qd.Pixmap
	width       int
	height      int

	// flipped holds the framebuffer reordered bottom-up for
	// glDrawPixels, reused across frames.
	flipped []uint8

	keys   map[window.Key]window.KeyState
	closed bool
}

// Open creates a GLFW window. The calling goroutine is locked to its
// OS thread for the lifetime of the window, as GLFW requires.
func Open(opts window.Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", window.ErrCreateFailed, opts.Width, opts.Height)
	}
	if err := load(); err != nil {
		return nil, err
	}

	runtime.LockOSThread()

	glfwWindowHint(glfwResizable, glfwFalse)
	handle := glfwCreateWindow(int32(opts.Width), int32(opts.Height), opts.Title, 0, 0)
	if handle == 0 {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: glfwCreateWindow returned null", window.ErrCreateFailed)
	}

	glfwMakeContextCurrent(handle)
	glfwSwapInterval(1)

	// Pixel-exact projection: one drawing unit per framebuffer pixel,
	// origin at the bottom-left.
	var fbW, fbH int32
	glfwGetFramebufferSize(handle, &fbW, &fbH)
	glViewport(0, 0, fbW, fbH)
	glMatrixMode(glProjection)
	glLoadIdentity()
	glOrtho(0, float64(opts.Width), 0, float64(opts.Height), -1, 1)
	glMatrixMode(glModelview)
	glLoadIdentity()

	return &Window{
		handle:      handle,
		framebuffer: qd.NewPixmap(opts.Width, opts.Height),
		width:       opts.Width,
		height:      opts.Height,
		flipped:     make([]uint8, opts.Width*opts.Height*4),
		keys:        make(map[window.Key]window.KeyState, len(keyCodes)),
	}, nil
}

// ShouldClose implements window.Window.
func (w *Window) ShouldClose() bool {
	if w.closed {
		return true
	}
	return glfwWindowShouldClose(w.handle) != 0
}

// RequestClose implements window.Window.
func (w *Window) RequestClose() {
	if w.closed {
		return
	}
	glfwSetWindowShouldClose(w.handle, glfwTrue)
}

// Poll implements window.Window. It pumps the GLFW event queue and
// snapshots key states, deriving the pressed/released edges from the
// previous frame.
func (w *Window) Poll() {
	if w.closed {
		return
	}
	glfwPollEvents()

	for key, code := range keyCodes {
		down := glfwGetKey(w.handle, code) == glfwPress
		prev := w.keys[key]
		w.keys[key] = nextKeyState(prev, down)
	}
}

// nextKeyState advances a key state machine by one frame.
func nextKeyState(prev window.KeyState, down bool) window.KeyState {
	if down {
		if prev.IsDown() {
			return window.KeyStateDown
		}
		return window.KeyStatePressed
	}
	if prev.IsDown() {
		return window.KeyStateReleased
	}
	return window.KeyStateUp
}

// Swap implements window.Window. It uploads the framebuffer and swaps
// the GL buffers.
func (w *Window) Swap() {
	if w.closed {
		return
	}

	// The pixmap stores rows top-down; glDrawPixels consumes them
	// bottom-up from the raster position.
	data := w.framebuffer.Data()
	stride := w.width * 4
	for row := 0; row < w.height; row++ {
		src := data[row*stride : (row+1)*stride]
		dst := w.flipped[(w.height-1-row)*stride:]
		copy(dst, src)
	}

	glClearColor(0, 0, 0, 1)
	glClear(glColorBufferBit)
	glRasterPos2i(0, 0)
	glDrawPixels(int32(w.width), int32(w.height), glRGBA, glUnsignedByte, unsafe.Pointer(&w.flipped[0]))
	glfwSwapBuffers(w.handle)
}

// Time implements window.Window.
func (w *Window) Time() float64 {
	return glfwGetTime()
}

// KeyState implements window.Window.
func (w *Window) KeyState(key window.Key) window.KeyState {
	return w.keys[key]
}

// Size implements window.Window.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Framebuffer implements window.Window.
func (w *Window) Framebuffer() *qd.Pixmap {
	return w.framebuffer
}

// Close implements window.Window. Close is idempotent.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	glfwDestroyWindow(w.handle)
	w.handle = 0
	runtime.UnlockOSThread()
	return nil
}

var _ window.Window = (*Window)(nil)

// available reports whether libglfw can be loaded on this system.
func available() bool {
	return load() == nil
}

func init() {
	window.Register(Provider, 100, func(opts window.Options) (window.Window, error) {
		return Open(opts)
	}, available)
}
