// Package qd provides a minimal immediate-mode 2D drawing library for Go.
//
// # Overview
//
// qd draws filled quads, points, lines, triangle-fan circles, and 8x8
// bitmap text through a small Canvas API. There is no scene graph and no
// retained state: every call rasterizes immediately through a Driver, and
// color is an explicit per-call parameter packed as a 24-bit RGB integer.
//
// # Quick Start
//
//	import "github.com/qdgfx/qd"
//
//	cv, err := qd.NewCanvas(640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cv.Close()
//
//	cv.Clear(qd.Black)
//	cv.DrawCircle(320, 240, 100, qd.Red, 0)
//	cv.DrawText(16, 16, "HELLO", 2, qd.White)
//	cv.SavePNG("output.png")
//
// # Drivers
//
// The default driver is a CPU scanline rasterizer targeting a Pixmap.
// Alternative drivers register themselves with the backend package; import
// github.com/qdgfx/qd/backend/gpu for the GPU-backed driver.
//
// # Coordinate System
//
//   - Origin (0,0) at bottom-left, in window pixels
//   - X increases right
//   - Y increases up
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// The y-up convention matches the orthographic projection a window backend
// establishes at open time; drivers handle the flip into storage order.
//
// # Windows
//
// The window subpackage opens a real or offscreen window and presents a
// Canvas each frame. See github.com/qdgfx/qd/window.
package qd

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
