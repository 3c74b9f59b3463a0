// Package glfw provides a window provider backed by the system GLFW
// library, loaded at runtime through purego with no cgo.
//
// Importing the package registers the provider under the name "glfw"
// at priority 100, so window.Open prefers it whenever libglfw is
// installed:
//
//	import _ "github.com/qdgfx/qd/window/glfw"
//
// Frames are presented by uploading the window's pixmap framebuffer
// with glDrawPixels over a pixel-exact orthographic projection.
package glfw
