//go:build linux

package glfw

// Shared library names probed at load time.
var (
	glfwLibNames = []string{"libglfw.so.3", "libglfw.so"}
	glLibNames   = []string{"libGL.so.1", "libGL.so"}
)
