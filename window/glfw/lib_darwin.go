//go:build darwin

package glfw

// Shared library names probed at load time.
var (
	glfwLibNames = []string{"libglfw.3.dylib", "libglfw.dylib"}
	glLibNames   = []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
)
