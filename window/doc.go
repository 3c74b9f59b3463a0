// Package window opens presentation surfaces for qd canvases.
//
// A Window owns a pixmap framebuffer; callers draw into it (usually
// through a qd.Canvas sharing the same pixmap) and call Swap to
// present the frame. Providers register with a name and priority:
// the GLFW provider (window/glfw) presents through a real OS window,
// and the built-in offscreen provider renders headlessly for tests
// and batch output.
//
//	w, err := window.Open("demo", 800, 600)
//	if err != nil { ... }
//	defer w.Close()
//
//	canvas, _ := qd.NewCanvas(800, 600, qd.WithPixmap(w.Framebuffer()))
//	for !w.ShouldClose() {
//	    w.Poll()
//	    canvas.Clear(qd.Black)
//	    // draw...
//	    w.Swap()
//	}
package window
