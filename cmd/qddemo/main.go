// Command qddemo demonstrates the qd 2D drawing library.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/qdgfx/qd"
	"github.com/qdgfx/qd/backend"
	_ "github.com/qdgfx/qd/backend/gpu"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
		driver = flag.String("driver", "", "driver name (default: highest priority available)")
	)
	flag.Parse()

	drv, err := openDriver(*driver, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create driver: %v", err)
	}

	canvas, err := qd.NewCanvas(*width, *height, qd.WithDriver(drv))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer canvas.Close()

	canvas.Clear(qd.PackRGB(20, 24, 46))

	drawShapesDemo(canvas)
	drawLinesDemo(canvas, *width, *height)
	drawTextDemo(canvas, *height)

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func openDriver(name string, width, height int) (qd.Driver, error) {
	if name != "" {
		return backend.NewByName(name, width, height)
	}
	return backend.New(width, height)
}

func drawShapesDemo(canvas *qd.Canvas) {
	// Circles at decreasing tessellation: smooth, octagon, triangle.
	canvas.DrawCircle(150, 420, 60, qd.Red, 360)
	canvas.DrawCircle(300, 420, 60, qd.Yellow, 8)
	canvas.DrawCircle(450, 420, 60, qd.Cyan, 3)

	// Quads
	canvas.DrawQuad(540, 360, 120, 120, qd.Green)
	canvas.DrawQuad(570, 390, 60, 60, qd.Magenta)

	// Points
	for i := 0; i < 10; i++ {
		x := 120 + float64(i)*56
		canvas.DrawPoint(x, 300, 6, qd.White, i%2 == 0)
	}
}

func drawLinesDemo(canvas *qd.Canvas, w, h int) {
	// Fan of lines from a common origin.
	cx, cy := float64(w)/2, 160.0
	for i := 0; i <= 16; i++ {
		angle := math.Pi * float64(i) / 16
		x := cx + 130*math.Cos(angle)
		y := cy + 130*math.Sin(angle)
		canvas.DrawLine(cx, cy, x, y, 2, qd.PackRGB(90, 160, 255), false)
	}
	canvas.DrawLine(40, 40, float64(w)-40, 40, 4, qd.Gray, false)
}

func drawTextDemo(canvas *qd.Canvas, h int) {
	canvas.DrawText(40, float64(h)-60, "QD DEMO", 4, qd.White)
	canvas.DrawText(40, float64(h)-90, "bitmap text at 8x8 cells", 2, qd.Gray)
	canvas.DrawText(40, 12, "0123456789 !?#$%&*", 1, qd.Yellow)
}
