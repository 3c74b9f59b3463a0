package qd

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer in RGBA format,
// stored top-down (row 0 is the topmost row).
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format, top-down rows).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds
// coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b := c.Bytes()
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = 0xFF
}

// GetPixel returns the color of a single pixel. Out-of-bounds
// coordinates return Black.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	i := (y*p.width + x) * 4
	return PackRGB(p.data[i+0], p.data[i+1], p.data[i+2])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r, g, b := c.Bytes()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = 0xFF
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, discarding alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.EncodePNG(f)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
