package graphik

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer. Pixels are stored as packed
// Color values in row-major order, so the cell for (x, y) lives at index
// y*width + x.
type Pixmap struct {
	width  int
	height int
	pix    []Color
}

// NewPixmap creates a new pixmap with the given dimensions. All pixels
// start black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
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

// Pix returns the raw pixel data in row-major order.
func (p *Pixmap) Pix() []Color {
	return p.pix
}

// SetPixel sets the color of a single pixel. Writes outside the pixmap are
// dropped.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c
}

// GetPixel returns the color of a single pixel. Reads outside the pixmap
// return black.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	return p.pix[y*p.width+x]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// FillSpan fills the half-open pixel range [x1, x2) on row y. The range is
// clamped to the pixmap; a span with x1 >= x2 is a no-op.
func (p *Pixmap) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= p.height {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	if x1 >= x2 {
		return
	}
	base := y * p.width
	for x := x1; x < x2; x++ {
		p.pix[base+x] = c
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.pix {
		j := i * 4
		img.Pix[j+0] = c.R()
		img.Pix[j+1] = c.G()
		img.Pix[j+2] = c.B()
		img.Pix[j+3] = 0xff
	}
	return img
}

// FromImage creates a pixmap from an image. Alpha is discarded.
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

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
