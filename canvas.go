package graphik

import (
	"image"
	"io"

	"github.com/graphik-go/graphik/internal/raster"
)

// Canvas is the main drawing surface.
// It owns a pixmap and rasterizes shape descriptors onto it. Shapes that
// reach past the canvas edges are silently clipped.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width   int
	height  int
	pixmap  *Pixmap
	surface *pixmapSurface
}

// NewCanvas creates a new canvas with the given dimensions. All pixels
// start black. Optional CanvasOption arguments customize construction:
//
//	// Default: a fresh pixmap
//	c := graphik.NewCanvas(800, 600)
//
//	// Drawing onto an existing pixmap
//	c := graphik.NewCanvas(800, 600, graphik.WithPixmap(pm))
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// Use provided pixmap or create new one
	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	} else {
		// Centering resolves against buffer dimensions, so the canvas
		// adopts them.
		width = pixmap.Width()
		height = pixmap.Height()
	}

	return &Canvas{
		width:   width,
		height:  height,
		pixmap:  pixmap,
		surface: &pixmapSurface{pixmap: pixmap},
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Pixmap returns the canvas's pixel buffer.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the canvas's image.
func (c *Canvas) Image() image.Image {
	return c.pixmap.ToImage()
}

// Fill floods the entire canvas with a color.
func (c *Canvas) Fill(col Color) {
	c.pixmap.Clear(col)
}

// FillRect fills the rectangle described by r.
//
// When r.Center is set, the origin is recomputed in place as
// (canvas-rect)/2 per axis with truncating division. A rectangle larger
// than the canvas would push the centered origin negative; the origin is
// clamped to 0 on that axis instead.
func (c *Canvas) FillRect(r *Rect) {
	if r.Center {
		r.X0 = c.centerOrigin(c.width, r.Width)
		r.Y0 = c.centerOrigin(c.height, r.Height)
	}
	raster.FillRect(c.surface, r.X0, r.Y0, r.Width, r.Height, uint32(r.Color))
}

// centerOrigin returns the origin placing an object of the given size in
// the middle of an axis, clamped to 0 for oversized objects.
func (c *Canvas) centerOrigin(canvas, object int) int {
	o := (canvas - object) / 2
	if o < 0 {
		Logger().Warn("centered shape larger than canvas", "canvas", canvas, "shape", object)
		return 0
	}
	return o
}

// FillCircle fills the circle described by ci.
//
// When ci.Center is set, the center is moved in place to the canvas
// midpoint (width/2, height/2). The radius plays no part in that
// adjustment, so large circles centered this way still clip evenly.
func (c *Canvas) FillCircle(ci *Circle) {
	if ci.Center {
		ci.X0 = c.width / 2
		ci.Y0 = c.height / 2
	}
	raster.FillCircle(c.surface, ci.X0, ci.Y0, ci.Radius, uint32(ci.Color))
}

// FillTriangle fills the triangle described by t. Vertices may be given in
// any order.
func (c *Canvas) FillTriangle(t *Triangle) {
	raster.FillTriangle(c.surface, t.X1, t.Y1, t.X2, t.Y2, t.X3, t.Y3, uint32(t.Color))
}

// DrawLine draws the line described by l, both endpoints included.
//
// When l.Center is set, Vertical pins both endpoints in place to the
// vertical centerline x = width/2; otherwise Horizontal pins both to
// y = height/2. Vertical takes precedence when both flags are set.
func (c *Canvas) DrawLine(l *Line) {
	if l.Center {
		if l.Vertical {
			l.X0 = c.width / 2
			l.X1 = c.width / 2
		} else if l.Horizontal {
			l.Y0 = c.height / 2
			l.Y1 = c.height / 2
		}
	}
	raster.DrawLine(c.surface, l.X0, l.Y0, l.X1, l.Y1, uint32(l.Color))
}

// SavePPM saves the canvas to a binary PPM (P6) file.
func (c *Canvas) SavePPM(path string) error {
	return SavePPM(path, c.pixmap)
}

// EncodePPM writes the canvas as binary PPM (P6) to the given writer.
// This is useful for streaming, network output, or custom storage.
func (c *Canvas) EncodePPM(w io.Writer) error {
	return EncodePPM(w, c.pixmap)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return SavePNG(path, c.pixmap)
}

// SaveBMP saves the canvas to a BMP file.
func (c *Canvas) SaveBMP(path string) error {
	return SaveBMP(path, c.pixmap)
}
