package graphik

import (
	"image"
	"image/color"
	"testing"
)

// TestPixmapSetGetPixel verifies a written pixel lands at index y*width+x
// and reads back unchanged.
func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(3, 7, Red)

	if got := pm.GetPixel(3, 7); got != Red {
		t.Errorf("GetPixel(3, 7) = %v, want %v", got, Red)
	}
	if got := pm.GetPixel(7, 3); got != Black {
		t.Errorf("GetPixel(7, 3) = %v, want %v", got, Black)
	}
	if got := pm.Pix()[7*10+3]; got != Red {
		t.Errorf("Pix()[7*10+3] = %v, want %v", got, Red)
	}
}

// TestPixmapSetPixelOutOfBounds verifies out-of-bounds coordinates are
// silently ignored.
func TestPixmapSetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(White)

	original := make([]Color, len(pm.Pix()))
	copy(original, pm.Pix())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
	}

	for i, v := range pm.Pix() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified pixel %d: got %v, want %v", i, v, original[i])
		}
	}
}

// TestPixmapGetPixelOutOfBounds verifies out-of-bounds reads return black.
func TestPixmapGetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)

	oob := []struct{ x, y int }{
		{-1, 0}, {4, 0}, {0, -1}, {0, 4},
	}
	for _, c := range oob {
		if got := pm.GetPixel(c.x, c.y); got != Black {
			t.Errorf("GetPixel(%d, %d) = %v, want %v", c.x, c.y, got, Black)
		}
	}
}

// TestPixmapClear verifies Clear touches every pixel.
func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(6, 4)
	pm.Clear(Cyan)

	for i, v := range pm.Pix() {
		if v != Cyan {
			t.Fatalf("pixel %d = %v, want %v", i, v, Cyan)
		}
	}
}

// TestPixmapFillSpan tests the FillSpan method with various span sizes.
func TestPixmapFillSpan(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		x1     int
		x2     int
		y      int
		color  Color
		pixels int // number of pixels that should be filled
	}{
		{
			name:   "short span",
			width:  100,
			height: 100,
			x1:     10,
			x2:     20,
			y:      50,
			color:  Red,
			pixels: 10,
		},
		{
			name:   "full row",
			width:  100,
			height: 100,
			x1:     0,
			x2:     100,
			y:      50,
			color:  Yellow,
			pixels: 100,
		},
		{
			name:   "clipped left",
			width:  100,
			height: 100,
			x1:     -10,
			x2:     20,
			y:      50,
			color:  Cyan,
			pixels: 20,
		},
		{
			name:   "clipped right",
			width:  100,
			height: 100,
			x1:     90,
			x2:     120,
			y:      50,
			color:  Magenta,
			pixels: 10,
		},
		{
			name:   "out of bounds y (negative)",
			width:  100,
			height: 100,
			x1:     10,
			x2:     20,
			y:      -1,
			color:  Red,
			pixels: 0,
		},
		{
			name:   "out of bounds y (too large)",
			width:  100,
			height: 100,
			x1:     10,
			x2:     20,
			y:      100,
			color:  Red,
			pixels: 0,
		},
		{
			name:   "x1 >= x2",
			width:  100,
			height: 100,
			x1:     20,
			x2:     10,
			y:      50,
			color:  Red,
			pixels: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(tt.width, tt.height)

			pm.FillSpan(tt.x1, tt.x2, tt.y, tt.color)

			filled := 0
			for x := 0; x < tt.width; x++ {
				if pm.GetPixel(x, tt.y) == tt.color {
					filled++
				}
			}
			if filled != tt.pixels {
				t.Errorf("expected %d filled pixels, got %d", tt.pixels, filled)
			}

			// Verify pixels are in correct positions
			if tt.pixels > 0 {
				startX := tt.x1
				if startX < 0 {
					startX = 0
				}
				endX := tt.x2
				if endX > tt.width {
					endX = tt.width
				}
				for x := startX; x < endX; x++ {
					if got := pm.GetPixel(x, tt.y); got != tt.color {
						t.Errorf("pixel at (%d, %d) should be filled, got %v", x, tt.y, got)
					}
				}
			}
		})
	}
}

// TestPixmapImage exercises the image.Image implementation and ToImage.
func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(1, 1, RGB(10, 20, 30))

	if got, want := pm.Bounds(), image.Rect(0, 0, 3, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	r, g, b, a := pm.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a != 0xffff {
		t.Errorf("At(1, 1).RGBA() = (%d, %d, %d, %d), want (10, 20, 30, 255) scaled", r>>8, g>>8, b>>8, a>>8)
	}

	img := pm.ToImage()
	i := img.PixOffset(1, 1)
	if img.Pix[i] != 10 || img.Pix[i+1] != 20 || img.Pix[i+2] != 30 || img.Pix[i+3] != 0xff {
		t.Errorf("ToImage() pixel (1, 1) = (%d, %d, %d, %d), want (10, 20, 30, 255)",
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
	}
}

// TestFromImage verifies pixels survive conversion from a standard image.
func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(2, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	pm := FromImage(img)

	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", pm.Width(), pm.Height())
	}
	if got, want := pm.GetPixel(2, 1), RGB(200, 100, 50); got != want {
		t.Errorf("GetPixel(2, 1) = %v, want %v", got, want)
	}
	if got := pm.GetPixel(0, 0); got != Black {
		t.Errorf("GetPixel(0, 0) = %v, want %v", got, Black)
	}
}
