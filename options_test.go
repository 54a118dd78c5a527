package graphik

import (
	"testing"
)

// TestNewCanvasDefault tests that NewCanvas allocates a fresh pixmap.
func TestNewCanvasDefault(t *testing.T) {
	c := NewCanvas(100, 50)
	if c == nil {
		t.Fatal("NewCanvas returned nil")
	}

	// Verify dimensions
	if c.Width() != 100 {
		t.Errorf("Width() = %d, want 100", c.Width())
	}
	if c.Height() != 50 {
		t.Errorf("Height() = %d, want 50", c.Height())
	}

	pm := c.Pixmap()
	if pm == nil {
		t.Fatal("Pixmap() returned nil")
	}
	if pm.Width() != 100 || pm.Height() != 50 {
		t.Errorf("pixmap dimensions = %dx%d, want 100x50", pm.Width(), pm.Height())
	}
	if len(pm.Pix()) != 100*50 {
		t.Errorf("len(Pix()) = %d, want %d", len(pm.Pix()), 100*50)
	}

	// Fresh buffers start black.
	if got := pm.GetPixel(0, 0); got != Black {
		t.Errorf("GetPixel(0, 0) = %v, want %v", got, Black)
	}
}

// TestNewCanvasWithPixmap tests dependency injection of a custom pixmap.
func TestNewCanvasWithPixmap(t *testing.T) {
	customPixmap := NewPixmap(200, 200)

	c := NewCanvas(100, 100, WithPixmap(customPixmap))
	if c == nil {
		t.Fatal("NewCanvas returned nil")
	}

	// Verify custom pixmap is used
	if c.Pixmap() != customPixmap {
		t.Error("pixmap is not the injected custom pixmap")
	}

	// Dimensions come from the pixmap so centering resolves against the
	// real buffer.
	if c.Width() != 200 || c.Height() != 200 {
		t.Errorf("dimensions = %dx%d, want 200x200", c.Width(), c.Height())
	}

	// Draws land on the caller's buffer.
	c.FillRect(&Rect{X0: 1, Y0: 1, Width: 2, Height: 2, Color: Red})
	if got := customPixmap.GetPixel(2, 2); got != Red {
		t.Errorf("GetPixel(2, 2) = %v, want %v", got, Red)
	}
}
