// Command graphikdemo renders a sample scene with the graphik rasterizer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/graphik-go/graphik"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.ppm", "output file (.ppm, .png or .bmp)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		graphik.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c := graphik.NewCanvas(*width, *height)

	drawGradientBackground(c)
	drawSun(c)
	drawMountains(c)
	drawGround(c)
	drawCrosshair(c)

	if err := save(c, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawGradientBackground blends the sky between two colors, one scanline
// at a time.
func drawGradientBackground(c *graphik.Canvas) {
	top := graphik.Hex("#16213E")
	bottom := graphik.Hex("#E94560")
	for y := 0; y < c.Height(); y++ {
		t := float64(y) / float64(c.Height())
		c.DrawLine(&graphik.Line{
			X0: 0, Y0: y,
			X1: c.Width() - 1, Y1: y,
			Color: top.Lerp(bottom, t),
		})
	}
}

func drawSun(c *graphik.Canvas) {
	c.FillCircle(&graphik.Circle{
		X0:     3 * c.Width() / 4,
		Y0:     c.Height() / 4,
		Radius: c.Height() / 10,
		Color:  graphik.HSL(45, 1, 0.6),
	})
}

func drawMountains(c *graphik.Canvas) {
	w, h := c.Width(), c.Height()
	ground := 3 * h / 4

	// Back range first so the front range overdraws it.
	c.FillTriangle(&graphik.Triangle{
		X1: w / 2, Y1: h / 3,
		X2: w / 8, Y2: ground,
		X3: 7 * w / 8, Y3: ground,
		Color: graphik.HSL(250, 0.3, 0.35),
	})
	c.FillTriangle(&graphik.Triangle{
		X1: w / 5, Y1: 2 * h / 5,
		X2: -w / 10, Y2: ground,
		X3: w / 2, Y3: ground,
		Color: graphik.HSL(250, 0.35, 0.25),
	})
	c.FillTriangle(&graphik.Triangle{
		X1: 4 * w / 5, Y1: h / 2,
		X2: w / 2, Y2: ground,
		X3: 11 * w / 10, Y3: ground,
		Color: graphik.HSL(250, 0.4, 0.2),
	})
}

func drawGround(c *graphik.Canvas) {
	c.FillRect(&graphik.Rect{
		X0:     0,
		Y0:     3 * c.Height() / 4,
		Width:  c.Width(),
		Height: c.Height() / 4,
		Color:  graphik.HSL(250, 0.25, 0.12),
	})
}

// drawCrosshair marks the canvas midpoint with two centered lines.
func drawCrosshair(c *graphik.Canvas) {
	mark := graphik.Hex("#FFFFFF")
	c.DrawLine(&graphik.Line{
		Y0: c.Height()/2 - 10, Y1: c.Height()/2 + 10,
		Color:  mark,
		Center: true, Vertical: true,
	})
	c.DrawLine(&graphik.Line{
		X0: c.Width()/2 - 10, X1: c.Width()/2 + 10,
		Color:  mark,
		Center: true, Horizontal: true,
	})
}

// save picks the encoder from the file extension, defaulting to PPM.
func save(c *graphik.Canvas, path string) error {
	switch filepath.Ext(path) {
	case ".png":
		return c.SavePNG(path)
	case ".bmp":
		return c.SaveBMP(path)
	default:
		return c.SavePPM(path)
	}
}
