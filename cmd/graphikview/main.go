// Command graphikview displays an animated graphik canvas in a desktop
// window.
package main

import (
	"flag"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/graphik-go/graphik"
)

func main() {
	var (
		width  = flag.Int("width", 640, "canvas width")
		height = flag.Int("height", 480, "canvas height")
	)
	flag.Parse()

	g := &game{canvas: graphik.NewCanvas(*width, *height)}
	ebiten.SetWindowTitle("graphik " + graphik.Version)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("window closed with error: %v", err)
	}
}

type game struct {
	canvas *graphik.Canvas
	img    *image.RGBA
	frame  *ebiten.Image
	tick   int
}

func (g *game) Update() error {
	g.tick++
	render(g.canvas, g.tick)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.canvas.Width(), g.canvas.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.frame = ebiten.NewImage(w, h)
	}

	// Expand packed colors into the RGBA staging buffer.
	src := g.canvas.Pixmap().Pix()
	dst := g.img.Pix
	for i, c := range src {
		j := i * 4
		dst[j+0] = c.R()
		dst[j+1] = c.G()
		dst[j+2] = c.B()
		dst[j+3] = 0xFF
	}

	g.frame.WritePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}

// render redraws the scene for one animation tick.
func render(c *graphik.Canvas, tick int) {
	c.Fill(graphik.Hex("#16213E"))

	c.FillRect(&graphik.Rect{
		Width:  c.Width() - 40,
		Height: c.Height() - 40,
		Color:  graphik.Hex("#0F3460"),
		Center: true,
	})

	// Disc orbiting the canvas center, hue shifting as it goes.
	angle := float64(tick) * math.Pi / 90
	orbit := float64(min(c.Width(), c.Height())) / 4
	x := c.Width()/2 + int(orbit*math.Cos(angle))
	y := c.Height()/2 + int(orbit*math.Sin(angle))

	c.DrawLine(&graphik.Line{
		X0: c.Width() / 2, Y0: c.Height() / 2,
		X1: x, Y1: y,
		Color: graphik.White,
	})
	c.FillCircle(&graphik.Circle{
		X0: x, Y0: y,
		Radius: 24,
		Color:  graphik.HSL(float64(tick%360), 0.8, 0.6),
	})
}
