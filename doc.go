// Package graphik provides a minimal software rasterizer for Go.
//
// # Overview
//
// graphik maintains an in-memory buffer of packed 24-bit colors and fills
// geometric primitives into it with pure integer arithmetic: axis-aligned
// rectangles, circles, triangles, and one pixel wide lines. Shapes reaching
// past the canvas edges are silently clipped. The buffer exports to binary
// PPM (P6), PNG, or BMP.
//
// # Quick Start
//
//	import "github.com/graphik-go/graphik"
//
//	// Create a canvas
//	c := graphik.NewCanvas(512, 512)
//
//	// Draw shapes
//	c.Fill(graphik.White)
//	c.FillCircle(&graphik.Circle{Radius: 100, Color: graphik.Red, Center: true})
//	c.DrawLine(&graphik.Line{X1: 511, Y1: 511, Color: graphik.Black})
//
//	// Save to PPM
//	c.SavePPM("output.ppm")
//
// # Packed Colors
//
// A Color packs blue, green, and red into one uint32 with red in the low
// byte: (b<<16) | (g<<8) | r. Build colors with RGB, Hex, or the named
// color variables; the serializers rely on this layout to emit correct
// channel order.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All geometry is integer pixels. There is no anti-aliasing, no alpha
// blending, and no sub-pixel accuracy; the stair-stepping of integer
// interpolation is the intended aesthetic.
//
// # Rendering Model
//
// Rasterization is synchronous and single-threaded. A Canvas and its
// Pixmap are not safe for concurrent use.
package graphik

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
