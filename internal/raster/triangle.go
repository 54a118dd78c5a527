// Copyright 2026 The graphik-go Authors
// SPDX-License-Identifier: MIT

package raster

// FillTriangle fills the triangle with vertices (x1,y1), (x2,y2), (x3,y3)
// using a two-pass scanline fill. Vertices are sorted by y internally, so the
// caller may pass them in any order.
//
// Each scanline's span endpoints come from truncating integer interpolation
// along the triangle edges, which produces the stair-stepped silhouette
// characteristic of this rasterizer.
func FillTriangle(s Surface, x1, y1, x2, y2, x3, y3 int, c uint32) {
	// Sort vertices so that y1 <= y2 <= y3.
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	h := s.Height()

	// Top half: scanlines from y1 to y2, interpolating along edges 1→2 and
	// 1→3, anchored at vertex 1.
	dx12 := x2 - x1
	dy12 := y2 - y1
	dx13 := x3 - x1
	dy13 := y3 - y1
	for y := y1; y <= y2; y++ {
		if y < 0 || y >= h {
			continue
		}
		s1 := x1
		if dy12 != 0 {
			s1 = (y-y1)*dx12/dy12 + x1
		}
		s2 := x1
		if dy13 != 0 {
			s2 = (y-y1)*dx13/dy13 + x1
		}
		if s1 > s2 {
			s1, s2 = s2, s1
		}
		fillSpan(s, s1, s2+1, y, c)
	}

	// Bottom half: scanlines from y2 to y3, interpolating along edges 3→2
	// and 3→1, anchored at vertex 3.
	dx32 := x2 - x3
	dy32 := y2 - y3
	dx31 := x1 - x3
	dy31 := y1 - y3
	for y := y2; y <= y3; y++ {
		if y < 0 || y >= h {
			continue
		}
		s1 := x3
		if dy32 != 0 {
			s1 = (y-y3)*dx32/dy32 + x3
		}
		s2 := x3
		if dy31 != 0 {
			s2 = (y-y3)*dx31/dy31 + x3
		}
		if s1 > s2 {
			s1, s2 = s2, s1
		}
		fillSpan(s, s1, s2+1, y, c)
	}
}
