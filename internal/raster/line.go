// Copyright 2026 The graphik-go Authors
// SPDX-License-Identifier: MIT

package raster

// DrawLine draws a 1-pixel-wide 8-connected line from (x0, y0) to (x1, y1)
// using the integer Bresenham algorithm. Both endpoints are plotted; pixels
// outside the surface are dropped.
func DrawLine(s Surface, x0, y0, x1, y1 int, c uint32) {
	w := s.Width()
	h := s.Height()

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			s.SetPixel(x0, y0, c)
		}
		// The current point is plotted before the termination check so the
		// final endpoint is always included.
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
