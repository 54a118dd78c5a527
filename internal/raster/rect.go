// Copyright 2026 The graphik-go Authors
// SPDX-License-Identifier: MIT

package raster

// FillRect fills the axis-aligned box [x0, x0+width) × [y0, y0+height) with
// the given color. Rows and columns outside the surface are clipped silently;
// the set of written pixels is exactly the intersection of the box with the
// surface bounds.
func FillRect(s Surface, x0, y0, width, height int, c uint32) {
	h := s.Height()
	for dy := 0; dy < height; dy++ {
		y := y0 + dy
		if y < 0 || y >= h {
			continue
		}
		fillSpan(s, x0, x0+width, y, c)
	}
}
