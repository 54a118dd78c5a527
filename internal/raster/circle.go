// Copyright 2026 The graphik-go Authors
// SPDX-License-Identifier: MIT

package raster

// FillCircle fills every pixel whose squared distance from (cx, cy) is at
// most r², using integer arithmetic throughout. The scan covers the half-open
// bounding box [cx-r, cx+r) × [cy-r, cy+r); rows and columns outside the
// surface are skipped.
//
// r² must fit in an int, which holds for any radius a real buffer can
// accommodate.
func FillCircle(s Surface, cx, cy, r int, c uint32) {
	w := s.Width()
	h := s.Height()
	rr := r * r

	for y := cy - r; y < cy+r; y++ {
		if y < 0 || y >= h {
			continue
		}
		dy := y - cy
		for x := cx - r; x < cx+r; x++ {
			if x < 0 || x >= w {
				continue
			}
			dx := x - cx
			if dx*dx+dy*dy <= rr {
				s.SetPixel(x, y, c)
			}
		}
	}
}
