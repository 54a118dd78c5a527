// Copyright 2026 The graphik-go Authors
// SPDX-License-Identifier: MIT

// Package raster converts geometric primitives into the exact set of buffer
// cells they cover. All arithmetic is integer; writes that fall outside the
// surface bounds are dropped, never reported as errors.
package raster

// Surface is the pixel destination for rasterization (internal interface to
// avoid an import cycle with the root package).
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c uint32)
}

// SpanFiller is an optional interface that surfaces can implement for
// optimized horizontal span filling.
type SpanFiller interface {
	FillSpan(x1, x2, y int, c uint32)
}

// fillSpan fills the half-open pixel range [x1, x2) on row y, normalizing
// and clamping the range to the surface bounds first.
func fillSpan(s Surface, x1, x2, y int, c uint32) {
	if y < 0 || y >= s.Height() {
		return
	}

	if x1 > x2 {
		x1, x2 = x2, x1
	}

	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.Width() {
		x2 = s.Width()
	}

	// Try to use optimized FillSpan if available
	if sf, ok := s.(SpanFiller); ok {
		sf.FillSpan(x1, x2, y, c)
		return
	}

	// Fallback to scalar SetPixel
	for x := x1; x < x2; x++ {
		s.SetPixel(x, y, c)
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
