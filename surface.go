package graphik

// pixmapSurface adapts a Pixmap to the raster.Surface and raster.SpanFiller
// interfaces, keeping the internal package free of any dependency on the
// root package types.
type pixmapSurface struct {
	pixmap *Pixmap
}

func (s *pixmapSurface) Width() int {
	return s.pixmap.Width()
}

func (s *pixmapSurface) Height() int {
	return s.pixmap.Height()
}

func (s *pixmapSurface) SetPixel(x, y int, c uint32) {
	s.pixmap.SetPixel(x, y, Color(c))
}

// FillSpan implements raster.SpanFiller, routing whole scanline spans to
// the pixmap's row fill instead of per-pixel writes.
func (s *pixmapSurface) FillSpan(x1, x2, y int, c uint32) {
	s.pixmap.FillSpan(x1, x2, y, Color(c))
}
