package graphik

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default: a fresh black pixmap
//	c := graphik.NewCanvas(800, 600)
//
//	// Drawing onto an existing pixmap
//	c := graphik.NewCanvas(800, 600, graphik.WithPixmap(pm))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	pixmap *Pixmap
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		pixmap: nil, // Will be created if nil
	}
}

// WithPixmap sets a custom pixmap for the Canvas. The canvas adopts the
// pixmap's dimensions, so shapes land on the caller's buffer directly.
//
// Example:
//
//	pm := graphik.NewPixmap(800, 600)
//	c := graphik.NewCanvas(800, 600, graphik.WithPixmap(pm))
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}
