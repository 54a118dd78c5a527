package graphik

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// EncodePNG writes the pixmap as PNG to the given writer.
// This is useful for streaming, network output, or custom storage.
func EncodePNG(w io.Writer, pm *Pixmap) error {
	if err := png.Encode(w, pm.ToImage()); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file. Open and write failures follow
// the same error taxonomy as SavePPM.
func SavePNG(path string, pm *Pixmap) error {
	return saveImage(path, "png", pm, EncodePNG)
}

// EncodeBMP writes the pixmap as BMP to the given writer.
func EncodeBMP(w io.Writer, pm *Pixmap) error {
	if err := bmp.Encode(w, pm.ToImage()); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}

// SaveBMP saves the pixmap to a BMP file. Open and write failures follow
// the same error taxonomy as SavePPM.
func SaveBMP(path string, pm *Pixmap) error {
	return saveImage(path, "bmp", pm, EncodeBMP)
}

// saveImage opens the destination and streams one encoded image into it.
func saveImage(path, format string, pm *Pixmap, encode func(io.Writer, *Pixmap) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := encode(f, pm); err != nil {
		return err
	}

	Logger().Debug("image exported", "format", format, "path", path,
		"width", pm.Width(), "height", pm.Height())
	return nil
}
