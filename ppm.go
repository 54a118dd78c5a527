package graphik

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrFileOpen reports that an export destination could not be created
	// or opened.
	ErrFileOpen = errors.New("graphik: cannot open output file")

	// ErrFileWrite reports that a write to an export destination did not
	// complete.
	ErrFileWrite = errors.New("graphik: write failed")
)

// EncodePPM writes the pixmap as binary PPM (P6) to the given writer: the
// ASCII header "P6\n<width> <height> 255\n" followed by three bytes per
// pixel in row-major order, top row first. Pixel bytes are emitted low
// byte first, which under the Color packing contract yields R, G, B.
//
// The first failed write stops the encoding; the returned error wraps
// ErrFileWrite.
func EncodePPM(w io.Writer, pm *Pixmap) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d 255\n", pm.Width(), pm.Height()); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}

	var px [3]byte
	for _, c := range pm.Pix() {
		px[0] = c.R()
		px[1] = c.G()
		px[2] = c.B()
		if _, err := bw.Write(px[:]); err != nil {
			return fmt.Errorf("%w: %w", ErrFileWrite, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}

// SavePPM saves the pixmap to a binary PPM (P6) file, creating or
// truncating the destination.
//
// A destination that cannot be created wraps ErrFileOpen and nothing is
// written. A write failure mid-stream wraps ErrFileWrite and leaves a
// possibly truncated file behind.
func SavePPM(path string, pm *Pixmap) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := EncodePPM(f, pm); err != nil {
		return err
	}

	Logger().Debug("image exported", "format", "ppm", "path", path,
		"width", pm.Width(), "height", pm.Height())
	return nil
}
