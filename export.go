package pix

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// WritePNG encodes the buffer as PNG.
func (p *PixelBuffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG saves the buffer to a PNG file.
func (p *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.WritePNG(f)
}

// WriteBMP encodes the buffer as BMP.
func (p *PixelBuffer) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return nil
}
