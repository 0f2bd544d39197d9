package pix

import (
	"errors"
	"fmt"
	"io"
)

// ErrStreamClosed reports that the output stream accepted a zero-byte
// write without returning an error. The consumer has stopped draining
// the stream, so retrying would loop forever.
var ErrStreamClosed = errors.New("pix: output stream closed")

// writeAll writes the whole buffer to w, retrying partial writes until
// every byte is flushed. A zero-byte write with a nil error surfaces
// ErrStreamClosed.
func writeAll(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrStreamClosed
		}
		buf = buf[n:]
	}
	return nil
}

// WritePPM serializes the buffer as a binary PPM (P6) stream: the
// ASCII header "P6\n<width> <height>\n255\n" followed by
// width*height*3 raw RGB bytes in row-major, top-to-bottom order.
// Downstream PPM consumers depend on this byte-for-byte.
func (p *PixelBuffer) WritePPM(w io.Writer) error {
	header := fmt.Sprintf("P6\n%d %d\n255\n", p.width, p.height)
	if err := writeAll(w, []byte(header)); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	if err := writeAll(w, p.data); err != nil {
		return fmt.Errorf("write ppm pixels: %w", err)
	}
	Logger().Debug("ppm frame written",
		"width", p.width, "height", p.height,
		"bytes", len(header)+len(p.data))
	return nil
}

// WritePGM serializes the stencil as a binary PGM (P5) stream, one
// gray byte per cell, so heat and mask buffers can be inspected with
// the same tooling as PPM frames.
func (s *StencilBuffer) WritePGM(w io.Writer) error {
	header := fmt.Sprintf("P5\n%d %d\n255\n", s.width, s.height)
	if err := writeAll(w, []byte(header)); err != nil {
		return fmt.Errorf("write pgm header: %w", err)
	}
	if err := writeAll(w, s.data); err != nil {
		return fmt.Errorf("write pgm cells: %w", err)
	}
	Logger().Debug("pgm frame written",
		"width", s.width, "height", s.height,
		"bytes", len(header)+len(s.data))
	return nil
}
