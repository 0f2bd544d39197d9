package pix

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestWritePPM verifies the byte-exact wire format: ASCII header then
// raw RGB triplets. A fresh 4×4 black buffer is the header plus 48
// zero bytes.
func TestWritePPM(t *testing.T) {
	p := NewPixelBuffer(4, 4, Black)

	var out bytes.Buffer
	if err := p.WritePPM(&out); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	want := append([]byte("P6\n4 4\n255\n"), make([]byte, 48)...)
	if diff := cmp.Diff(want, out.Bytes()); diff != "" {
		t.Errorf("serialized stream mismatch (-want +got):\n%s", diff)
	}
}

// TestWritePPM_PixelOrder verifies row-major, top-to-bottom ordering.
func TestWritePPM_PixelOrder(t *testing.T) {
	p := NewPixelBuffer(2, 2, Black)
	p.Put(1, 0, RGB(1, 2, 3))
	p.Put(0, 1, RGB(4, 5, 6))

	var out bytes.Buffer
	if err := p.WritePPM(&out); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	want := append([]byte("P6\n2 2\n255\n"), []byte{
		0, 0, 0, 1, 2, 3,
		4, 5, 6, 0, 0, 0,
	}...)
	if diff := cmp.Diff(want, out.Bytes()); diff != "" {
		t.Errorf("serialized stream mismatch (-want +got):\n%s", diff)
	}
}

// trickleWriter accepts at most one byte per call, forcing the
// serializer through its partial-write loop.
type trickleWriter struct {
	out bytes.Buffer
}

func (w *trickleWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.out.WriteByte(p[0])
	return 1, nil
}

func TestWritePPM_PartialWrites(t *testing.T) {
	p := NewPixelBuffer(3, 3, RGB(7, 8, 9))

	var direct bytes.Buffer
	if err := p.WritePPM(&direct); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	var trickle trickleWriter
	if err := p.WritePPM(&trickle); err != nil {
		t.Fatalf("WritePPM through trickle writer: %v", err)
	}

	if diff := cmp.Diff(direct.Bytes(), trickle.out.Bytes()); diff != "" {
		t.Errorf("trickle output differs (-want +got):\n%s", diff)
	}
}

// stuckWriter reports success while accepting nothing, the shape of a
// consumer that stopped draining.
type stuckWriter struct{}

func (stuckWriter) Write([]byte) (int, error) { return 0, nil }

// TestWritePPM_StreamClosed verifies a zero-byte write surfaces
// ErrStreamClosed instead of looping forever.
func TestWritePPM_StreamClosed(t *testing.T) {
	p := NewPixelBuffer(2, 2, Black)

	err := p.WritePPM(stuckWriter{})
	if !errors.Is(err, ErrStreamClosed) {
		t.Errorf("err = %v, want ErrStreamClosed", err)
	}
}

// failAfterWriter succeeds for n bytes, then fails.
type failAfterWriter struct {
	n   int
	err error
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	accepted := min(len(p), w.n)
	w.n -= accepted
	return accepted, nil
}

// TestWritePPM_WriteError verifies underlying errors propagate wrapped,
// whether they hit the header or the pixel payload.
func TestWritePPM_WriteError(t *testing.T) {
	p := NewPixelBuffer(2, 2, Black)

	for _, n := range []int{0, 5, 11} {
		w := &failAfterWriter{n: n, err: io.ErrClosedPipe}
		err := p.WritePPM(w)
		if !errors.Is(err, io.ErrClosedPipe) {
			t.Errorf("after %d bytes: err = %v, want wrapped ErrClosedPipe", n, err)
		}
	}
}

// TestWritePGM verifies the stencil serializer's P5 format.
func TestWritePGM(t *testing.T) {
	s := NewStencilBuffer(3, 2, 0)
	s.Put(2, 1, 200)

	var out bytes.Buffer
	if err := s.WritePGM(&out); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}

	want := append([]byte("P5\n3 2\n255\n"), []byte{0, 0, 0, 0, 0, 200}...)
	if diff := cmp.Diff(want, out.Bytes()); diff != "" {
		t.Errorf("serialized stream mismatch (-want +got):\n%s", diff)
	}
}
