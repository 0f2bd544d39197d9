package pix

import (
	"bytes"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// TestWritePNG verifies the PNG export round-trips dimensions and a
// sample pixel.
func TestWritePNG(t *testing.T) {
	p := NewPixelBuffer(5, 3, Black)
	p.Put(4, 2, RGB(250, 100, 50))

	var out bytes.Buffer
	if err := p.WritePNG(&out); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 5x3", b)
	}
	r, g, b, _ := img.At(4, 2).RGBA()
	if r>>8 != 250 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("pixel (4, 2) = (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

// TestWriteBMP verifies the BMP export round-trips dimensions.
func TestWriteBMP(t *testing.T) {
	p := NewPixelBuffer(7, 4, RGB(1, 2, 3))

	var out bytes.Buffer
	if err := p.WriteBMP(&out); err != nil {
		t.Fatalf("WriteBMP: %v", err)
	}

	img, err := bmp.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 7x4", b)
	}
}

func TestSavePNG(t *testing.T) {
	p := NewPixelBuffer(2, 2, White)
	path := t.TempDir() + "/out.png"

	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
