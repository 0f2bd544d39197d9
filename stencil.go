package pix

import "image"

// StencilBuffer is a fixed-size grid of single-byte values used for
// counters, heat maps and masks. Unlike PixelBuffer there is no alpha
// concept: writes overwrite unconditionally.
type StencilBuffer struct {
	width  int
	height int
	data   []uint8
}

var _ Buffer[uint8] = (*StencilBuffer)(nil)

// NewStencilBuffer creates a stencil buffer of the given dimensions
// with every cell set to fill.
func NewStencilBuffer(width, height int, fill uint8) *StencilBuffer {
	s := &StencilBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
	s.Fill(fill)
	return s
}

// Width returns the width of the buffer.
func (s *StencilBuffer) Width() int { return s.width }

// Height returns the height of the buffer.
func (s *StencilBuffer) Height() int { return s.height }

// Data returns the raw cell data (row-major).
func (s *StencilBuffer) Data() []uint8 { return s.data }

// Get returns the value at (x, y), reporting false out of bounds.
func (s *StencilBuffer) Get(x, y int) (uint8, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return s.data[y*s.width+x], true
}

// Put overwrites the value at (x, y). Out-of-bounds writes are silently
// discarded.
func (s *StencilBuffer) Put(x, y int, v uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.data[y*s.width+x] = v
}

// Update applies fn to the value at (x, y) and stores the result.
// Out of bounds, fn is not called and nothing changes.
func (s *StencilBuffer) Update(x, y int, fn func(uint8) uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.data[i] = fn(s.data[i])
}

// Fill sets every cell to v.
func (s *StencilBuffer) Fill(v uint8) {
	for i := range s.data {
		s.data[i] = v
	}
}

// ToImage converts the buffer to a grayscale image.
func (s *StencilBuffer) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}
