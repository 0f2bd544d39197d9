package pix

import (
	"image"
	"image/color"
)

// bytesPerPixel is the storage footprint of one PixelBuffer element:
// one byte per channel, three channels. Alpha is not stored.
const bytesPerPixel = 3

// PixelBuffer is a fixed-size grid of colors backed by a flat RGB24
// byte slice. Writes alpha-composite against the existing pixel; the
// stored image is always fully opaque.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel, row-major
}

// Compile-time check that PixelBuffer satisfies the Buffer capability.
var _ Buffer[Color] = (*PixelBuffer)(nil)

// NewPixelBuffer creates a pixel buffer of the given dimensions filled
// with the given color.
func NewPixelBuffer(width, height int, fill Color) *PixelBuffer {
	p := &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
	p.Fill(fill)
	return p
}

// Width returns the width of the buffer.
func (p *PixelBuffer) Width() int { return p.width }

// Height returns the height of the buffer.
func (p *PixelBuffer) Height() int { return p.height }

// Data returns the raw pixel data (RGB format, row-major).
func (p *PixelBuffer) Data() []uint8 { return p.data }

// Get returns the color at (x, y). The stored pixel has no alpha plane,
// so the returned color is always opaque. Reports false out of bounds.
func (p *PixelBuffer) Get(x, y int) (Color, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}, false
	}
	i := (y*p.width + x) * bytesPerPixel
	return RGB(p.data[i], p.data[i+1], p.data[i+2]), true
}

// Put writes a color at (x, y), compositing against the existing pixel.
// A fully transparent write changes nothing, a fully opaque write
// overwrites the channel bytes directly, anything in between blends.
// Out-of-bounds writes are silently discarded.
func (p *PixelBuffer) Put(x, y int, v Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.writePixel((y*p.width+x)*bytesPerPixel, v)
}

// writePixel applies the buffer's write semantics at a raw data offset.
func (p *PixelBuffer) writePixel(i int, v Color) {
	switch v.A {
	case 0:
		// fully transparent, nothing to do
	case 255:
		p.data[i] = v.R
		p.data[i+1] = v.G
		p.data[i+2] = v.B
	default:
		dst := RGB(p.data[i], p.data[i+1], p.data[i+2])
		out := dst.Blend(v)
		p.data[i] = out.R
		p.data[i+1] = out.G
		p.data[i+2] = out.B
	}
}

// Fill writes the color to every pixel, honoring the same compositing
// semantics as Put. Filling with a translucent color dims the whole
// frame, which the demo loops use for motion blur.
func (p *PixelBuffer) Fill(v Color) {
	for i := 0; i < len(p.data); i += bytesPerPixel {
		p.writePixel(i, v)
	}
}

// ToImage converts the buffer to an image.NRGBA.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			src := (y*p.width + x) * bytesPerPixel
			dst := img.PixOffset(x, y)
			img.Pix[dst+0] = p.data[src+0]
			img.Pix[dst+1] = p.data[src+1]
			img.Pix[dst+2] = p.data[src+2]
			img.Pix[dst+3] = 255
		}
	}
	return img
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	c, ok := p.Get(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return c.NRGBA()
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
