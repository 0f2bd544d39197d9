package pix

import "image/color"

// Color represents an RGBA color with one byte per channel.
// A=255 is fully opaque, A=0 fully transparent. Colors are immutable
// values; operations return new colors.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// Mask returns a copy of the color with every channel whose keep flag is
// false forced to zero. Alpha is unchanged. Used to isolate channels for
// visualization.
func (c Color) Mask(keepR, keepG, keepB bool) Color {
	out := Color{A: c.A}
	if keepR {
		out.R = c.R
	}
	if keepG {
		out.G = c.G
	}
	if keepB {
		out.B = c.B
	}
	return out
}

// Blend composites src over c, using src.A as the mix factor and c as
// the destination. Each channel becomes
//
//	(dst*(255-src.A) + src*src.A) / 255
//
// with truncating integer division. The result keeps the destination
// alpha: blending changes what a pixel looks like, not how opaque the
// pixel already was.
func (c Color) Blend(src Color) Color {
	return Color{
		R: blendChannel(c.R, src.R, src.A),
		G: blendChannel(c.G, src.G, src.A),
		B: blendChannel(c.B, src.B, src.A),
		A: c.A,
	}
}

// blendChannel mixes a single channel. Intermediate math is done in
// uint16 so the sum of two 255*255 products cannot overflow.
func blendChannel(dst, src, alpha uint8) uint8 {
	base := uint16(255 - alpha)
	return uint8((uint16(dst)*base + uint16(src)*uint16(alpha)) / 255)
}

// NRGBA converts the color to the standard library's non-premultiplied
// representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
