// Package pix provides a small 2D rasterization and pixel-compositing
// library.
//
// # Overview
//
// pix draws rectangles, lines and circles directly into a fixed-size
// pixel buffer using integer incremental-error rasterization, composites
// colors with byte-exact alpha blending, and serializes frames as binary
// PPM. There is no path, transform or anti-aliasing stage: every draw
// call mutates buffer bytes in place.
//
// # Quick Start
//
//	import "github.com/unsable/pix"
//
//	buf := pix.NewPixelBuffer(256, 256, pix.Black)
//	gfx := pix.NewCanvas(buf, pix.Black, pix.White)
//
//	gfx.SetFill(pix.RGBA(255, 0, 255, 120))
//	gfx.FillCircle(128, 128, 60)
//	gfx.StrokeLine(0, 0, 255, 255)
//
//	if err := buf.WritePPM(os.Stdout); err != nil {
//		log.Fatal(err)
//	}
//
// # Buffers
//
// Two buffer kinds implement the same Buffer capability: PixelBuffer
// stores RGB bytes and alpha-composites on write, StencilBuffer stores
// single bytes (counters, heat, masks) and overwrites on write. Canvas
// is generic over the capability, so the same rasterizers drive both.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Out-of-bounds reads return absent and out-of-bounds writes are
// silently discarded, so primitives may overshoot buffer edges freely.
//
// # Concurrency
//
// A Canvas exclusively owns its buffer; all operations are synchronous,
// unsynchronized in-place mutations. Nothing in this package is safe for
// concurrent use except SetLogger and Logger.
package pix
