// Command infocus fills the frame with per-pixel noise and sweeps a
// grid of bouncing circular lenses over it. A stencil buffer counts
// how many lenses cover each pixel and a mask combinator decides which
// channels survive: uncovered pixels go black, singly-covered pixels
// keep one channel, and only triply-covered pixels come fully into
// focus. Frames are written to stdout as binary PPM.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/unsable/pix"
	"github.com/unsable/pix/internal/seed"
)

const (
	canvasSize = 800
	lensRadius = 50
)

type lens struct {
	x, y   int
	vx, vy int
	radius int
}

func newLens(x, y, vx, vy int) *lens {
	return &lens{x: x, y: y, vx: vx, vy: vy, radius: lensRadius}
}

func (l *lens) top() int    { return l.y - l.radius }
func (l *lens) bottom() int { return l.y + l.radius }
func (l *lens) left() int   { return l.x - l.radius }
func (l *lens) right() int  { return l.x + l.radius }

func (l *lens) step() {
	l.x += l.vx
	l.y += l.vy

	if l.top() <= 0 {
		l.y = lensRadius
		l.vy = -l.vy
	}
	if l.bottom() >= canvasSize {
		l.y = canvasSize - lensRadius
		l.vy = -l.vy
	}
	if l.left() <= 0 {
		l.x = lensRadius
		l.vx = -l.vx
	}
	if l.right() >= canvasSize {
		l.x = canvasSize - lensRadius
		l.vx = -l.vx
	}
}

func (l *lens) contains(x, y int) bool {
	dx := x - l.x
	dy := y - l.y
	return dx*dx+dy*dy <= l.radius*l.radius
}

func randomColor(rng *rand.Rand) pix.Color {
	return pix.RGB(
		uint8(rng.UintN(256)),
		uint8(rng.UintN(256)),
		uint8(rng.UintN(256)),
	)
}

// focus decides how much of a pixel survives given its lens coverage
// count.
func focus(c pix.Color, covered uint8) pix.Color {
	switch covered {
	case 0:
		return pix.Black
	case 1:
		return c.Mask(true, false, false)
	case 2:
		return c.Mask(false, true, false)
	case 3:
		return c.Mask(false, false, true)
	default:
		return c
	}
}

func main() {
	rng := seed.New()

	var lenses []*lens
	for x := 0; x < canvasSize/(lensRadius*2); x++ {
		for y := 0; y < canvasSize/(lensRadius*2); y++ {
			lenses = append(lenses, newLens(
				lensRadius+x*lensRadius*2,
				lensRadius+y*lensRadius*2,
				x+1,
				y+1,
			))
		}
	}

	frame := pix.NewPixelBuffer(canvasSize, canvasSize, pix.White)
	coverage := pix.NewStencilBuffer(canvasSize, canvasSize, 0)

	gfx := pix.NewCanvas(frame, pix.White, pix.Black)
	stencil := pix.NewCanvas[uint8](coverage, 0, 0)

	for {
		coverage.Fill(0)
		for y := 0; y < canvasSize; y++ {
			for x := 0; x < canvasSize; x++ {
				gfx.SetPoint(x, y, randomColor(rng))
			}
		}

		for _, l := range lenses {
			l.step()
		}

		for _, l := range lenses {
			for x := l.left(); x < l.right(); x++ {
				for y := l.top(); y < l.bottom(); y++ {
					if !l.contains(x, y) {
						continue
					}
					coverage.Update(x, y, func(v uint8) uint8 { return v + 1 })
				}
			}
		}

		pix.Mask(gfx, stencil, focus)

		if err := frame.WritePPM(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "infocus:", err)
			os.Exit(1)
		}
	}
}
