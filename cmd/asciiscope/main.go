// Command asciiscope visualizes bytes read from stdin as a 16×16 heat
// grid. Every input byte heats its cell; cells cool one step per
// frame. One binary PPM frame is written to stdout per input byte,
// suitable for piping into any P6 consumer.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/unsable/pix"
)

const (
	cellSize = 20
	cellGap  = 4

	heating = 120
	cooling = 1
)

func coolHeatmap(heat *[256]uint8) {
	for i := range heat {
		if heat[i] > cooling {
			heat[i] -= cooling
		} else {
			heat[i] = 0
		}
	}
}

func renderFrame(gfx *pix.Canvas[pix.Color], buf *pix.PixelBuffer, heat *[256]uint8, w io.Writer) error {
	x := cellGap
	y := cellGap

	for i, v := range heat {
		gfx.SetFill(pix.RGB(v, 0, 0))
		gfx.FillRect(x, y, cellSize, cellSize)

		if (i+1)%16 == 0 {
			x = cellGap
			y += cellSize + cellGap
		} else {
			x += cellSize + cellGap
		}
	}

	return buf.WritePPM(w)
}

func main() {
	background := pix.White
	dimension := (cellGap+cellSize)*16 + cellGap

	stdin := bufio.NewReader(os.Stdin)
	stdout := os.Stdout

	buf := pix.NewPixelBuffer(dimension, dimension, background)
	gfx := pix.NewCanvas(buf, background, pix.Black)

	var heat [256]uint8
	if err := renderFrame(gfx, buf, &heat, stdout); err != nil {
		fmt.Fprintln(os.Stderr, "asciiscope:", err)
		os.Exit(1)
	}
	gfx.Fill()

	for {
		b, err := stdin.ReadByte()
		if err != nil {
			break
		}

		if heat[b] < 255-heating {
			heat[b] += heating
		}

		if err := renderFrame(gfx, buf, &heat, stdout); err != nil {
			fmt.Fprintln(os.Stderr, "asciiscope:", err)
			os.Exit(1)
		}

		gfx.SetFill(background)
		gfx.Fill()

		coolHeatmap(&heat)
	}
}
