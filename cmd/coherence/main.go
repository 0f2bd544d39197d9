// Command coherence renders a cellular "infection" animation. Cells
// start with random colors; cells missing a primary channel are
// infected with that channel's disease and saturate toward it,
// spreading to healthy neighbors. The four corners carry a white
// strain that overruns the others. Frames are written to stdout as
// binary PPM.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/unsable/pix"
	"github.com/unsable/pix/internal/seed"
)

const (
	canvasSize = 400
	gridSize   = 4
	cellCount  = canvasSize / gridSize

	frames = 2000
)

type side uint8

const (
	sideLeft side = 1 << iota
	sideRight
	sideTop
	sideBottom
)

// Infection strains. Strains 1-3 saturate a single channel; strain 4
// is the white strain seeded in the corners.
const (
	healthy = iota
	strainRed
	strainGreen
	strainBlue
	strainWhite
)

type grid struct {
	cells    []pix.Color
	infected []uint8
}

func randomColor(rng *rand.Rand) pix.Color {
	return pix.RGB(
		uint8(rng.UintN(256)),
		uint8(rng.UintN(256)),
		uint8(rng.UintN(256)),
	)
}

func newGrid(rng *rand.Rand) *grid {
	g := &grid{
		cells:    make([]pix.Color, cellCount*cellCount),
		infected: make([]uint8, cellCount*cellCount),
	}

	for i := range g.cells {
		c := randomColor(rng)
		g.cells[i] = c
		switch {
		case c.R == 0:
			g.infected[i] = strainRed
		case c.G == 0:
			g.infected[i] = strainGreen
		case c.B == 0:
			g.infected[i] = strainBlue
		}
	}

	for _, corner := range [][2]int{
		{0, 0},
		{cellCount - 1, 0},
		{0, cellCount - 1},
		{cellCount - 1, cellCount - 1},
	} {
		i, _ := offset(corner[0], corner[1])
		g.infected[i] = strainWhite
		g.cells[i] = pix.Black
	}

	return g
}

func offset(x, y int) (int, bool) {
	if x < 0 || x >= cellCount || y < 0 || y >= cellCount {
		return 0, false
	}
	return y*cellCount + x, true
}

func (g *grid) at(x, y int) pix.Color {
	if i, ok := offset(x, y); ok {
		return g.cells[i]
	}
	return pix.Black
}

// borders reports which neighbors differ in color from the cell,
// marking the edges to outline.
func (g *grid) borders(x, y int) side {
	cell := g.at(x, y)

	var mask side
	if cell != g.at(x, y-1) {
		mask |= sideTop
	}
	if cell != g.at(x, y+1) {
		mask |= sideBottom
	}
	if cell != g.at(x-1, y) {
		mask |= sideLeft
	}
	if cell != g.at(x+1, y) {
		mask |= sideRight
	}
	return mask
}

func (g *grid) updateInfection(x, y int) {
	i, _ := offset(x, y)

	infected := g.infected[i]
	c := g.cells[i]

	// An infected cell first saturates its own color, one step per
	// frame; only a fully saturated cell spreads.
	switch infected {
	case healthy:
		return
	case strainRed:
		if c.R < 255 {
			g.cells[i] = pix.RGB(c.R+1, 0, 0)
			return
		}
	case strainGreen:
		if c.G < 255 {
			g.cells[i] = pix.RGB(0, c.G+1, 0)
			return
		}
	case strainBlue:
		if c.B < 255 {
			g.cells[i] = pix.RGB(0, 0, c.B+1)
			return
		}
	case strainWhite:
		if c.R < 255 {
			g.cells[i] = pix.RGB(c.R+1, c.G+1, c.B+1)
			return
		}
	default:
		return
	}

	spread := func(x, y int) {
		j, ok := offset(x, y)
		if !ok {
			return
		}
		// The white strain only overruns previously infected cells;
		// the channel strains only take healthy ones.
		if g.infected[j] > healthy && g.infected[j] < strainWhite && infected == strainWhite {
			g.infected[j] = strainWhite
			g.cells[j] = pix.RGB(252, 252, 252)
		} else if g.infected[j] == healthy && infected != strainWhite {
			g.infected[j] = infected
		}
	}

	spread(x-1, y)
	spread(x+1, y)
	spread(x, y-1)
	spread(x, y+1)
}

func (g *grid) step() {
	for y := 0; y < cellCount; y++ {
		for x := 0; x < cellCount; x++ {
			g.updateInfection(x, y)
		}
	}
}

func (g *grid) draw(gfx *pix.Canvas[pix.Color]) {
	gfx.SetFill(pix.White)
	gfx.Fill()

	for y := 0; y < cellCount; y++ {
		for x := 0; x < cellCount; x++ {
			leftX := x * gridSize
			rightX := leftX + gridSize
			topY := y * gridSize
			bottomY := topY + gridSize

			gfx.SetFill(g.at(x, y))
			gfx.FillRect(leftX, topY, gridSize, gridSize)

			gfx.SetStroke(pix.Black)
			border := g.borders(x, y)

			if border&sideTop != 0 {
				gfx.StrokeLine(leftX, topY, rightX, topY)
			}
			if border&sideBottom != 0 {
				gfx.StrokeLine(leftX, bottomY, rightX, bottomY)
			}
			if border&sideLeft != 0 {
				gfx.StrokeLine(leftX, topY, leftX, bottomY)
			}
			if border&sideRight != 0 {
				gfx.StrokeLine(rightX, topY, rightX, bottomY)
			}
		}
	}
}

func main() {
	buf := pix.NewPixelBuffer(canvasSize, canvasSize, pix.White)
	gfx := pix.NewCanvas(buf, pix.White, pix.Black)

	rng := seed.New()
	g := newGrid(rng)

	for i := 0; i < frames; i++ {
		gfx.Fill()
		g.step()
		g.draw(gfx)

		if err := buf.WritePPM(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "coherence:", err)
			os.Exit(1)
		}
	}
}
