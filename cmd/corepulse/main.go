// Command corepulse renders a charging energy core orbited by
// accumulators. The core charges until full, then bleeds into one
// accumulator through lightning bolts; heated accumulators beam their
// charge upward while they cool. A translucent full-frame fill leaves
// motion trails, and radial gradients shade the core. Frames are
// written to stdout as binary PPM.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/unsable/pix"
	"github.com/unsable/pix/internal/seed"
)

const (
	centerX = 400
	centerY = 400

	coreMaxSize    = 250
	coreMinEnergy  = 0
	coreMaxEnergy  = 175
	coreBleedRate  = 4
	coreChargeRate = 10

	haloMaxSize = 30
	haloMinSize = 10
	haloJitter  = 5

	accumulatorCount   = 10
	accumulatorRadius  = 300.0
	accumulatorSize    = 35
	accumulatorRate    = 200.0
	accumulatorHeat    = 25
	accumulatorCool    = 1
	accumulatorMinHeat = 50

	frames = 900
)

// bolt draws one lightning strand from the core to (x, y), white at
// the core and fading toward the target.
func bolt(gfx *pix.Canvas[pix.Color], x, y int) {
	gfx.GradientLine(centerX, centerY, x, y, func(t float64) pix.Color {
		return pix.RGBA(255, 255, 255, uint8(255-t*180))
	})
}

// shadeCore darkens the core toward its center, replacing a cascade of
// concentric translucent fills with a single radial gradient pass.
func shadeCore(_, d float64) pix.Color {
	if d > 1 {
		d = 1
	}
	return pix.RGBA(0, 0, 0, uint8((1-d)*200))
}

func main() {
	background := pix.Black
	blur := pix.RGBA(0, 0, 0, 15)
	fill := pix.RGBA(255, 0, 255, 120)
	fillHalo := pix.RGBA(255, 255, 0, 200)

	buf := pix.NewPixelBuffer(800, 800, background)
	gfx := pix.NewCanvas(buf, blur, pix.White)
	rng := seed.New()

	// Core state: energy determines the radius, bleeding switches
	// between charge and discharge.
	energy := 0
	bleeding := false

	// Halo thickness, randomly nudged each frame.
	jitter := 0
	target := 0

	accumulatorStep := 2 * math.Pi / accumulatorRate
	accumulatorOffset := 0.0
	var heat [accumulatorCount]uint8
	var baseAngles [accumulatorCount]float64
	for i := range baseAngles {
		baseAngles[i] = float64(i) * 2 * math.Pi / accumulatorCount
	}

	for frame := 0; frame < frames; frame++ {
		gfx.SetFill(blur)
		gfx.Fill()

		if bleeding {
			energy -= coreBleedRate
			energy = max(energy, coreMinEnergy)
		} else {
			energy += rng.IntN(coreChargeRate)
			energy = min(energy, coreMaxEnergy)
		}

		accumulatorOffset += accumulatorStep
		if accumulatorOffset > 2*math.Pi {
			accumulatorOffset -= 2 * math.Pi
		}

		jitter += rng.IntN(2*haloJitter-1) - (haloJitter - 1)
		jitter = min(max(jitter, haloMinSize), haloMaxSize)
		radius := coreMaxSize - energy

		for i := 0; i < accumulatorCount; i++ {
			angle := baseAngles[i] + accumulatorOffset
			x := int(accumulatorRadius*math.Cos(angle)) + centerX
			y := int(accumulatorRadius*math.Sin(angle)) + centerY

			if bleeding && i == target {
				offset := accumulatorSize / 2
				bolt(gfx, x, y)
				bolt(gfx, x-offset, y-offset)
				bolt(gfx, x+offset, y-offset)
				bolt(gfx, x-offset, y+offset)
				bolt(gfx, x+offset, y+offset)

				if 255-heat[i] >= accumulatorHeat {
					heat[i] += accumulatorHeat
				} else {
					heat[i] = 255
				}
			} else if heat[i] >= accumulatorCool {
				heat[i] -= accumulatorCool
			} else {
				heat[i] = 0
			}

			gfx.SetFill(pix.RGB(0, heat[i], heat[i]))
			gfx.FillCircle(x, y, accumulatorSize)
		}

		// Core halo first, so the bolts layer on top of it.
		gfx.SetFill(fillHalo)
		gfx.FillCircle(centerX, centerY, radius+jitter)

		for i := 0; i < accumulatorCount; i++ {
			if (bleeding && target == i) || heat[i] < accumulatorMinHeat {
				continue
			}

			angle := baseAngles[i] + accumulatorOffset
			x := int(accumulatorRadius*math.Cos(angle)) + centerX
			y := int(accumulatorRadius*math.Sin(angle)) + centerY

			gfx.SetStroke(pix.RGB(0, heat[i], heat[i]))
			offset := accumulatorSize / 2
			gfx.StrokeLine(x, y, centerX, -100)
			gfx.StrokeLine(x-offset, y-offset, centerX, -100)
			gfx.StrokeLine(x+offset, y-offset, centerX, -100)
			gfx.StrokeLine(x-offset, y+offset, centerX, -100)
			gfx.StrokeLine(x+offset, y+offset, centerX, -100)
		}

		// Post-fill the core so it tints the bolts passing through it.
		gfx.SetFill(fill)
		gfx.FillCircle(centerX, centerY, radius)

		// Radial shading: darker toward the center of the core, and a
		// faint highlight sweeping the halo rim with the accumulators.
		gfx.GradientFillCircle(centerX, centerY, radius+jitter, shadeCore)
		phase := accumulatorOffset
		gfx.GradientCircle(centerX, centerY, radius+jitter, func(theta, _ float64) pix.Color {
			glow := 0.5 + 0.5*math.Cos(theta-phase)
			return pix.RGBA(255, 255, 255, uint8(glow*96))
		})

		if err := buf.WritePPM(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "corepulse:", err)
			os.Exit(1)
		}

		if bleeding && energy == coreMinEnergy {
			bleeding = false
			target = (target + 1) % accumulatorCount
		} else if energy == coreMaxEnergy {
			bleeding = true
		}
	}
}
