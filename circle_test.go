package pix

import (
	"math"
	"testing"
)

// collectCircle records the distinct pixels plotCircle visits for a
// circle centered at the origin.
func collectCircle(r int) map[point]bool {
	pts := make(map[point]bool)
	plotCircle(0, 0, r, func(px, py int) {
		pts[point{px, py}] = true
	})
	return pts
}

// collectFill records the distinct pixels spanCircle covers for a
// circle centered at the origin.
func collectFill(r int) map[point]bool {
	pts := make(map[point]bool)
	spanCircle(0, 0, r, func(xl, xr, py int) {
		for px := xl; px <= xr; px++ {
			pts[point{px, py}] = true
		}
	})
	return pts
}

// TestPlotCircle_ZeroRadius verifies the degenerate radius terminates
// and plots exactly the center pixel.
func TestPlotCircle_ZeroRadius(t *testing.T) {
	pts := collectCircle(0)
	if len(pts) != 1 || !pts[point{0, 0}] {
		t.Errorf("plotted %v, want exactly the center", pts)
	}
}

// TestPlotCircle_Symmetry verifies the 4-fold mirror symmetry property
// the recurrence is chosen for: every plotted pixel implies its three
// mirrors.
func TestPlotCircle_Symmetry(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10, 25} {
		pts := collectCircle(r)
		for p := range pts {
			for _, m := range []point{{-p.x, p.y}, {p.x, -p.y}, {-p.x, -p.y}} {
				if !pts[m] {
					t.Errorf("r=%d: pixel %+v plotted but mirror %+v missing", r, p, m)
				}
			}
		}
	}
}

// TestPlotCircle_OnRadius verifies every outline pixel sits within one
// pixel of the ideal circle and the cardinal extremes are hit exactly.
func TestPlotCircle_OnRadius(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10, 25} {
		pts := collectCircle(r)
		for p := range pts {
			dist := math.Hypot(float64(p.x), float64(p.y))
			if math.Abs(dist-float64(r)) >= 1 {
				t.Errorf("r=%d: pixel %+v at distance %.2f", r, p, dist)
			}
		}
		for _, cardinal := range []point{{r, 0}, {-r, 0}, {0, r}, {0, -r}} {
			if !pts[cardinal] {
				t.Errorf("r=%d: cardinal pixel %+v missing", r, cardinal)
			}
		}
	}
}

// TestFillCircle_WithinDisk verifies fill spans stay inside the disk
// (with the sub-pixel slack the integer recurrence allows) and are
// 4-fold symmetric.
func TestFillCircle_WithinDisk(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10, 25} {
		pts := collectFill(r)
		if len(pts) == 0 {
			t.Fatalf("r=%d: nothing filled", r)
		}
		for p := range pts {
			dist := math.Hypot(float64(p.x), float64(p.y))
			if dist >= float64(r)+1 {
				t.Errorf("r=%d: filled pixel %+v outside disk (distance %.2f)", r, p, dist)
			}
			for _, m := range []point{{-p.x, p.y}, {p.x, -p.y}, {-p.x, -p.y}} {
				if !pts[m] {
					t.Errorf("r=%d: filled pixel %+v but mirror %+v missing", r, p, m)
				}
			}
		}
		if !pts[point{0, 0}] {
			t.Errorf("r=%d: center not filled", r)
		}
	}
}

// TestFillCircle_CoversRow verifies the widest scanline spans the full
// diameter.
func TestFillCircle_CoversRow(t *testing.T) {
	pts := collectFill(5)
	for x := -5; x <= 5; x++ {
		if !pts[point{x, 0}] {
			t.Errorf("center row pixel (%d, 0) not filled", x)
		}
	}
}

// TestGradientCircle verifies the shader receives normalized polar
// coordinates: distance about 1 on the outline, angle within [-π, π].
func TestGradientCircle(t *testing.T) {
	buf := NewPixelBuffer(32, 32, Black)
	gfx := NewCanvas(buf, Black, Black)

	r := 10
	calls := 0
	gfx.GradientCircle(16, 16, r, func(theta, d float64) Color {
		calls++
		if theta < -math.Pi || theta > math.Pi {
			t.Errorf("theta = %v out of range", theta)
		}
		if math.Abs(d-1) > 1/float64(r) {
			t.Errorf("outline distance ratio = %v, want about 1", d)
		}
		return White
	})
	if calls == 0 {
		t.Fatal("shader never called")
	}
}

// TestGradientFillCircle verifies interior pixels see ratios spanning
// the disk, including the center at 0.
func TestGradientFillCircle(t *testing.T) {
	buf := NewPixelBuffer(32, 32, Black)
	gfx := NewCanvas(buf, Black, Black)

	sawCenter := false
	gfx.GradientFillCircle(16, 16, 10, func(_, d float64) Color {
		if d > 1+0.1 {
			t.Errorf("fill distance ratio = %v, want <= 1", d)
		}
		if d == 0 {
			sawCenter = true
		}
		return White
	})
	if !sawCenter {
		t.Error("shader never saw the center pixel")
	}
}

// TestStrokeCircle_UsesStrokeState verifies the plain variant consumes
// the painter state.
func TestStrokeCircle_UsesStrokeState(t *testing.T) {
	buf := NewPixelBuffer(16, 16, Black)
	gfx := NewCanvas(buf, Black, RGB(9, 9, 9))

	gfx.StrokeCircle(8, 8, 5)
	if got, _ := buf.Get(13, 8); got != RGB(9, 9, 9) {
		t.Errorf("outline pixel = %+v, want stroke value", got)
	}

	gfx.SetFill(RGB(4, 4, 4))
	gfx.FillCircle(8, 8, 2)
	if got, _ := buf.Get(8, 8); got != RGB(4, 4, 4) {
		t.Errorf("center pixel = %+v, want fill value", got)
	}
}
