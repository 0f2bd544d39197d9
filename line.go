package pix

import "math"

// LineShader produces the element for a point a fraction t of the way
// along a line, with t in [0, 1] measured by Euclidean distance from
// the start point. Shaders are expected to be pure; they are called
// once per plotted pixel.
type LineShader[E any] func(t float64) E

// StrokeLine draws a line from (x, y) to (x2, y2), inclusive, with the
// current stroke value.
func (c *Canvas[E]) StrokeLine(x, y, x2, y2 int) {
	c.line(x, y, x2, y2, c.stroke)
}

// FillLine draws a line from (x, y) to (x2, y2), inclusive, with the
// current fill value.
func (c *Canvas[E]) FillLine(x, y, x2, y2 int) {
	c.line(x, y, x2, y2, c.fill)
}

func (c *Canvas[E]) line(x, y, x2, y2 int, v E) {
	plotLine(x, y, x2, y2, func(px, py int) {
		c.buf.Put(px, py, v)
	})
}

// GradientLine draws a line from (x, y) to (x2, y2), asking shade for
// the value of each plotted pixel instead of using the stroke state.
func (c *Canvas[E]) GradientLine(x, y, x2, y2 int, shade LineShader[E]) {
	length := math.Hypot(float64(x2-x), float64(y2-y))
	plotLine(x, y, x2, y2, func(px, py int) {
		t := 0.0
		if length > 0 {
			t = math.Hypot(float64(px-x), float64(py-y)) / length
		}
		c.buf.Put(px, py, shade(t))
	})
}

// plotLine rasterizes an 8-connected line from (x, y) to (x2, y2),
// both endpoints included, calling plot for every pixel.
//
// Axis-aligned lines iterate the varying axis directly. General lines
// track the accumulated deviation E from the ideal line
//
//	0 = (py-y)*dx - (px-x)*dy
//
// and step whichever axis (or both, for a diagonal move) keeps the
// doubled error within [dy, dx]. Integer arithmetic throughout, so
// there is no floating-point drift.
func plotLine(x, y, x2, y2 int, plot func(px, py int)) {
	if x == x2 {
		sy := sign(y2 - y)
		for py := y; ; py += sy {
			plot(x, py)
			if py == y2 {
				return
			}
		}
	}
	if y == y2 {
		sx := sign(x2 - x)
		for px := x; ; px += sx {
			plot(px, y)
			if px == x2 {
				return
			}
		}
	}

	dx := abs(x2 - x)
	sx := sign(x2 - x)
	dy := -abs(y2 - y)
	sy := sign(y2 - y)
	err := dx + dy

	px, py := x, y
	for {
		plot(px, py)

		e2 := 2 * err
		if e2 >= dy {
			if px == x2 {
				return
			}
			err += dy
			px += sx
		}
		if e2 <= dx {
			if py == y2 {
				return
			}
			err += dx
			py += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
