package pix

import "math"

// CircleShader produces the element for a circle pixel given its polar
// position relative to the center: theta is the angle in radians
// (atan2 convention) and d the distance from the center normalized by
// the radius. Shaders are expected to be pure; they are called once
// per plotted pixel.
type CircleShader[E any] func(theta, d float64) E

// StrokeCircle draws the outline of the circle centered at (cx, cy)
// with radius r, using the current stroke value. A radius of zero
// plots exactly the center pixel.
func (c *Canvas[E]) StrokeCircle(cx, cy, r int) {
	plotCircle(cx, cy, r, func(px, py int) {
		c.buf.Put(px, py, c.stroke)
	})
}

// GradientCircle draws the outline of the circle centered at (cx, cy)
// with radius r, asking shade for the value of each plotted pixel.
func (c *Canvas[E]) GradientCircle(cx, cy, r int, shade CircleShader[E]) {
	plotCircle(cx, cy, r, func(px, py int) {
		c.buf.Put(px, py, c.shadeAt(cx, cy, r, px, py, shade))
	})
}

// FillCircle fills the circle centered at (cx, cy) with radius r,
// using the current fill value.
func (c *Canvas[E]) FillCircle(cx, cy, r int) {
	spanCircle(cx, cy, r, func(xl, xr, py int) {
		for px := xl; px <= xr; px++ {
			c.buf.Put(px, py, c.fill)
		}
	})
}

// GradientFillCircle fills the circle centered at (cx, cy) with radius
// r, asking shade for the value of each pixel.
func (c *Canvas[E]) GradientFillCircle(cx, cy, r int, shade CircleShader[E]) {
	spanCircle(cx, cy, r, func(xl, xr, py int) {
		for px := xl; px <= xr; px++ {
			c.buf.Put(px, py, c.shadeAt(cx, cy, r, px, py, shade))
		}
	})
}

// shadeAt evaluates a circle shader for the pixel (px, py) of a circle
// centered at (cx, cy) with radius r.
func (c *Canvas[E]) shadeAt(cx, cy, r, px, py int, shade CircleShader[E]) E {
	dx := float64(px - cx)
	dy := float64(py - cy)
	theta := math.Atan2(dy, dx)
	d := 0.0
	if r > 0 {
		d = math.Hypot(dx, dy) / float64(r)
	}
	return shade(theta, d)
}

// plotCircle rasterizes a circle outline with the midpoint recurrence,
// exploiting 4-fold symmetry. (relx, rely) walks the second-quadrant
// arc from (-r, 0) to (0, r); err tracks the deviation of the doubled
// implicit equation px²+py²-r², starting at the value for (-r+1, 1).
// Each iteration plots the four mirror points, then advances relx
// and/or rely toward whichever neighbor keeps the error smallest.
func plotCircle(cx, cy, r int, plot func(px, py int)) {
	relx, rely := -r, 0
	err := -2*r + 2

	for relx <= 0 {
		plot(cx+relx, cy+rely)
		plot(cx-relx, cy+rely)
		plot(cx+relx, cy-rely)
		plot(cx-relx, cy-rely)

		e2 := 2 * err
		if e2 >= 2*relx+1 {
			relx++
			err += 2*relx + 1
		}
		if e2 <= 2*rely+1 {
			rely++
			err += 2*rely + 1
		}
	}
}

// spanCircle rasterizes a filled circle with the same recurrence as
// plotCircle, emitting one pair of mirrored horizontal spans per
// scanline. Spans run between the x extents cx+relx and cx-relx and
// are emitted once per rely value, just before rely advances, rather
// than once per relx step, so translucent fills do not re-composite a
// scanline while relx catches up.
func spanCircle(cx, cy, r int, span func(xl, xr, py int)) {
	relx, rely := -r, 0
	err := -2*r + 2

	for relx <= 0 {
		e2 := 2 * err
		if e2 >= 2*relx+1 {
			relx++
			err += 2*relx + 1
		}
		if e2 <= 2*rely+1 {
			span(cx+relx, cx-relx, cy+rely)
			span(cx+relx, cx-relx, cy-rely)
			rely++
			err += 2*rely + 1
		}
	}
}
