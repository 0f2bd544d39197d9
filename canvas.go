package pix

// Canvas is a drawing surface over any Buffer capability. It holds the
// painter state — a current fill value and a current stroke value —
// and rasterizes primitives into the underlying buffer. SetFill and
// SetStroke mutate the state; every Fill*/Stroke* call consumes the
// state current at call time.
type Canvas[E any] struct {
	buf    Buffer[E]
	fill   E
	stroke E
}

// NewCanvas creates a canvas over buf with the given initial fill and
// stroke values. The canvas takes exclusive ownership of the buffer.
func NewCanvas[E any](buf Buffer[E], fill, stroke E) *Canvas[E] {
	return &Canvas[E]{buf: buf, fill: fill, stroke: stroke}
}

// Buffer returns the underlying buffer, e.g. for serialization.
func (c *Canvas[E]) Buffer() Buffer[E] { return c.buf }

// SetFill sets the current fill value.
func (c *Canvas[E]) SetFill(v E) { c.fill = v }

// SetStroke sets the current stroke value.
func (c *Canvas[E]) SetStroke(v E) { c.stroke = v }

// Point returns the buffer element at (x, y), reporting false out of
// bounds.
func (c *Canvas[E]) Point(x, y int) (E, bool) {
	return c.buf.Get(x, y)
}

// SetPoint writes a single element, subject to the buffer's write
// semantics.
func (c *Canvas[E]) SetPoint(x, y int, v E) {
	c.buf.Put(x, y, v)
}

// Fill writes the current fill value to every pixel of the buffer.
func (c *Canvas[E]) Fill() {
	w, h := c.buf.Width(), c.buf.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.buf.Put(x, y, c.fill)
		}
	}
}

// FillRect writes the current fill value to every pixel of the w×h
// rectangle whose top-left corner is (x, y). Parts outside the buffer
// are clipped by the buffer's bounds check.
func (c *Canvas[E]) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.buf.Put(px, py, c.fill)
		}
	}
}

// StrokeRect writes the current stroke value to the border pixels of
// the w×h rectangle whose top-left corner is (x, y): the full top and
// bottom rows, and the left and right columns between them.
func (c *Canvas[E]) StrokeRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for px := x; px < x+w; px++ {
		c.buf.Put(px, y, c.stroke)
		c.buf.Put(px, y+h-1, c.stroke)
	}
	for py := y + 1; py < y+h-1; py++ {
		c.buf.Put(x, py, c.stroke)
		c.buf.Put(x+w-1, py, c.stroke)
	}
}

// Mask combines two canvases element-wise: for every coordinate, dst's
// element is replaced by combine(dstElem, maskElem). The element types
// may differ, which is how a stencil buffer modulates a color buffer.
// If the two buffers have different dimensions the call is a no-op;
// callers that need the composite to take effect must guarantee
// matching dimensions themselves.
func Mask[E, M any](dst *Canvas[E], mask *Canvas[M], combine func(E, M) E) {
	w, h := dst.buf.Width(), dst.buf.Height()
	if w != mask.buf.Width() || h != mask.buf.Height() {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d, _ := dst.buf.Get(x, y)
			m, _ := mask.buf.Get(x, y)
			dst.buf.Put(x, y, combine(d, m))
		}
	}
}
