package pix

// Buffer is the capability shared by all pixel grids: fixed dimensions,
// bounds-checked element access. Get reports false for coordinates
// outside [0,width)×[0,height); Put silently discards out-of-bounds
// writes. The write semantics beyond bounds checking (compositing vs.
// overwrite) belong to the concrete implementation.
type Buffer[E any] interface {
	// Width returns the buffer width in elements.
	Width() int
	// Height returns the buffer height in elements.
	Height() int
	// Get returns the element at (x, y), or the zero value and false if
	// the coordinate is out of bounds.
	Get(x, y int) (E, bool)
	// Put stores v at (x, y) subject to the buffer's write semantics.
	// Out-of-bounds writes are no-ops.
	Put(x, y int, v E)
}
