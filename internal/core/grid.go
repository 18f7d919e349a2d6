package core

// Frame stores a 2D grid of byte-sized cell values in row-major order.
// It is the display surface the renderers read: one-dimensional sims
// stamp successive generations into its rows.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (f *Frame) Cells() []uint8 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

// SetRow copies one row of cell values into row y. Rows outside the
// frame or of the wrong length are ignored.
func (f *Frame) SetRow(y int, row []uint8) {
	if y < 0 || y >= f.H || len(row) != f.W {
		return
	}
	copy(f.data[y*f.W:(y+1)*f.W], row)
}

// Row returns a view of row y, or nil when y is out of range.
func (f *Frame) Row(y int) []uint8 {
	if y < 0 || y >= f.H {
		return nil
	}
	return f.data[y*f.W : (y+1)*f.W]
}

// Clear fills the frame with zeros.
func (f *Frame) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}
