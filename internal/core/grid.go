package core

// FloatGrid stores a 2D grid of continuous cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the cell value at (x, y) with toroidal wrapping.
func (g *FloatGrid) At(x, y int) float32 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set writes the cell value at (x, y) with toroidal wrapping.
func (g *FloatGrid) Set(x, y int, v float32) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = v
}

// Fill sets every cell to the same value.
func (g *FloatGrid) Fill(v float32) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	g.Fill(0)
}
