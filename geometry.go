package mdv

// Geometry describes the terminal viewport in character cells and the
// pixel size of one cell. It is captured once per render pass and threaded
// through the pipeline as a value; nothing mutates it mid-render.
type Geometry struct {
	Columns    int
	Rows       int
	CellWidth  int // pixels per cell, horizontal
	CellHeight int // pixels per cell, vertical
}

// MaxImageWidth returns the widest image, in pixels, that fits the
// viewport without wrapping.
func (g Geometry) MaxImageWidth() int {
	return g.Columns * g.CellWidth
}

// MaxImageHeight returns the row budget, in pixels. Zero means no budget.
func (g Geometry) MaxImageHeight() int {
	return g.Rows * g.CellHeight
}
