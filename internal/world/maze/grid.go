package maze

// Grid is the backing storage of a maze: width*height cells laid out row
// major, with y = 0 as the southern row. The component that builds the maze
// owns the Grid; a Topology only views it.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a grid with every wall absent. Negative dimensions are
// treated as zero, and a grid with no columns has no rows either.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

// Height returns the number of rows, or 0 when the grid has no columns.
func (g *Grid) Height() int {
	if g.Width() == 0 {
		return 0
	}
	return g.height
}

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// Cell returns a pointer to the cell at (x, y), or false when out of range.
func (g *Grid) Cell(x, y int) (*Cell, bool) {
	if !g.Contains(x, y) {
		return nil, false
	}
	return &g.cells[y*g.width+x], true
}
