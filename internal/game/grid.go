package game

// MaxGridExtent bounds either grid dimension so a single game cannot
// allocate unbounded storage.
const MaxGridExtent = 64

// Grid is a fixed-size rectangular board stored row-major. Cells only
// ever transition between unclaimed and owned; there is no removal.
// The grid itself does no legality checks beyond bounds, that is the
// engine's job.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
	owned  int
}

func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 || width > MaxGridExtent || height > MaxGridExtent {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

func (g *Grid) idx(c Coord) int { return c.Y*g.Width + c.X }

// CellAt returns the cell at c, or ErrOutOfBounds.
func (g *Grid) CellAt(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[g.idx(c)], nil
}

// Claim sets the owner of c unconditionally and returns the previous
// owner. The caller adjusts scores: the previous owner loses the cell,
// the new owner gains it, repainting your own cell changes nothing.
func (g *Grid) Claim(c Coord, owner string, round int) (prev string, err error) {
	if !g.InBounds(c) {
		return "", ErrOutOfBounds
	}
	cell := &g.cells[g.idx(c)]
	prev = cell.Owner
	if prev == "" {
		g.owned++
	}
	cell.Owner = owner
	cell.ClaimedAt = round
	return prev, nil
}

// ClaimedCells is the number of cells that currently have an owner.
func (g *Grid) ClaimedCells() int { return g.owned }

// Cells returns a deep copy of the board, indexed [y][x].
func (g *Grid) Cells() [][]Cell {
	rows := make([][]Cell, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]Cell, g.Width)
		copy(row, g.cells[y*g.Width:(y+1)*g.Width])
		rows[y] = row
	}
	return rows
}
