package game

type CellState int8

const (
	CellClosed CellState = iota
	CellOpen
	CellFlagged
)

func (s CellState) String() string {
	switch s {
	case CellClosed:
		return "closed"
	case CellOpen:
		return "open"
	case CellFlagged:
		return "flagged"
	default:
		return "invalid"
	}
}

type Cell struct {
	HasMine bool
	State   CellState
	// Adjacent caches the neighbouring mine count. It is computed once when
	// mines are placed and is meaningless for mine cells.
	Adjacent int8
}

// Board is a rectangular grid of cells stored row-major. A board belongs to
// exactly one [Session] and is never shared.
type Board struct {
	Rows, Cols int
	MineCount  int
	Cells      []Cell
	// Mined is false until mines have been placed (placement is deferred to
	// the first reveal to guarantee first-click safety).
	Mined bool
	// CascadeFlagged lets the cascade auto-open flagged neighbours. The
	// conventional behaviour is to skip them.
	CascadeFlagged bool
}

var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func NewBoard(rows, cols, mineCount int) (*Board, error) {
	if rows < 1 || cols < 1 || mineCount < 0 || mineCount >= rows*cols {
		return nil, InvalidConfigurationError{rows, cols, mineCount}
	}
	return &Board{
		Rows:      rows,
		Cols:      cols,
		MineCount: mineCount,
		Cells:     make([]Cell, rows*cols),
	}, nil
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.Rows && 0 <= col && col < b.Cols
}

func (b *Board) index(row, col int) int {
	return row*b.Cols + col
}

func (b *Board) At(row, col int) *Cell {
	return &b.Cells[b.index(row, col)]
}

// CountAdjacentMines recounts mines among the up-to-eight in-bounds
// neighbours of row:col. [Cell.Adjacent] holds the cached value; this scan
// exists for placement and for verification.
func (b *Board) CountAdjacentMines(row, col int) int {
	n := 0
	for _, d := range neighbourOffsets {
		r, c := row+d[0], col+d[1]
		if b.InBounds(r, c) && b.At(r, c).HasMine {
			n++
		}
	}
	return n
}

func (b *Board) computeAdjacency() {
	for row := range b.Rows {
		for col := range b.Cols {
			cell := b.At(row, col)
			if !cell.HasMine {
				cell.Adjacent = int8(b.CountAdjacentMines(row, col))
			}
		}
	}
}

// OpenCount reports how many cells are open. The game is won once it reaches
// Rows*Cols-MineCount.
func (b *Board) OpenCount() int {
	n := 0
	for i := range b.Cells {
		if b.Cells[i].State == CellOpen {
			n++
		}
	}
	return n
}

// ToggleFlag flips a closed cell to flagged and back. Open cells are left
// alone. Returns the (possibly unchanged) state of the cell.
func (b *Board) ToggleFlag(row, col int) CellState {
	cell := b.At(row, col)
	switch cell.State {
	case CellClosed:
		cell.State = CellFlagged
	case CellFlagged:
		cell.State = CellClosed
	}
	return cell.State
}
