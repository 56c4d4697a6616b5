package game

import "math/rand/v2"

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Generate builds a fresh board with mines already placed. safeRow:safeCol
// and its 3x3 neighbourhood are kept mine-free when enough cells remain;
// otherwise only the cell itself is excluded.
func Generate(rows, cols, mineCount, safeRow, safeCol int, r *rand.Rand) (*Board, error) {
	b, err := NewBoard(rows, cols, mineCount)
	if err != nil {
		return nil, err
	}
	if !b.InBounds(safeRow, safeCol) {
		return nil, OutOfBoundsError{safeRow, safeCol}
	}
	b.placeMines(safeRow, safeCol, r)
	return b, nil
}

func (b *Board) placeMines(safeRow, safeCol int, r *rand.Rand) {
	/*
	 * Write down the list of possible mine locations, skipping the
	 * 3x3 zone around the starting cell.
	 */
	candidates := make([]int, 0, b.Rows*b.Cols)
	for row := range b.Rows {
		for col := range b.Cols {
			if absDiff(safeRow, row) > 1 || absDiff(safeCol, col) > 1 {
				candidates = append(candidates, b.index(row, col))
			}
		}
	}

	/*
	 * Dense boards may not leave room for the full safe zone; fall
	 * back to protecting the starting cell alone.
	 */
	if len(candidates) < b.MineCount {
		candidates = candidates[:0]
		for i := range b.Cells {
			if i != b.index(safeRow, safeCol) {
				candidates = append(candidates, i)
			}
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range b.MineCount {
		i := r.IntN(k)
		b.Cells[candidates[i]].HasMine = true
		k--
		candidates[i] = candidates[k]
	}

	b.computeAdjacency()
	b.Mined = true
}
