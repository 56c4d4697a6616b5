package game

type CellPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// RevealResult lists the cells a reveal opened. An empty result means the
// action was a no-op, not a fault.
type RevealResult struct {
	Opened  []CellPos `json:"opened"`
	HitMine bool      `json:"hit_mine"`
}

func (r RevealResult) Empty() bool {
	return len(r.Opened) == 0 && !r.HitMine
}

// Reveal opens a closed cell. Opening a mine stops immediately; opening a
// cell with no neighbouring mines cascades breadth-first through its closed
// neighbours. Each cell is processed at most once, so the walk is bounded by
// Rows*Cols. Flagged cells are never opened directly and are skipped by the
// cascade unless [Board.CascadeFlagged] is set.
func (b *Board) Reveal(row, col int) RevealResult {
	var res RevealResult

	if b.At(row, col).State != CellClosed {
		return res
	}

	if b.At(row, col).HasMine {
		b.At(row, col).State = CellOpen
		res.Opened = append(res.Opened, CellPos{row, col})
		res.HitMine = true
		return res
	}

	visited := make([]bool, len(b.Cells))
	queue := []int{b.index(row, col)}
	visited[queue[0]] = true

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		cell := &b.Cells[i]
		cell.State = CellOpen
		res.Opened = append(res.Opened, CellPos{i / b.Cols, i % b.Cols})

		if cell.Adjacent != 0 {
			continue
		}
		/*
		 * A zero-count cell has no mined neighbours by definition, so
		 * the cascade can never open a mine.
		 */
		for _, d := range neighbourOffsets {
			r, c := i/b.Cols+d[0], i%b.Cols+d[1]
			if !b.InBounds(r, c) {
				continue
			}
			j := b.index(r, c)
			if visited[j] {
				continue
			}
			state := b.Cells[j].State
			if state == CellClosed || (state == CellFlagged && b.CascadeFlagged) {
				visited[j] = true
				queue = append(queue, j)
			}
		}
	}

	return res
}

// Chord opens every closed neighbour of an open cell once the player has
// flagged exactly as many neighbours as the cell's mine count. A wrong flag
// makes this lose the game; the walk stops at the first mine hit.
func (b *Board) Chord(row, col int) RevealResult {
	var res RevealResult

	cell := b.At(row, col)
	if cell.State != CellOpen || cell.HasMine {
		return res
	}

	flags := 0
	closed := make([]CellPos, 0, 8)
	for _, d := range neighbourOffsets {
		r, c := row+d[0], col+d[1]
		if !b.InBounds(r, c) {
			continue
		}
		switch b.At(r, c).State {
		case CellFlagged:
			flags++
		case CellClosed:
			closed = append(closed, CellPos{r, c})
		}
	}
	if flags != int(cell.Adjacent) {
		return res
	}

	for _, pos := range closed {
		sub := b.Reveal(pos.Row, pos.Col)
		res.Opened = append(res.Opened, sub.Opened...)
		if sub.HitMine {
			res.HitMine = true
			break
		}
	}
	return res
}
