package game

import (
	"fmt"
	"strconv"
	"strings"
)

// CellInfo is what a renderer may know about one cell.
type CellInfo int8

const (
	ViewClosed  CellInfo = -2
	ViewFlagged CellInfo = -1
	// 0-8 for open cells with the given neighbouring mine count
	ViewCorrectFlag  CellInfo = 64 // post-game-over
	ViewExplodedMine CellInfo = 65
	ViewWrongFlag    CellInfo = 66
	ViewMine         CellInfo = 67
)

func (s CellInfo) String() string {
	switch {
	case s == ViewClosed:
		return " "
	case s == ViewFlagged:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	case s == ViewExplodedMine:
		return "X"
	case s == ViewMine:
		return "o"
	case s == ViewCorrectFlag:
		return "+"
	case s == ViewWrongFlag:
		return "-"
	default:
		return "!"
	}
}

// BoardView is a read-only snapshot for rendering. Adjacency counts appear
// only on open cells and mine positions stay hidden until the game is lost,
// at which point exploded, unflagged and wrongly flagged cells are told apart
// for the end-of-game display.
type BoardView struct {
	Rows      int        `json:"rows"`
	Cols      int        `json:"cols"`
	MineCount int        `json:"mine_count"`
	Status    Status     `json:"-"`
	Cells     []CellInfo `json:"cells"`
}

func (s *Session) View() BoardView {
	b := s.Board
	view := BoardView{
		Rows:      b.Rows,
		Cols:      b.Cols,
		MineCount: b.MineCount,
		Status:    s.Status,
		Cells:     make([]CellInfo, len(b.Cells)),
	}
	lost := s.Status == StatusLost
	for i := range b.Cells {
		cell := b.Cells[i]
		switch cell.State {
		case CellOpen:
			if cell.HasMine {
				view.Cells[i] = ViewExplodedMine // only reachable once lost
			} else {
				view.Cells[i] = CellInfo(cell.Adjacent)
			}
		case CellFlagged:
			switch {
			case !lost:
				view.Cells[i] = ViewFlagged
			case cell.HasMine:
				view.Cells[i] = ViewCorrectFlag
			default:
				view.Cells[i] = ViewWrongFlag
			}
		default:
			if lost && cell.HasMine {
				view.Cells[i] = ViewMine
			} else {
				view.Cells[i] = ViewClosed
			}
		}
	}
	return view
}

func (v BoardView) String() string {
	var b strings.Builder
	for row := range v.Rows {
		for col := range v.Cols {
			fmt.Fprint(&b, v.Cells[row*v.Cols+col].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
