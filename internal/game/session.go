package game

import (
	"math/rand/v2"
	"time"
)

// Session drives one game: it owns the board, the status state machine and
// the clock. Everything is synchronous; callers serialize access themselves.
type Session struct {
	Board     *Board
	Status    Status
	StartedAt time.Time
	EndedAt   time.Time
}

// NewSession prepares an idle game. The board exists (so cells can already be
// flagged) but carries no mines: placement happens on the first reveal, which
// keeps the first-clicked cell and its neighbours safe.
func NewSession(rows, cols, mineCount int) (*Session, error) {
	b, err := NewBoard(rows, cols, mineCount)
	if err != nil {
		return nil, err
	}
	return &Session{Board: b, Status: StatusIdle}, nil
}

// Reveal opens a cell and re-evaluates the game. The first effective reveal
// places the mines and starts the clock. On a terminal session this is a
// no-op returning an empty result.
func (s *Session) Reveal(row, col int, r *rand.Rand) (RevealResult, error) {
	if !s.Board.InBounds(row, col) {
		return RevealResult{}, OutOfBoundsError{row, col}
	}
	if s.Status.Terminal() {
		return RevealResult{}, nil
	}
	if s.Status == StatusIdle {
		if s.Board.At(row, col).State != CellClosed {
			// a flagged cell does not start the game
			return RevealResult{}, nil
		}
		s.Board.placeMines(row, col, r)
		s.Status = StatusPlaying
		s.StartedAt = time.Now().UTC()
	}
	res := s.Board.Reveal(row, col)
	s.settle(Evaluate(s.Board, res))
	return res, nil
}

// Chord opens the closed neighbours of a satisfied open cell (see
// [Board.Chord]) and re-evaluates the game.
func (s *Session) Chord(row, col int, r *rand.Rand) (RevealResult, error) {
	if !s.Board.InBounds(row, col) {
		return RevealResult{}, OutOfBoundsError{row, col}
	}
	if s.Status != StatusPlaying {
		return RevealResult{}, nil
	}
	res := s.Board.Chord(row, col)
	s.settle(Evaluate(s.Board, res))
	return res, nil
}

// ToggleFlag flips the flag on a closed cell. Flagging never changes the game
// status and never ends the game; on a terminal session it is a no-op.
func (s *Session) ToggleFlag(row, col int) (CellState, error) {
	if !s.Board.InBounds(row, col) {
		return CellClosed, OutOfBoundsError{row, col}
	}
	if s.Status.Terminal() {
		return s.Board.At(row, col).State, nil
	}
	return s.Board.ToggleFlag(row, col), nil
}

// Forfeit ends a non-terminal game as lost without opening anything.
func (s *Session) Forfeit() {
	if s.Status.Terminal() {
		return
	}
	s.Status = StatusLost
	now := time.Now().UTC()
	if s.StartedAt.IsZero() {
		s.StartedAt = now
	}
	s.EndedAt = now
}

func (s *Session) settle(status Status) {
	s.Status = status
	if status.Terminal() {
		s.EndedAt = time.Now().UTC()
	}
}

// Playtime is the elapsed time between the first reveal and the terminal
// transition (or now, while still playing).
func (s *Session) Playtime() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	if s.EndedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.EndedAt.Sub(s.StartedAt)
}
