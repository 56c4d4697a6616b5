package game

type Status int8

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "invalid"
	}
}

// Terminal statuses accept no further board mutation.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Evaluate decides the game status after a reveal. Pure: inspects the board,
// mutates nothing.
func Evaluate(b *Board, last RevealResult) Status {
	if last.HitMine {
		return StatusLost
	}
	if b.OpenCount() == b.Rows*b.Cols-b.MineCount {
		return StatusWon
	}
	return StatusPlaying
}
