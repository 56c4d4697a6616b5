package game

import "fmt"

// InvalidConfigurationError reports board parameters that can never form a
// playable game.
type InvalidConfigurationError struct {
	Rows, Cols, MineCount int
}

// [InvalidConfigurationError] implements [error]
func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf(
		"invalid board configuration %dx%d with %d mines",
		e.Rows, e.Cols, e.MineCount,
	)
}

// OutOfBoundsError reports a cell coordinate outside the board.
type OutOfBoundsError struct {
	Row, Col int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell %d:%d is out of bounds", e.Row, e.Col)
}
