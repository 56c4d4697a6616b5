package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// centerMineSession is a playing 3x3 session with a single mine at 1:1, so
// every safe cell is numbered and reveals never cascade.
func centerMineSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(3, 3, 1)
	require.NoError(t, err)
	s.Board.At(1, 1).HasMine = true
	s.Board.computeAdjacency()
	s.Board.Mined = true
	s.Status = StatusPlaying
	s.StartedAt = time.Now().UTC()
	return s
}

func TestSessionWinDetection(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s := centerMineSession(t)

	safe := []CellPos{
		{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1},
	}
	for _, pos := range safe {
		res, err := s.Reveal(pos.Row, pos.Col, rnd)
		require.NoError(t, err)
		require.False(t, res.HitMine)
		require.Equal(t, StatusPlaying, s.Status, "premature end after %v", pos)
	}

	res, err := s.Reveal(2, 2, rnd)
	require.NoError(t, err)
	assert.False(t, res.HitMine)
	assert.Equal(t, StatusWon, s.Status)
	assert.False(t, s.EndedAt.IsZero())
}

func TestSessionLossDetection(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s := centerMineSession(t)

	res, err := s.Reveal(1, 1, rnd)
	require.NoError(t, err)
	assert.True(t, res.HitMine)
	assert.Equal(t, []CellPos{{1, 1}}, res.Opened)
	assert.Equal(t, StatusLost, s.Status)
	assert.False(t, s.EndedAt.IsZero())
}

func TestSessionTerminalStatusFreezesBoard(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s := centerMineSession(t)
	_, err := s.Reveal(1, 1, rnd)
	require.NoError(t, err)
	require.Equal(t, StatusLost, s.Status)

	res, err := s.Reveal(0, 0, rnd)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, CellClosed, s.Board.At(0, 0).State)

	state, err := s.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellClosed, state)
}

func TestSessionLazyPlacementFirstClickSafety(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{3, 4, 9, 16} {
		mineCount := size*size - 9
		for _, start := range []CellPos{{0, 0}, {size / 2, size / 2}, {size - 1, size - 1}} {
			s, err := NewSession(size, size, mineCount)
			require.NoError(t, err)
			assert.Equal(t, StatusIdle, s.Status)
			assert.False(t, s.Board.Mined)

			res, err := s.Reveal(start.Row, start.Col, rnd)
			require.NoError(t, err)
			require.False(t, res.HitMine, "first click %v on %dx%d", start, size, size)
			assert.True(t, s.Board.Mined)
			assert.NotEqual(t, StatusIdle, s.Status)

			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					r, c := start.Row+dr, start.Col+dc
					if s.Board.InBounds(r, c) {
						assert.False(
							t, s.Board.At(r, c).HasMine,
							"mine next to first click at %d:%d", r, c,
						)
					}
				}
			}
		}
	}
}

func TestSessionFlaggingNeverStartsOrEndsGame(t *testing.T) {
	s, err := NewSession(4, 4, 2)
	require.NoError(t, err)

	state, err := s.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellFlagged, state)
	assert.Equal(t, StatusIdle, s.Status)
	assert.False(t, s.Board.Mined)

	// a reveal on the flagged cell is a no-op and must not place mines
	rnd := rand.New(rand.NewPCG(1, 2))
	res, err := s.Reveal(0, 0, rnd)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, StatusIdle, s.Status)
	assert.False(t, s.Board.Mined)

	state, err = s.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellClosed, state)
}

func TestSessionOutOfBounds(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s, err := NewSession(3, 3, 1)
	require.NoError(t, err)

	_, err = s.Reveal(3, 0, rnd)
	var oob OutOfBoundsError
	require.ErrorAs(t, err, &oob)

	_, err = s.ToggleFlag(0, -1)
	require.ErrorAs(t, err, &oob)

	_, err = s.Chord(0, 3, rnd)
	require.ErrorAs(t, err, &oob)
}

func TestSessionForfeit(t *testing.T) {
	s, err := NewSession(3, 3, 1)
	require.NoError(t, err)

	s.Forfeit()
	assert.Equal(t, StatusLost, s.Status)
	assert.False(t, s.EndedAt.IsZero())

	endedAt := s.EndedAt
	s.Forfeit()
	assert.Equal(t, endedAt, s.EndedAt)
}

func TestSessionForfeitDoesNotOverrideWin(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s := centerMineSession(t)
	for _, pos := range []CellPos{
		{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	} {
		_, err := s.Reveal(pos.Row, pos.Col, rnd)
		require.NoError(t, err)
	}
	require.Equal(t, StatusWon, s.Status)
	s.Forfeit()
	assert.Equal(t, StatusWon, s.Status)
}

func TestSessionPlaytime(t *testing.T) {
	s := centerMineSession(t)
	s.StartedAt = time.Now().UTC().Add(-time.Minute)
	rnd := rand.New(rand.NewPCG(1, 2))
	_, err := s.Reveal(1, 1, rnd)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Playtime(), time.Minute)
}

func TestSessionGobRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s, err := NewSession(9, 9, 10)
	require.NoError(t, err)
	_, err = s.Reveal(4, 4, rnd)
	require.NoError(t, err)
	_, err = s.ToggleFlag(0, 0)
	require.NoError(t, err)

	buf, err := s.Bytes()
	require.NoError(t, err)
	decoded, err := DecodeSession(buf)
	require.NoError(t, err)

	assert.Equal(t, s.Status, decoded.Status)
	assert.Equal(t, s.Board.Cells, decoded.Board.Cells)
	assert.Equal(t, s.Board.Mined, decoded.Board.Mined)
	assert.True(t, s.StartedAt.Equal(decoded.StartedAt))
}
