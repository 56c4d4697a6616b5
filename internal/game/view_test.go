package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewHidesMinesWhilePlaying(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s, err := NewSession(9, 9, 20)
	require.NoError(t, err)
	_, err = s.Reveal(4, 4, rnd)
	require.NoError(t, err)
	require.Equal(t, StatusPlaying, s.Status)

	_, err = s.ToggleFlag(0, 0)
	require.NoError(t, err)

	view := s.View()
	require.Len(t, view.Cells, 81)
	for i, info := range view.Cells {
		cell := s.Board.Cells[i]
		switch cell.State {
		case CellOpen:
			assert.Equal(t, CellInfo(cell.Adjacent), info)
		case CellFlagged:
			assert.Equal(t, ViewFlagged, info)
		default:
			assert.Equal(t, ViewClosed, info, "closed cell %d leaked", i)
		}
	}
}

func TestViewDisclosesMinesOnLoss(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s := centerMineSession(t)
	_, err := s.ToggleFlag(0, 0) // wrong flag
	require.NoError(t, err)
	_, err = s.Reveal(0, 1, rnd)
	require.NoError(t, err)
	_, err = s.Reveal(1, 1, rnd)
	require.NoError(t, err)
	require.Equal(t, StatusLost, s.Status)

	view := s.View()
	assert.Equal(t, ViewWrongFlag, view.Cells[0])
	assert.Equal(t, CellInfo(1), view.Cells[1])
	assert.Equal(t, ViewExplodedMine, view.Cells[4])
	assert.Equal(t, ViewClosed, view.Cells[8])
}

func TestViewCorrectFlagOnLoss(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s := centerMineSession(t)
	s.Board.At(0, 2).HasMine = true // second mine, hand-placed
	s.Board.MineCount = 2
	s.Board.computeAdjacency()

	_, err := s.ToggleFlag(1, 1)
	require.NoError(t, err)
	_, err = s.Reveal(0, 2, rnd)
	require.NoError(t, err)
	require.Equal(t, StatusLost, s.Status)

	view := s.View()
	assert.Equal(t, ViewCorrectFlag, view.Cells[4])
	assert.Equal(t, ViewExplodedMine, view.Cells[2])
}

func TestViewString(t *testing.T) {
	s := centerMineSession(t)
	rnd := rand.New(rand.NewPCG(1, 2))
	_, err := s.Reveal(0, 0, rnd)
	require.NoError(t, err)
	_, err = s.ToggleFlag(1, 1)
	require.NoError(t, err)

	assert.Equal(t, "1     \n  *   \n      \n", s.View().String())
}
