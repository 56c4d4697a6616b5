package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsBadConfigurations(t *testing.T) {
	tests := []struct {
		name                  string
		rows, cols, mineCount int
	}{
		{"zero rows", 0, 5, 1},
		{"zero cols", 5, 0, 1},
		{"negative mines", 5, 5, -1},
		{"all cells mined", 5, 5, 25},
		{"too many mines", 5, 5, 26},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewBoard(test.rows, test.cols, test.mineCount)
			var ice InvalidConfigurationError
			require.ErrorAs(t, err, &ice)
			assert.Equal(t, test.rows, ice.Rows)
			assert.Equal(t, test.cols, ice.Cols)
			assert.Equal(t, test.mineCount, ice.MineCount)
		})
	}
}

func TestNewBoardStartsClosedAndUnmined(t *testing.T) {
	b, err := NewBoard(4, 7, 5)
	require.NoError(t, err)
	assert.False(t, b.Mined)
	require.Len(t, b.Cells, 28)
	for i, cell := range b.Cells {
		assert.Equal(t, CellClosed, cell.State, "cell %d", i)
		assert.False(t, cell.HasMine, "cell %d", i)
	}
}

func TestMineCountIsExact(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tests := []struct {
		name                  string
		rows, cols, mineCount int
	}{
		{"9x9(10)", 9, 9, 10},
		{"9x9(35)", 9, 9, 35},
		{"16x16(40)", 16, 16, 40},
		{"16x30(99)", 16, 30, 99},
		{"1x2(1)", 1, 2, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := Generate(test.rows, test.cols, test.mineCount, 0, 0, r)
			require.NoError(t, err)
			placed := 0
			for _, cell := range b.Cells {
				if cell.HasMine {
					placed++
				}
			}
			assert.Equal(t, test.mineCount, placed)
		})
	}
}

func TestAdjacencyMatchesBruteForceRecount(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		rows := 2 + r.IntN(14)
		cols := 2 + r.IntN(14)
		mineCount := r.IntN(rows * cols / 2)
		b, err := Generate(rows, cols, mineCount, r.IntN(rows), r.IntN(cols), r)
		require.NoError(t, err)
		for row := range rows {
			for col := range cols {
				cell := b.At(row, col)
				if cell.HasMine {
					continue
				}
				want := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						rr, cc := row+dr, col+dc
						if 0 <= rr && rr < rows && 0 <= cc && cc < cols &&
							b.At(rr, cc).HasMine {
							want++
						}
					}
				}
				require.Equal(
					t, want, int(cell.Adjacent),
					"%dx%d(%d) @ %d:%d", rows, cols, mineCount, row, col,
				)
			}
		}
	}
}

func TestGenerateSafeZone(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{3, 4, 9} {
		mineCount := size*size - 9
		b, err := Generate(size, size, mineCount, 1, 1, r)
		require.NoError(t, err)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				assert.False(
					t, b.At(1+dr, 1+dc).HasMine,
					"mine inside safe zone at %d:%d", 1+dr, 1+dc,
				)
			}
		}
	}
}

func TestGenerateSafeZoneFallback(t *testing.T) {
	// 23 mines on a 5x5 board cannot spare a 3x3 zone; only the clicked
	// cell stays clear.
	r := rand.New(rand.NewPCG(1, 2))
	b, err := Generate(5, 5, 23, 2, 2, r)
	require.NoError(t, err)
	assert.False(t, b.At(2, 2).HasMine)
	placed := 0
	for _, cell := range b.Cells {
		if cell.HasMine {
			placed++
		}
	}
	assert.Equal(t, 23, placed)
}

func TestGenerateRejectsOutOfBoundsSafeCell(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	_, err := Generate(5, 5, 3, 5, 0, r)
	var oob OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, 5, oob.Row)
}

func TestToggleFlag(t *testing.T) {
	b, err := NewBoard(2, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, CellFlagged, b.ToggleFlag(0, 0))
	assert.Equal(t, CellClosed, b.ToggleFlag(0, 0))

	b.At(1, 1).State = CellOpen
	assert.Equal(t, CellOpen, b.ToggleFlag(1, 1))
}
