package coins

import (
	"testing"

	"github.com/vovakirdan/coinboard/internal/config"
)

func testOptions() Options {
	return OptionsFromConfig(config.DefaultCoinsConfig())
}

// buildSession lays out a session by hand: avatar at (row, col) and one
// coin per entry in coinCells. Coins under the avatar are collected at once,
// as NewSession does.
func buildSession(t *testing.T, width, height, row, col int, coinCells ...[2]int) *Session {
	t.Helper()

	opts := testOptions()
	grid, err := BuildGrid(width, height)
	if err != nil {
		t.Fatalf("BuildGrid(%d, %d) failed: %v", width, height, err)
	}

	s := &Session{
		id:         "test-session",
		opts:       opts,
		grid:       grid,
		coins:      make(map[int]Coin),
		controller: NewController(width, height, opts.CellSize, opts.Bounds),
	}
	for i, cc := range coinCells {
		grid.Cell(cc[0], cc[1]).Coins++
		s.coins[i] = Coin{ID: i, Row: cc[0], Col: cc[1]}
	}
	s.avatar = &Avatar{Top: row * opts.CellSize, Left: col * opts.CellSize}
	grid.Cell(row, col).Avatar = true

	s.collect()
	s.checkWin()
	return s
}
