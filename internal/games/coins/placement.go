package coins

import (
	"math/rand"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/core"
)

// Coin is a collectible sitting on one cell until the avatar touches it.
type Coin struct {
	ID       int
	Row, Col int
}

// Avatar is the player-controlled collector.
// Its position is a pixel offset from the board origin in whole cells.
type Avatar struct {
	Top   int
	Left  int
	Steps int
}

// Cell returns the avatar's grid position for the given cell size.
func (a Avatar) Cell(cellSize int) (row, col int) {
	return a.Top / cellSize, a.Left / cellSize
}

// PlaceCoins drops count coins on uniformly random cells.
// Cells are drawn independently, so several coins may share a cell.
func PlaceCoins(g *Grid, rng *rand.Rand, count int) []Coin {
	coins := make([]Coin, 0, count)
	for i := 0; i < count; i++ {
		row := rng.Intn(g.Height())
		col := rng.Intn(g.Width())
		g.Cell(row, col).Coins++
		coins = append(coins, Coin{ID: i, Row: row, Col: col})
	}
	return coins
}

// midpoint rounds n/2 half up.
func midpoint(n int) int {
	return (n + 1) / 2
}

// PlaceAvatar picks a cell near the board center and marks the avatar there.
// If the first candidate is occupied, one more candidate is drawn from the
// same distribution and used whether or not it is free.
func PlaceAvatar(g *Grid, rng *rand.Rand, policy string) (row, col int) {
	rowMid := midpoint(g.Height())
	colMid := midpoint(g.Width())
	d := 1 + rng.Intn(2)

	draw := func() (int, int) {
		var r, c int
		if policy == config.SpawnSpread {
			r = rowMid - d + rng.Intn(2*d)
			c = colMid - d + rng.Intn(2*d)
		} else {
			lo := min(rowMid-d, colMid-d)
			hi := max(rowMid-d, colMid-d)
			r = lo + rng.Intn(hi-lo+1)
			c = lo + rng.Intn(hi-lo+1)
		}
		return core.Clamp(r, 0, g.Height()-1), core.Clamp(c, 0, g.Width()-1)
	}

	row, col = draw()
	if !g.Cell(row, col).Empty() {
		row, col = draw()
	}
	g.Cell(row, col).Avatar = true
	return row, col
}
