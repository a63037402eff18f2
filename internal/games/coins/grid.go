// Package coins implements the coin collector board game: a grid of cells,
// coins scattered at random, and an avatar that collects them one step at a time.
package coins

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a board width or height is rejected.
	ErrInvalidDimension = errors.New("coins: invalid board dimension")

	// ErrMissingGrid marks use of a session whose grid was never built.
	ErrMissingGrid = errors.New("coins: grid not built")

	// ErrMissingAvatar marks use of a session whose avatar was never placed.
	ErrMissingAvatar = errors.New("coins: avatar not placed")
)

// Cell is one addressable board position.
type Cell struct {
	Row, Col int
	Coins    int  // Coins stacked here
	Avatar   bool // Whether the avatar stands here
}

// Empty reports whether nothing occupies the cell.
func (c Cell) Empty() bool {
	return c.Coins == 0 && !c.Avatar
}

// Grid is the full height x width collection of cells.
// Its shape is fixed at construction; cell contents change during play.
type Grid struct {
	width  int
	height int
	rows   [][]Cell
}

// ValidateDimensions checks a board size. A non-positive max disables the upper bound.
func ValidateDimensions(width, height, maxWidth, maxHeight int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d must be positive", ErrInvalidDimension, width, height)
	}
	if maxWidth > 0 && width > maxWidth {
		return fmt.Errorf("%w: width %d exceeds %d", ErrInvalidDimension, width, maxWidth)
	}
	if maxHeight > 0 && height > maxHeight {
		return fmt.Errorf("%w: height %d exceeds %d", ErrInvalidDimension, height, maxHeight)
	}
	return nil
}

// BuildGrid creates height rows of width empty cells in row-major order.
func BuildGrid(width, height int) (*Grid, error) {
	if err := ValidateDimensions(width, height, 0, 0); err != nil {
		return nil, err
	}

	rows := make([][]Cell, height)
	for r := range rows {
		rows[r] = make([]Cell, width)
		for c := range rows[r] {
			rows[r][c] = Cell{Row: r, Col: c}
		}
	}

	return &Grid{width: width, height: height, rows: rows}, nil
}

// Width returns the number of cells per row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.rows[row][col]
}

// Row returns a copy of one row.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.height {
		return nil
	}
	out := make([]Cell, g.width)
	copy(out, g.rows[row])
	return out
}
