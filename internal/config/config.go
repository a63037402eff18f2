// Package config provides YAML-based configuration loading for the coin
// collector game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Spawn policies for the avatar.
const (
	// SpawnSource draws both coordinates from the range between the two
	// board midpoints minus d. On square boards this is a single cell.
	SpawnSource = "source"
	// SpawnSpread draws each coordinate from [mid-d, mid+d-1] on its own axis.
	SpawnSpread = "spread"
)

// Movement bounds policies.
const (
	// BoundsBoard allows up/left moves while the offset is above zero.
	BoundsBoard = "board"
	// BoundsSource allows up/left moves only while the offset is above one
	// cell edge, so row and column zero cannot be re-entered.
	BoundsSource = "source"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid coins config")

// CoinsConfig contains all configuration for the coin collector game.
type CoinsConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Coins    CoinConfig     `yaml:"coins"`
	Avatar   AvatarConfig   `yaml:"avatar"`
	Movement MovementConfig `yaml:"movement"`
	Win      WinConfig      `yaml:"win"`
}

// BoardConfig defines the default board and the largest accepted board.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

// CoinConfig defines coin placement.
type CoinConfig struct {
	Count int `yaml:"count"` // 0 = one coin per board column
}

// AvatarConfig defines avatar placement.
type AvatarConfig struct {
	Spawn string `yaml:"spawn"` // "source" or "spread"
}

// MovementConfig defines the pixel geometry of the board.
type MovementConfig struct {
	CellSize   int    `yaml:"cell_size"`   // Edge of one cell in offset units
	SpriteSize int    `yaml:"sprite_size"` // Edge of coin/avatar sprites, centered in the cell
	Bounds     string `yaml:"bounds"`      // "board" or "source"
}

// WinConfig defines the win notification.
type WinConfig struct {
	DelayMS int `yaml:"delay_ms"`
}

// Delay returns the win notification delay as a duration.
func (w WinConfig) Delay() time.Duration {
	return time.Duration(w.DelayMS) * time.Millisecond
}

// CoinCount returns the number of coins to scatter on a board of the given width.
func (c CoinsConfig) CoinCount(boardWidth int) int {
	if c.Coins.Count > 0 {
		return c.Coins.Count
	}
	return boardWidth
}

// Validate checks that the config describes a playable game.
func (c CoinsConfig) Validate() error {
	switch {
	case c.Board.MaxWidth <= 0 || c.Board.MaxHeight <= 0:
		return fmt.Errorf("%w: max board size must be positive", ErrInvalidConfig)
	case c.Board.Width <= 0 || c.Board.Width > c.Board.MaxWidth:
		return fmt.Errorf("%w: board width %d outside 1..%d", ErrInvalidConfig, c.Board.Width, c.Board.MaxWidth)
	case c.Board.Height <= 0 || c.Board.Height > c.Board.MaxHeight:
		return fmt.Errorf("%w: board height %d outside 1..%d", ErrInvalidConfig, c.Board.Height, c.Board.MaxHeight)
	case c.Coins.Count < 0:
		return fmt.Errorf("%w: coin count %d is negative", ErrInvalidConfig, c.Coins.Count)
	case c.Avatar.Spawn != SpawnSource && c.Avatar.Spawn != SpawnSpread:
		return fmt.Errorf("%w: unknown spawn policy %q", ErrInvalidConfig, c.Avatar.Spawn)
	case c.Movement.Bounds != BoundsBoard && c.Movement.Bounds != BoundsSource:
		return fmt.Errorf("%w: unknown bounds policy %q", ErrInvalidConfig, c.Movement.Bounds)
	case c.Movement.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive", ErrInvalidConfig)
	case c.Movement.SpriteSize <= 0 || c.Movement.SpriteSize >= c.Movement.CellSize:
		return fmt.Errorf("%w: sprite size %d must be in 1..%d", ErrInvalidConfig, c.Movement.SpriteSize, c.Movement.CellSize-1)
	case c.Win.DelayMS < 0:
		return fmt.Errorf("%w: win delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// BoardPreset is a named board size offered by the board size dialog.
type BoardPreset struct {
	Name   string
	Width  int
	Height int
}

// BoardPresets returns the board sizes offered as shortcuts.
func BoardPresets() []BoardPreset {
	return []BoardPreset{
		{Name: "small", Width: 3, Height: 3},
		{Name: "classic", Width: 5, Height: 5},
		{Name: "large", Width: 8, Height: 8},
	}
}

// PresetByName returns the preset with the given name.
func PresetByName(name string) (BoardPreset, bool) {
	for _, p := range BoardPresets() {
		if p.Name == name {
			return p, true
		}
	}
	return BoardPreset{}, false
}
