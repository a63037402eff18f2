package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinboard/internal/core"
)

// GameAction is a platform-level action taken instead of forwarding a key to the board.
type GameAction int

const (
	// GameActionNone means the key belongs to the board.
	GameActionNone GameAction = iota
	GameActionQuit
	GameActionNewBoard
	GameActionBoardSize
	GameActionScreenshot
)

// KeyMapper translates Bubble Tea key messages to board events and actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message while the board has focus.
// When the action is GameActionNone the returned event should go to the game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (GameAction, core.KeyEvent) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return GameActionQuit, core.KeyEvent{}
	case "r":
		return GameActionNewBoard, core.KeyEvent{}
	case "b", "esc":
		return GameActionBoardSize, core.KeyEvent{}
	case "ctrl+s":
		return GameActionScreenshot, core.KeyEvent{}
	}

	// Alternate movement keys are normalized to arrow names
	switch key {
	case "w", "k":
		key = "up"
	case "s", "j":
		key = "down"
	case "a", "h":
		key = "left"
	case "d", "l":
		key = "right"
	}

	return GameActionNone, core.BoardKey(key)
}
