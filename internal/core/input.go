package core

// Direction is one of the four avatar movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Target identifies which surface a key event was aimed at.
type Target int

const (
	// TargetBoard is the game board itself. Only these events move the avatar.
	TargetBoard Target = iota
	// TargetField is a focused form field, such as the board size dialog.
	TargetField
)

// KeyEvent is a key release delivered to the game.
type KeyEvent struct {
	Key    string
	Target Target
}

// BoardKey builds a key event aimed at the board.
func BoardKey(key string) KeyEvent {
	return KeyEvent{Key: key, Target: TargetBoard}
}

// DirectionForKey maps a key name to a direction.
// Accepts browser-style names ("ArrowUp", "Up") and terminal names ("up").
func DirectionForKey(key string) Direction {
	switch key {
	case "ArrowDown", "Down", "down":
		return DirDown
	case "ArrowUp", "Up", "up":
		return DirUp
	case "ArrowRight", "Right", "right":
		return DirRight
	case "ArrowLeft", "Left", "left":
		return DirLeft
	}
	return DirNone
}
