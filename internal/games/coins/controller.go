package coins

import (
	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/core"
)

// Phase is the controller's position in handling one key event.
type Phase int

const (
	PhaseIdle      Phase = iota // Waiting for a key
	PhaseResolving              // Reading the avatar's current offset
	PhaseMoving                 // Applying a directional delta
	PhaseChecking               // Collision and win checks
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResolving:
		return "resolving"
	case PhaseMoving:
		return "moving"
	case PhaseChecking:
		return "checking"
	default:
		return "unknown"
	}
}

// Controller turns key events into one-cell avatar moves within the board.
type Controller struct {
	cellSize  int
	maxTop    int // Down moves allowed while top is below this
	maxLeft   int // Right moves allowed while left is below this
	minOffset int // Up/left moves allowed while the offset is above this
	phase     Phase
}

// NewController creates a controller for a width x height board.
func NewController(width, height, cellSize int, bounds string) *Controller {
	minOffset := 0
	if bounds == config.BoundsSource {
		minOffset = cellSize
	}
	return &Controller{
		cellSize:  cellSize,
		maxTop:    cellSize * (height - 1),
		maxLeft:   cellSize * (width - 1),
		minOffset: minOffset,
	}
}

// Phase returns the current phase. It is PhaseIdle between events.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Handle runs one key event against the avatar.
// Events not aimed at the board are ignored and check is not run.
// For board events check always runs, even when the key did not move the avatar.
func (c *Controller) Handle(ev core.KeyEvent, av *Avatar, check func()) (handled, moved bool) {
	if ev.Target != core.TargetBoard {
		return false, false
	}
	if av == nil {
		panic(ErrMissingAvatar)
	}

	c.phase = PhaseResolving
	top, left := av.Top, av.Left

	c.phase = PhaseMoving
	switch core.DirectionForKey(ev.Key) {
	case core.DirDown:
		moved = c.moveVertical(av, top, c.cellSize)
	case core.DirUp:
		moved = c.moveVertical(av, top, -c.cellSize)
	case core.DirRight:
		moved = c.moveHorizontal(av, left, c.cellSize)
	case core.DirLeft:
		moved = c.moveHorizontal(av, left, -c.cellSize)
	}

	c.phase = PhaseChecking
	if check != nil {
		check()
	}

	c.phase = PhaseIdle
	return true, moved
}

func (c *Controller) moveVertical(av *Avatar, top, amount int) bool {
	if amount > 0 && top >= c.maxTop {
		return false
	}
	if amount < 0 && top <= c.minOffset {
		return false
	}
	av.Top = top + amount
	av.Steps++
	return true
}

func (c *Controller) moveHorizontal(av *Avatar, left, amount int) bool {
	if amount > 0 && left >= c.maxLeft {
		return false
	}
	if amount < 0 && left <= c.minOffset {
		return false
	}
	av.Left = left + amount
	av.Steps++
	return true
}
