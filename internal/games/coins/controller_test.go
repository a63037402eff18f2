package coins

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/core"
)

func TestTopLeftRejectsUpAndLeft(t *testing.T) {
	c := NewController(3, 3, 100, config.BoundsBoard)
	av := &Avatar{Top: 0, Left: 0}

	for _, key := range []string{"ArrowUp", "ArrowLeft"} {
		handled, moved := c.Handle(core.BoardKey(key), av, nil)
		if !handled {
			t.Errorf("%s should be handled", key)
		}
		if moved {
			t.Errorf("%s should be rejected at the top-left cell", key)
		}
	}

	if av.Steps != 0 {
		t.Errorf("Steps = %d, expected 0", av.Steps)
	}
	if av.Top != 0 || av.Left != 0 {
		t.Errorf("avatar moved to (%d, %d)", av.Top, av.Left)
	}
}

func TestDirectionalDeltas(t *testing.T) {
	tests := []struct {
		key       string
		top, left int
	}{
		{"ArrowDown", 200, 100},
		{"Down", 200, 100},
		{"ArrowUp", 0, 100},
		{"Up", 0, 100},
		{"ArrowRight", 100, 200},
		{"right", 100, 200},
		{"ArrowLeft", 100, 0},
		{"left", 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			c := NewController(3, 3, 100, config.BoundsBoard)
			av := &Avatar{Top: 100, Left: 100}

			_, moved := c.Handle(core.BoardKey(tc.key), av, nil)
			if !moved {
				t.Fatalf("%s from the center should move", tc.key)
			}
			if av.Top != tc.top || av.Left != tc.left {
				t.Errorf("%s moved to (%d, %d), expected (%d, %d)", tc.key, av.Top, av.Left, tc.top, tc.left)
			}
			if av.Steps != 1 {
				t.Errorf("Steps = %d, expected 1", av.Steps)
			}
		})
	}
}

func TestBottomRightRejectsDownAndRight(t *testing.T) {
	c := NewController(4, 3, 100, config.BoundsBoard)
	av := &Avatar{Top: 200, Left: 300}

	for _, key := range []string{"down", "right"} {
		if _, moved := c.Handle(core.BoardKey(key), av, nil); moved {
			t.Errorf("%s should be rejected at the bottom-right cell", key)
		}
	}
	if av.Steps != 0 {
		t.Errorf("Steps = %d, expected 0", av.Steps)
	}
}

func TestRandomWalkStaysInBounds(t *testing.T) {
	keys := []string{"up", "down", "left", "right", "x"}
	rng := rand.New(rand.NewSource(7))

	for _, bounds := range []string{config.BoundsBoard, config.BoundsSource} {
		c := NewController(5, 4, 100, bounds)
		av := &Avatar{Top: 100, Left: 200}

		for i := 0; i < 2000; i++ {
			before := av.Steps
			_, moved := c.Handle(core.BoardKey(keys[rng.Intn(len(keys))]), av, nil)

			if av.Top < 0 || av.Top > 300 || av.Left < 0 || av.Left > 400 {
				t.Fatalf("%s bounds: avatar left the board at (%d, %d)", bounds, av.Top, av.Left)
			}
			if av.Top%100 != 0 || av.Left%100 != 0 {
				t.Fatalf("%s bounds: avatar off the cell lattice at (%d, %d)", bounds, av.Top, av.Left)
			}

			expected := before
			if moved {
				expected++
			}
			if av.Steps != expected {
				t.Fatalf("%s bounds: Steps = %d, expected %d", bounds, av.Steps, expected)
			}
		}
	}
}

func TestSourceBoundsKeepFirstRowAndColumn(t *testing.T) {
	c := NewController(3, 3, 100, config.BoundsSource)
	av := &Avatar{Top: 100, Left: 100}

	if _, moved := c.Handle(core.BoardKey("up"), av, nil); moved {
		t.Error("source bounds should reject up from offset 100")
	}
	if _, moved := c.Handle(core.BoardKey("left"), av, nil); moved {
		t.Error("source bounds should reject left from offset 100")
	}
	if _, moved := c.Handle(core.BoardKey("down"), av, nil); !moved {
		t.Error("down from the middle row should move")
	}
	if _, moved := c.Handle(core.BoardKey("up"), av, nil); !moved {
		t.Error("up from offset 200 should move")
	}
}

func TestFieldEventsIgnored(t *testing.T) {
	c := NewController(3, 3, 100, config.BoundsBoard)
	av := &Avatar{Top: 100, Left: 100}

	checked := false
	handled, moved := c.Handle(core.KeyEvent{Key: "ArrowDown", Target: core.TargetField}, av, func() {
		checked = true
	})

	if handled || moved {
		t.Errorf("field event handled=%v moved=%v, expected both false", handled, moved)
	}
	if checked {
		t.Error("check should not run for field events")
	}
	if av.Top != 100 || av.Steps != 0 {
		t.Error("field event should not move the avatar")
	}
}

func TestCheckRunsForAnyBoardKey(t *testing.T) {
	c := NewController(3, 3, 100, config.BoundsBoard)
	av := &Avatar{}

	var phase Phase
	handled, moved := c.Handle(core.BoardKey("space"), av, func() {
		phase = c.Phase()
	})

	if !handled || moved {
		t.Errorf("unmapped key handled=%v moved=%v, expected true/false", handled, moved)
	}
	if phase != PhaseChecking {
		t.Errorf("check ran in phase %v, expected checking", phase)
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase after event = %v, expected idle", c.Phase())
	}
}

func TestHandleWithoutAvatarPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrMissingAvatar {
			t.Errorf("recover() = %v, expected ErrMissingAvatar", r)
		}
	}()

	c := NewController(3, 3, 100, config.BoundsBoard)
	c.Handle(core.BoardKey("up"), nil, nil)
}
