package core

import "testing"

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Direction
	}{
		{"ArrowDown", DirDown},
		{"Down", DirDown},
		{"down", DirDown},
		{"ArrowUp", DirUp},
		{"Up", DirUp},
		{"up", DirUp},
		{"ArrowRight", DirRight},
		{"Right", DirRight},
		{"right", DirRight},
		{"ArrowLeft", DirLeft},
		{"Left", DirLeft},
		{"left", DirLeft},
		{"w", DirNone},
		{"", DirNone},
		{"enter", DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := DirectionForKey(tc.key); got != tc.expected {
				t.Errorf("DirectionForKey(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestBoardKey(t *testing.T) {
	ev := BoardKey("up")
	if ev.Target != TargetBoard {
		t.Errorf("BoardKey target = %v, expected TargetBoard", ev.Target)
	}
	if ev.Key != "up" {
		t.Errorf("BoardKey key = %q, expected %q", ev.Key, "up")
	}
}
