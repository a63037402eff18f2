package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coinboard/internal/core"
	"github.com/vovakirdan/coinboard/internal/games/coins"
	"github.com/vovakirdan/coinboard/internal/registry"
	"github.com/vovakirdan/coinboard/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestGameModel builds a model on a 1x1 board, which is cleared at spawn.
func newTestGameModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	game, err := registry.Create(coins.GameID)
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	cfg := core.RuntimeConfig{BoardW: 1, BoardH: 1, ScreenW: 80, ScreenH: 24, Seed: 7}
	m, err := NewGameModel(game, store, cfg, "tester", nil)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func TestGameModelRejectsInvalidBoard(t *testing.T) {
	game, err := registry.Create(coins.GameID)
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	cfg := core.RuntimeConfig{BoardW: -1, BoardH: 3, ScreenW: 80, ScreenH: 24, Seed: 1}
	if _, err := NewGameModel(game, nil, cfg, "", nil); err == nil {
		t.Error("NewGameModel() should reject a negative width")
	}
}

func TestGameModelWinNotice(t *testing.T) {
	store := openTestStore(t)
	m := newTestGameModel(t, store)

	state := m.State()
	if !state.Won || state.Notice == nil {
		t.Fatalf("1x1 board should be cleared at spawn, state = %+v", state)
	}
	if m.Init() == nil {
		t.Fatal("Init() should schedule the win notice")
	}

	// Moves are rejected on a single cell
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.State().Steps != 0 {
		t.Errorf("Steps = %d, expected 0", m.State().Steps)
	}

	m, _ = update(t, m, WinNoticeMsg{Notice: *state.Notice})
	expected := "You have taken 0 steps to complete the game!"
	if m.Message() != expected {
		t.Errorf("Message() = %q, expected %q", m.Message(), expected)
	}
	if m.RunsSaved() != 1 {
		t.Errorf("RunsSaved() = %d, expected 1", m.RunsSaved())
	}

	runs, err := store.TopRunsForBoard(coins.GameID, 1, 1, 10)
	if err != nil {
		t.Fatalf("TopRunsForBoard() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 stored run, got %d", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].Coins != 1 || runs[0].SessionID != state.Notice.SessionID {
		t.Errorf("stored run = %+v", runs[0])
	}

	// Delivering the same notice again is a no-op
	m, _ = update(t, m, WinNoticeMsg{Notice: *state.Notice})
	if m.RunsSaved() != 1 {
		t.Errorf("RunsSaved() = %d after duplicate notice, expected 1", m.RunsSaved())
	}

	if !strings.Contains(m.View(), expected) {
		t.Error("View() should show the win message")
	}
}

func TestGameModelStaleNoticeAfterNewBoard(t *testing.T) {
	m := newTestGameModel(t, nil)
	old := *m.State().Notice

	m, cmd := update(t, m, runeKey("r"))
	if cmd == nil {
		t.Fatal("new 1x1 board should schedule its own notice")
	}
	if m.State().Notice.SessionID == old.SessionID {
		t.Fatal("new board should have a new session ID")
	}

	m, _ = update(t, m, WinNoticeMsg{Notice: old})
	if m.Message() != "" {
		t.Errorf("stale notice delivered message %q", m.Message())
	}
}

func TestGameModelRecordsRunBeforeNotice(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"new board", "r"},
		{"board size dialog", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			m := newTestGameModel(t, store)
			old := *m.State().Notice

			// Leave the cleared board before its message is due
			m, _ = update(t, m, runeKey(tt.key))
			m, _ = update(t, m, WinNoticeMsg{Notice: old})

			runs, err := store.TopRunsForBoard(coins.GameID, 1, 1, 10)
			if err != nil {
				t.Fatalf("TopRunsForBoard() failed: %v", err)
			}
			found := 0
			for _, r := range runs {
				if r.SessionID == old.SessionID {
					found++
				}
			}
			if found != 1 {
				t.Errorf("runs for the left session = %d, expected 1 (all runs: %+v)", found, runs)
			}
		})
	}
}

func TestGameModelLogsClearedBoard(t *testing.T) {
	game, err := registry.Create(coins.GameID)
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	var buf bytes.Buffer
	logger := log.New(&buf)
	cfg := core.RuntimeConfig{BoardW: 1, BoardH: 1, ScreenW: 80, ScreenH: 24, Seed: 3}

	if _, err := NewGameModel(game, nil, cfg, "tester", logger); err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "board cleared") {
		t.Errorf("expected a board cleared log line, got %q", buf.String())
	}
}

func TestGameModelNavigation(t *testing.T) {
	m := newTestGameModel(t, nil)

	m, _ = update(t, m, runeKey("b"))
	if !m.BackToBoardSize() {
		t.Error("b should request the board size dialog")
	}

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelResize(t *testing.T) {
	m := newTestGameModel(t, nil)
	id := m.State().Notice.SessionID

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 4})
	if m.State().Notice.SessionID != id {
		t.Error("resize must not reset the board")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show the size warning")
	}
}
