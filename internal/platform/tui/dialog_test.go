package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/games/coins"
	"github.com/vovakirdan/coinboard/internal/storage"
)

func newTestDialog(store *storage.Store) DialogModel {
	return NewDialogModel(store, config.DefaultCoinsConfig(), 80, 24, 0, 0)
}

func updateDialog(t *testing.T, m DialogModel, msg tea.Msg) (DialogModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	d, ok := next.(DialogModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected DialogModel", next)
	}
	return d, cmd
}

func TestDialogDefaults(t *testing.T) {
	m := newTestDialog(nil)

	m, cmd := updateDialog(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	w, h, ok := m.Submitted()
	if !ok || w != 5 || h != 5 {
		t.Errorf("Submitted() = %d, %d, %v; expected default 5x5", w, h, ok)
	}
	if cmd == nil {
		t.Error("submitting should end the dialog")
	}
}

func TestDialogPreset(t *testing.T) {
	m := newTestDialog(nil)

	// First preset is the small board
	m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	w, h, ok := m.Submitted()
	if !ok || w != 3 || h != 3 {
		t.Errorf("Submitted() = %d, %d, %v; expected 3x3", w, h, ok)
	}
}

func TestDialogValidation(t *testing.T) {
	tests := []struct {
		name  string
		width string
	}{
		{"empty", ""},
		{"not a number", "ab"},
		{"zero", "0"},
		{"above max", "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestDialog(nil)

			// Clear the prefilled width, then type the test value
			m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
			if tt.width != "" {
				m, _ = updateDialog(t, m, runeKey(tt.width))
			}
			m, cmd := updateDialog(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			if _, _, ok := m.Submitted(); ok {
				t.Fatal("invalid size should not be submitted")
			}
			if cmd != nil {
				t.Error("invalid size should keep the dialog open")
			}
			if !errors.Is(m.Err(), coins.ErrInvalidDimension) {
				t.Errorf("Err() = %v, expected ErrInvalidDimension", m.Err())
			}
			if !strings.Contains(m.View(), "invalid board dimension") {
				t.Error("View() should show the validation error")
			}
		})
	}
}

func TestDialogFocus(t *testing.T) {
	m := newTestDialog(nil)

	m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != inputHeight {
		t.Fatalf("focus = %d, expected height input", m.focus)
	}

	m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = updateDialog(t, m, runeKey("7"))
	m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	w, h, ok := m.Submitted()
	if !ok || w != 5 || h != 7 {
		t.Errorf("Submitted() = %d, %d, %v; expected 5x7", w, h, ok)
	}
}

func TestDialogQuitAndScores(t *testing.T) {
	m := newTestDialog(nil)
	m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if !m.WantsScoreboard() {
		t.Error("ctrl+t should open the scoreboard")
	}

	m = newTestDialog(nil)
	m, _ = updateDialog(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() {
		t.Error("esc should quit")
	}
}

func TestDialogBestSteps(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.RunEntry{
		GameID: coins.GameID, SessionID: "s1", Width: 5, Height: 5, Coins: 5, Steps: 11,
	}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := newTestDialog(store)
	if !strings.Contains(m.View(), "Best on 5x5: 11 steps") {
		t.Error("View() should show the best run for the entered size")
	}
}
