// Package tui provides the Bubble Tea integration for the coin board.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinboard/internal/core"
)

// WinNoticeMsg delivers a scheduled win notice back to the model.
type WinNoticeMsg struct {
	Notice core.WinNotice
}

// noticeCmd returns a command that fires the notice after its delay.
// A nil notice yields a nil command.
func noticeCmd(n *core.WinNotice) tea.Cmd {
	if n == nil {
		return nil
	}
	notice := *n
	return tea.Tick(notice.Delay, func(time.Time) tea.Msg {
		return WinNoticeMsg{Notice: notice}
	})
}
