package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/core"
	"github.com/vovakirdan/coinboard/internal/games/coins"
	"github.com/vovakirdan/coinboard/internal/registry"
	"github.com/vovakirdan/coinboard/internal/storage"
)

// view identifies which screen a session is showing.
type view int

const (
	viewDialog view = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow: board size dialog -> board -> dialog,
// with the scoreboard reachable from the dialog. It is the top-level model
// for both local and SSH play.
type SessionModel struct {
	store    *storage.Store
	coinsCfg config.CoinsConfig
	config   core.RuntimeConfig
	username string
	logger   *log.Logger
	view     view
	dialog   DialogModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session. If cfg carries a board size the
// session starts on that board, otherwise it opens the board size dialog.
func NewSessionModel(store *storage.Store, coinsCfg config.CoinsConfig, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	m := SessionModel{
		store:    store,
		coinsCfg: coinsCfg,
		config:   cfg,
		username: username,
		logger:   logger,
		dialog:   NewDialogModel(store, coinsCfg, cfg.ScreenW, cfg.ScreenH, cfg.BoardW, cfg.BoardH),
	}

	if cfg.BoardW > 0 && cfg.BoardH > 0 {
		if err := m.startGame(cfg.BoardW, cfg.BoardH); err != nil {
			m.dialog.err = err
		}
	}
	return m
}

// Init initializes the current screen.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame && m.game != nil {
		return m.game.Init()
	}
	return m.dialog.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateDialog(msg)
}

// updateDialog handles updates while the board size dialog is open.
func (m SessionModel) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	newDialog, cmd := m.dialog.Update(msg)
	if d, ok := newDialog.(DialogModel); ok {
		m.dialog = d
	}

	if m.dialog.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.dialog.WantsScoreboard() {
		w, h, _ := m.dialog.parse()
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, w, h)
		m.view = viewScores
		return m, m.scores.Init()
	}

	if w, h, ok := m.dialog.Submitted(); ok {
		if err := m.startGame(w, h); err != nil {
			m.dialog = NewDialogModel(m.store, m.coinsCfg, m.config.ScreenW, m.config.ScreenH, w, h)
			m.dialog.err = err
			return m, m.dialog.Init()
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a board is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToBoardSize() {
		m.dialog = NewDialogModel(m.store, m.coinsCfg, m.config.ScreenW, m.config.ScreenH, m.config.BoardW, m.config.BoardH)
		m.game = nil
		m.view = viewDialog
		return m, m.dialog.Init()
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if s, ok := newScores.(ScoreboardModel); ok {
		m.scores = s
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.dialog.openScoreboard = false
		m.dialog.width = m.config.ScreenW
		m.dialog.height = m.config.ScreenH
		m.view = viewDialog
		return m, m.dialog.Init()
	}

	return m, cmd
}

// startGame builds a board of the given size and switches to it.
func (m *SessionModel) startGame(width, height int) error {
	game, err := registry.Create(coins.GameID)
	if err != nil {
		return err
	}

	cfg := m.config
	cfg.BoardW = width
	cfg.BoardH = height

	gm, err := NewGameModel(game, m.store, cfg, m.username, m.logger)
	if err != nil {
		return err
	}

	// A fixed seed only applies to the first board
	m.config.Seed = 0
	m.config.BoardW = width
	m.config.BoardH = height
	m.game = &gm
	m.view = viewGame
	return nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.game != nil {
			return m.game.View()
		}
	case viewScores:
		return m.scores.View()
	}
	return m.dialog.View()
}

// IsQuitting returns true if user requested to quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a local session. A board size in cfg skips the dialog.
// logger may be nil.
func Run(store *storage.Store, coinsCfg config.CoinsConfig, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewSessionModel(store, coinsCfg, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
