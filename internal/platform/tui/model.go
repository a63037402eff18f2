package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coinboard/internal/core"
	"github.com/vovakirdan/coinboard/internal/registry"
	"github.com/vovakirdan/coinboard/internal/storage"
)

// boardReporter is implemented by games that can describe their running board.
type boardReporter interface {
	Board() (width, height, coins int)
}

// GameModel is the Bubble Tea model for one running board.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	logger     *log.Logger // Optional; nil disables logging
	message    string      // Delivered win message
	quitting   bool
	backToSize bool
	runsSaved  int
}

// NewGameModel resets the game on the configured board and wraps it.
// logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (GameModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		player:    player,
		keyMapper: NewKeyMapper(),
		logger:    logger,
	}

	// A board can be cleared at spawn
	m.recordWin(game.State().Notice)
	return m, nil
}

// Init schedules the win notice if the board was cleared at spawn.
func (m GameModel) Init() tea.Cmd {
	return noticeCmd(m.game.State().Notice)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case WinNoticeMsg:
		return m.handleNotice(msg.Notice)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ev := m.keyMapper.MapKey(msg)

	switch action {
	case GameActionQuit:
		m.quitting = true
		return m, tea.Quit

	case GameActionNewBoard:
		return m.newBoard()

	case GameActionBoardSize:
		m.backToSize = true
		return m, nil

	case GameActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	result := m.game.HandleKey(ev)
	m.recordWin(result.Notice)
	return m, noticeCmd(result.Notice)
}

// newBoard starts a fresh board of the same size with a new seed.
func (m GameModel) newBoard() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		// Board size was accepted once already, keep the current board
		return m, nil
	}
	m.message = ""
	notice := m.game.State().Notice
	m.recordWin(notice)
	return m, noticeCmd(notice)
}

// handleNotice shows the win message once the delay has passed.
func (m GameModel) handleNotice(n core.WinNotice) (tea.Model, tea.Cmd) {
	msg, ok := m.game.Notify(n)
	if !ok {
		// Stale notice from a board that was replaced
		return m, nil
	}
	m.message = msg
	return m, nil
}

// recordWin stores a run as soon as its win is scheduled, so leaving the
// board before the message shows does not lose it. A nil notice is a no-op.
func (m *GameModel) recordWin(n *core.WinNotice) {
	if n == nil {
		return
	}
	if m.logger != nil {
		m.logger.Info("board cleared", "player", m.player, "steps", n.Steps, "session", n.SessionID)
	}
	m.saveRun(n.SessionID, n.Steps)
}

// saveRun stores the completed game. Storage is best-effort.
func (m *GameModel) saveRun(sessionID string, steps int) {
	if m.store == nil {
		return
	}

	run := storage.RunEntry{
		GameID:    m.game.ID(),
		SessionID: sessionID,
		Player:    m.player,
		Width:     m.config.BoardW,
		Height:    m.config.BoardH,
		Steps:     steps,
	}
	if br, ok := m.game.(boardReporter); ok {
		run.Width, run.Height, run.Coins = br.Board()
	}

	if _, err := m.store.SaveRun(run); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save run", "error", err)
		}
		return
	}
	m.runsSaved++
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".coinboard", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Message returns the delivered win message, if any.
func (m GameModel) Message() string {
	return m.message
}

// State returns the current game state.
func (m GameModel) State() core.GameState {
	return m.game.State()
}

// RunsSaved returns how many completed runs this model has stored.
func (m GameModel) RunsSaved() int {
	return m.runsSaved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToBoardSize returns true if user asked to pick another board size.
func (m GameModel) BackToBoardSize() bool {
	return m.backToSize
}
