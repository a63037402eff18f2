package coins

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/core"
	"github.com/vovakirdan/coinboard/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "coins"

// Glyph layout of one board cell on screen.
const (
	cellCols  = 3 // Characters per cell
	hudHeight = 2 // HUD line + separator
)

// Package-level config, set by the CLI before games are created.
var activeConfig = config.DefaultCoinsConfig()

// SetConfig replaces the config used by games created afterwards.
func SetConfig(cfg config.CoinsConfig) {
	activeConfig = cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the platform's game interface and draws it.
type Game struct {
	cfg     config.CoinsConfig
	rng     *rand.Rand
	session *Session
	screenW int
	screenH int
	message string // Win message currently shown
}

// New creates a game using the active config.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game using the given config.
func NewWithConfig(cfg config.CoinsConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Coin Collector"
}

// Reset starts a new session on the board size in cfg.
// A zero board size falls back to the configured default board.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	width, height := cfg.BoardW, cfg.BoardH
	if width == 0 && height == 0 {
		width, height = g.cfg.Board.Width, g.cfg.Board.Height
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	session, err := NewSession(width, height, rng, OptionsFromConfig(g.cfg))
	if err != nil {
		return err
	}

	if g.session != nil {
		g.session.Cancel()
	}
	g.rng = rng
	g.session = session
	g.message = ""
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	return nil
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Board reports the running board size and how many coins it started with.
func (g *Game) Board() (width, height, coins int) {
	if g.session == nil {
		return 0, 0, 0
	}
	return g.session.Width(), g.session.Height(), g.session.Placed()
}

// HandleKey forwards a key event to the session.
func (g *Game) HandleKey(ev core.KeyEvent) core.StepResult {
	return g.session.HandleKey(ev)
}

// Notify delivers a scheduled win notice.
func (g *Game) Notify(n core.WinNotice) (string, bool) {
	if g.session == nil {
		return "", false
	}
	msg, ok := g.session.Deliver(n)
	if ok {
		g.message = msg
	}
	return msg, ok
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	state := g.session.State()
	state.Notice = g.session.Pending()
	return state
}

// Render draws the HUD, the board and any win message.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	boardW := g.session.Width()*cellCols + 2
	boardH := g.session.Height() + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	originX := (dst.Width() - boardW) / 2
	originY := hudHeight + (dst.Height()-hudHeight-boardH)/2
	dst.DrawBox(core.NewRect(originX, originY, boardW, boardH), core.ColorGray)

	grid := g.session.Grid()
	for r := 0; r < grid.Height(); r++ {
		for _, cell := range grid.Row(r) {
			x := originX + 1 + cell.Col*cellCols + cellCols/2
			y := originY + 1 + r
			switch {
			case cell.Avatar:
				dst.SetColored(x, y, '@', core.ColorBrightCyan)
			case cell.Coins > 1:
				dst.SetColored(x-1, y, rune('0'+min(cell.Coins, 9)), core.ColorYellow)
				dst.SetColored(x, y, '$', core.ColorBrightYellow)
			case cell.Coins == 1:
				dst.SetColored(x, y, '$', core.ColorBrightYellow)
			default:
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}

	if g.message != "" {
		g.renderOverlay(dst, g.message, "R: new board  B: board size  Q: quit")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Coin Collector - Steps: %d  Coins: %d  Board: %dx%d",
		g.session.Steps(), g.session.CoinsLeft(), g.session.Width(), g.session.Height())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
