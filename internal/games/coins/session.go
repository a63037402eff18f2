package coins

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/core"
)

// Options controls how a session lays out and plays the board.
type Options struct {
	CoinCount  int // 0 = one coin per column
	Spawn      string
	Bounds     string
	CellSize   int
	SpriteSize int
	WinDelay   time.Duration
	MaxWidth   int
	MaxHeight  int
}

// OptionsFromConfig derives session options from the game config.
func OptionsFromConfig(cfg config.CoinsConfig) Options {
	return Options{
		CoinCount:  cfg.Coins.Count,
		Spawn:      cfg.Avatar.Spawn,
		Bounds:     cfg.Movement.Bounds,
		CellSize:   cfg.Movement.CellSize,
		SpriteSize: cfg.Movement.SpriteSize,
		WinDelay:   cfg.Win.Delay(),
		MaxWidth:   cfg.Board.MaxWidth,
		MaxHeight:  cfg.Board.MaxHeight,
	}
}

// Session is one game from board construction until the player leaves.
// It is not safe for concurrent use; the platform feeds it one event at a time.
type Session struct {
	id         string
	opts       Options
	grid       *Grid
	coins      map[int]Coin
	placed     int
	avatar     *Avatar
	controller *Controller

	generation uint64
	pending    *core.WinNotice
	announced  bool // A win notice has been scheduled for this session
}

// NewSession builds the grid, scatters coins, places the avatar and
// collects any coin already under it.
func NewSession(width, height int, rng *rand.Rand, opts Options) (*Session, error) {
	if err := ValidateDimensions(width, height, opts.MaxWidth, opts.MaxHeight); err != nil {
		return nil, err
	}
	if opts.CellSize <= 0 || opts.SpriteSize <= 0 || opts.SpriteSize >= opts.CellSize {
		return nil, fmt.Errorf("coins: sprite size %d does not fit cell size %d", opts.SpriteSize, opts.CellSize)
	}

	grid, err := BuildGrid(width, height)
	if err != nil {
		return nil, err
	}

	count := opts.CoinCount
	if count <= 0 {
		count = width
	}

	s := &Session{
		id:         uuid.NewString(),
		opts:       opts,
		grid:       grid,
		coins:      make(map[int]Coin, count),
		placed:     count,
		controller: NewController(width, height, opts.CellSize, opts.Bounds),
	}

	for _, c := range PlaceCoins(grid, rng, count) {
		s.coins[c.ID] = c
	}

	row, col := PlaceAvatar(grid, rng, opts.Spawn)
	s.avatar = &Avatar{Top: row * opts.CellSize, Left: col * opts.CellSize}

	s.collect()
	s.checkWin()

	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Width returns the board width in cells.
func (s *Session) Width() int {
	return s.mustGrid().Width()
}

// Height returns the board height in cells.
func (s *Session) Height() int {
	return s.mustGrid().Height()
}

// Grid returns the session's grid.
func (s *Session) Grid() *Grid {
	return s.mustGrid()
}

// Steps returns the number of accepted moves.
func (s *Session) Steps() int {
	return s.mustAvatar().Steps
}

// Avatar returns a copy of the avatar.
func (s *Session) Avatar() Avatar {
	return *s.mustAvatar()
}

// AvatarCell returns the avatar's grid position.
func (s *Session) AvatarCell() (row, col int) {
	return s.mustAvatar().Cell(s.opts.CellSize)
}

// CoinsLeft returns the number of uncollected coins.
func (s *Session) CoinsLeft() int {
	return len(s.coins)
}

// Placed returns how many coins were scattered when the board was built.
func (s *Session) Placed() int {
	return s.placed
}

// Coins returns the uncollected coins ordered by ID.
func (s *Session) Coins() []Coin {
	out := make([]Coin, 0, len(s.coins))
	for _, c := range s.coins {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Won reports whether every coin has been collected.
func (s *Session) Won() bool {
	return len(s.coins) == 0
}

// Pending returns the scheduled win notice that has not been delivered yet.
func (s *Session) Pending() *core.WinNotice {
	return s.pending
}

// Phase returns the input controller phase.
func (s *Session) Phase() Phase {
	return s.controller.Phase()
}

// HandleKey applies one key event: move, collect touched coins, check for a win.
func (s *Session) HandleKey(ev core.KeyEvent) core.StepResult {
	s.mustGrid()
	av := s.mustAvatar()

	var collected int
	var notice *core.WinNotice

	handled, moved := s.controller.Handle(ev, av, func() {
		s.syncAvatarCell()
		collected = s.collect()
		notice = s.checkWin()
	})
	if !handled {
		return core.StepResult{State: s.State()}
	}

	return core.StepResult{
		State:     s.State(),
		Moved:     moved,
		Collected: collected,
		Notice:    notice,
	}
}

// Deliver consumes a win notice. It returns the message to show, or false
// if the notice belongs to another session or was cancelled.
func (s *Session) Deliver(n core.WinNotice) (string, bool) {
	if s.pending == nil || n.SessionID != s.id || n.Generation != s.generation {
		return "", false
	}
	s.pending = nil
	return WinMessage(s.Steps()), true
}

// Cancel invalidates any pending win notice.
func (s *Session) Cancel() {
	s.generation++
	s.pending = nil
}

// State returns the platform-facing game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Steps:     s.Steps(),
		CoinsLeft: s.CoinsLeft(),
		Won:       s.Won(),
	}
}

// WinMessage formats the end-of-game message.
func WinMessage(steps int) string {
	return fmt.Sprintf("You have taken %d steps to complete the game!", steps)
}

// collect removes every coin the avatar touches and returns how many.
func (s *Session) collect() int {
	avatarRect := s.spriteRect(s.avatar.Top, s.avatar.Left)

	collected := 0
	for id, c := range s.coins {
		coinRect := s.spriteRect(c.Row*s.opts.CellSize, c.Col*s.opts.CellSize)
		if !core.Touching(avatarRect, coinRect) {
			continue
		}
		delete(s.coins, id)
		if cell := s.grid.Cell(c.Row, c.Col); cell != nil && cell.Coins > 0 {
			cell.Coins--
		}
		collected++
	}
	return collected
}

// checkWin schedules the win notice the first time the board is cleared.
func (s *Session) checkWin() *core.WinNotice {
	if len(s.coins) > 0 || s.announced {
		return nil
	}
	s.announced = true
	s.pending = &core.WinNotice{
		SessionID:  s.id,
		Generation: s.generation,
		Steps:      s.avatar.Steps,
		Delay:      s.opts.WinDelay,
	}
	return s.pending
}

// syncAvatarCell moves the avatar marker to the cell matching its offset.
func (s *Session) syncAvatarCell() {
	row, col := s.avatar.Cell(s.opts.CellSize)
	for r := 0; r < s.grid.Height(); r++ {
		for c := 0; c < s.grid.Width(); c++ {
			cell := s.grid.Cell(r, c)
			cell.Avatar = r == row && c == col
		}
	}
}

// spriteRect is the rectangle of a sprite drawn in the cell at (top, left).
func (s *Session) spriteRect(top, left int) core.Rect {
	inset := (s.opts.CellSize - s.opts.SpriteSize) / 2
	return core.NewRect(left+inset, top+inset, s.opts.SpriteSize, s.opts.SpriteSize)
}

func (s *Session) mustGrid() *Grid {
	if s == nil || s.grid == nil {
		panic(ErrMissingGrid)
	}
	return s.grid
}

func (s *Session) mustAvatar() *Avatar {
	if s == nil || s.avatar == nil {
		panic(ErrMissingAvatar)
	}
	return s.avatar
}
