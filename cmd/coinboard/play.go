package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/core"
	"github.com/vovakirdan/coinboard/internal/games/coins"
	"github.com/vovakirdan/coinboard/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start playing. Without --width/--height the board size dialog opens first.

Controls:
  Arrows/WASD/HJKL - Move one cell
  R                - New board of the same size
  B/Esc            - Choose another board size
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  coinboard play
  coinboard play --width 5 --height 5
  coinboard play --preset large
  coinboard play --width 12 --height 8 --seed 42
  coinboard play --config ./my-coins.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (skips the dialog)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (skips the dialog)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: small, classic, large (skips the dialog)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := screenConfig()

	flags := cmd.Flags()
	if flagPreset != "" {
		p, ok := config.PresetByName(flagPreset)
		if !ok {
			return fmt.Errorf("unknown preset %q (run 'coinboard list' to see presets)", flagPreset)
		}
		cfg.BoardW = p.Width
		cfg.BoardH = p.Height
	}

	if flags.Changed("width") || flags.Changed("height") {
		width, height := flagWidth, flagHeight
		if !flags.Changed("width") {
			width = coinsCfg.Board.Width
		}
		if !flags.Changed("height") {
			height = coinsCfg.Board.Height
		}
		if err := coins.ValidateDimensions(width, height, coinsCfg.Board.MaxWidth, coinsCfg.Board.MaxHeight); err != nil {
			return err
		}
		cfg.BoardW = width
		cfg.BoardH = height
	}

	return runSession(cfg)
}

// screenConfig builds a runtime config from the terminal size.
func screenConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
}

// runSession runs the interactive session with score storage attached.
func runSession(cfg core.RuntimeConfig) error {
	store := openStore()

	// The board owns the terminal; only warnings are worth breaking into it
	playLogger := logger.WithPrefix("coinboard-play")
	playLogger.SetLevel(max(logger.GetLevel(), log.WarnLevel))

	runErr := tui.Run(store, coinsCfg, cfg, playerName(), playLogger)

	// Close store before returning
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close runs database", "path", flagDBPath, "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
