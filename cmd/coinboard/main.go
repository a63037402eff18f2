// coinboard is a terminal coin collecting game: pick a board size, move the
// collector with the arrow keys and clear every coin in as few steps as you can.
//
// Usage:
//
//	coinboard play [--width W --height H]  - Play a board (asks for the size if not given)
//	coinboard menu                         - Board size dialog, play, repeat
//	coinboard serve                        - Start SSH server for remote play
//	coinboard scores                       - Show the fewest-steps records
//	coinboard list                         - List games and board presets
//	coinboard config                       - Print the default game config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible first board
//	--db <path>          - Set database path (default: ~/.coinboard/runs.db, or $COINBOARD_DB)
//	--config <path>      - Set game config YAML (or $COINBOARD_CONFIG)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/games/coins"
	"github.com/vovakirdan/coinboard/internal/storage"
)

const (
	envDBPath     = "COINBOARD_DB"
	envConfigPath = "COINBOARD_CONFIG"
	defaultDBPath = "~/.coinboard/runs.db"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	logger   *log.Logger
	coinsCfg config.CoinsConfig
)

func main() {
	// A missing .env file is normal
	//nolint:errcheck // Optional environment file
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinboard",
	Short: "Coinboard - collect every coin in the fewest steps",
	Long: `Coinboard is a terminal game: choose a board size, then move the
collector (@) with the arrow keys until every coin ($) is gone.
The number of steps you took is recorded on the scoreboard.

Available commands:
  play     - Play a board directly
  menu     - Board size dialog, play, repeat
  serve    - Start SSH server for remote play
  scores   - View the fewest-steps records
  list     - Show games and board presets
  config   - Print the default game config

Examples:
  coinboard play
  coinboard play --width 8 --height 6
  coinboard menu
  coinboard serve --ssh :2222
  coinboard scores --width 5 --height 5`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the first board (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to runs database (env "+envDBPath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (env "+envConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup resolves env defaults, builds the logger and loads the game config.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("db") {
		if v := os.Getenv(envDBPath); v != "" {
			flagDBPath = v
		}
	}
	if !flags.Changed("config") {
		if v := os.Getenv(envConfigPath); v != "" {
			flagConfig = v
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinboard",
		Level:           level,
	})

	cfg, err := config.LoadCoins(flagConfig)
	if err != nil {
		return err
	}
	coinsCfg = cfg
	coins.SetConfig(cfg)
	logger.Debug("config loaded", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"spawn", cfg.Avatar.Spawn, "bounds", cfg.Movement.Bounds)

	return nil
}

// openStore opens the runs database. Failures degrade to playing without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, playing without scores", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName returns the local user name recorded with runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
