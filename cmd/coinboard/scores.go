package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinboard/internal/games/coins"
	"github.com/vovakirdan/coinboard/internal/platform/tui"
	"github.com/vovakirdan/coinboard/internal/storage"
)

var (
	flagScoresWidth  int
	flagScoresHeight int
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fewest-steps records",
	Long: `Display the best runs, fewest steps first.

Pass --width and --height to only show one board size.

Examples:
  coinboard scores
  coinboard scores --width 5 --height 5
  coinboard scores --limit 20
  coinboard scores --interactive
  coinboard scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresWidth, "width", 0, "Only show runs on boards of this width")
	scoresCmd.Flags().IntVar(&flagScoresHeight, "height", 0, "Only show runs on boards of this height")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(coins.GameID); err != nil {
			return err
		}
		fmt.Println("All runs cleared.")
		return nil
	}

	if flagScoresTUI {
		cfg := screenConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, flagScoresWidth, flagScoresHeight)
		return err
	}

	byBoard := flagScoresWidth > 0 && flagScoresHeight > 0

	var runs []storage.RunEntry
	if byBoard {
		runs, err = store.TopRunsForBoard(coins.GameID, flagScoresWidth, flagScoresHeight, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(coins.GameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	// Display runs
	if byBoard {
		fmt.Printf("Fewest Steps - %dx%d\n", flagScoresWidth, flagScoresHeight)
	} else {
		fmt.Println("Fewest Steps - all boards")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No boards cleared yet.")
		fmt.Println()
		fmt.Println("Play 'coinboard play' to set the first record!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %-12s  %s\n", "Rank", "Steps", "Board", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-12s  %s\n", "----", "-----", "-----", "------", "----")

	for i, r := range runs {
		board := fmt.Sprintf("%dx%d", r.Width, r.Height)
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-7s  %-12s  %s\n", i+1, r.Steps, board, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if byBoard {
		if best, ok, err := store.BestSteps(coins.GameID, flagScoresWidth, flagScoresHeight); err == nil && ok {
			fmt.Printf("Best: %d steps\n", best)
		}
		return nil
	}

	if stats, err := store.GetGameStats(coins.GameID); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Total steps: %d\n",
			stats.RunsCount, stats.BestSteps, stats.AvgSteps, stats.TotalSteps)
	}
	return nil
}
