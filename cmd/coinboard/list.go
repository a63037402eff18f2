package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and board presets",
	Long:  `Shows the registered games and the board size presets offered by the dialog.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Board presets:")
	fmt.Println()
	for _, p := range config.BoardPresets() {
		fmt.Printf("  %-8s  %dx%d\n", p.Name, p.Width, p.Height)
	}

	fmt.Println()
	fmt.Printf("Default board %dx%d with %d coins, largest %dx%d.\n",
		coinsCfg.Board.Width, coinsCfg.Board.Height, coinsCfg.CoinCount(coinsCfg.Board.Width),
		coinsCfg.Board.MaxWidth, coinsCfg.Board.MaxHeight)
	fmt.Println("Run 'coinboard play --width W --height H' to play a board.")
}
