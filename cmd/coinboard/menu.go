package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose a board size, play, repeat",
	Long: `Start with the board size dialog. After a board, press B to pick
another size or R for a new board of the same size.

Dialog controls:
  Tab/Up/Down  - Switch between width and height
  Enter        - Play
  Ctrl+P       - Cycle presets (small 3x3, classic 5x5, large 8x8)
  Ctrl+T       - Scoreboard
  Esc          - Quit

Examples:
  coinboard menu
  coinboard menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runSession(screenConfig())
}
