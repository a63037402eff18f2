package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinboard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in coins.yaml. Save it as ~/.coinboard/configs/coins.yaml
or ./configs/coins.yaml (or pass --config) to change board limits, coin count,
spawn and movement policies, or the win message delay.

Examples:
  coinboard config > ~/.coinboard/configs/coins.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.GetDefaultYAML()))
}
