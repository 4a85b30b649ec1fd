package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gemswap/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [board]",
	Short: "Print the effective board configuration",
	Long: `Print the configuration a board would be played with, after the
search path and the board's own overrides are applied.

Config search order:
  1. --config <path>
  2. ~/.gemswap/configs/gemswap.yaml
  3. ./configs/gemswap.yaml
  4. Built-in defaults

Examples:
  gemswap config
  gemswap config gemswap_mini
  gemswap config --defaults > ~/.gemswap/configs/gemswap.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default YAML")
}

func runConfig(_ *cobra.Command, args []string) {
	if flagConfigDefaults {
		fmt.Print(string(config.GetDefaultYAML()))
		return
	}

	cfg := loadConfig(variantArg(args))
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
