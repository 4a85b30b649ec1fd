package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gemswap/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui [board]",
	Short: "Play a board in a desktop window",
	Long: `Open the board in a desktop window drawn at board pixel scale.

Controls:
  Mouse    - Drag gems
  R        - New board
  Q/Esc    - Quit

Examples:
  gemswap gui
  gemswap gui gemswap_mini --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, args []string) {
	variant := variantArg(args)
	cfg := loadConfig(variant)

	logger, logFile := newLogger()
	store := openStore()

	err := gui.Run(gui.Options{
		Variant: variant,
		Config:  cfg,
		Store:   store,
		Logger:  logger,
		Seed:    flagSeed,
	})

	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
