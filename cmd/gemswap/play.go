package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gemswap/internal/platform/tui"
	"github.com/vovakirdan/tui-gemswap/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board in the terminal",
	Long: `Start playing the specified board (default: gemswap).

The terminal must report mouse events. Press a gem, drag it onto a
neighbor above, below, left or right of it and release to swap.

Controls:
  Mouse      - Drag gems
  R          - New board (the finished one is saved to statistics)
  Ctrl+S     - Save a text screenshot to ~/.gemswap/screenshots
  ?          - More keys
  Q/Ctrl+C   - Quit

Examples:
  gemswap play
  gemswap play gemswap_mini
  gemswap play gemswap_legacy --seed 42
  gemswap play --config ./my-board.yaml --log ./gemswap.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := variantArg(args)

	// Surface config errors before the TUI takes the terminal
	loadConfig(variant)

	// Create game instance
	game, err := registry.Create(string(variant))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := newLogger()
	store := openStore()

	// Run the game
	_, runErr := tui.RunGame(game, store, runtimeConfig(), tui.WithLogger(logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
}
