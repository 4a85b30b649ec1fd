package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gemswap/internal/config"
	"github.com/vovakirdan/tui-gemswap/internal/platform/tui"
	"github.com/vovakirdan/tui-gemswap/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
Esc on a board returns to the menu; Tab opens session statistics.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Statistics
  Q            - Quit

Examples:
  gemswap menu
  gemswap menu --db ./stats.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logFile := newLogger()
	store := openStore()

	cfg := runtimeConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants statistics
		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, "", cfg.ScreenW, cfg.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from statistics
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Skip boards whose config does not load
		if _, err := config.LoadVariant(flagConfig, config.Variant(gameID)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
			continue
		}

		goBack, err := tui.RunGame(game, store, cfg, tui.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
		}
		if !goBack {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}
}
