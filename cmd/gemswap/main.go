// gemswap is a drag-and-drop gem swapping board for the terminal, a desktop
// window and SSH.
//
// Usage:
//
//	gemswap list              - List available boards
//	gemswap play [board]      - Play a board in the terminal (mouse)
//	gemswap menu              - Start menu to pick boards interactively
//	gemswap gui [board]       - Play a board in a desktop window
//	gemswap serve             - Start SSH server for remote play
//	gemswap stats [board]     - Show session statistics
//	gemswap config [board]    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for a reproducible board
//	--db <path>        - Set database path (default: ~/.gemswap/stats.db)
//	--config <path>    - Use a custom board config YAML
//	--log <path>       - Write gesture logs to a file
//	--log-level <lvl>  - debug, info, warn or error (default: debug)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gemswap/internal/config"
	"github.com/vovakirdan/tui-gemswap/internal/core"
	"github.com/vovakirdan/tui-gemswap/internal/games/gemswap"
	"github.com/vovakirdan/tui-gemswap/internal/registry"
	"github.com/vovakirdan/tui-gemswap/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemswap",
	Short: "Gem Swap - drag gems onto their neighbors",
	Long: `Gem Swap is a board of colored gems. Drag a gem with the mouse and
drop it onto a horizontal or vertical neighbor to swap the two; any other
drop puts it back.

Available commands:
  list     - Show all available boards
  play     - Play a board in the terminal
  menu     - Interactive board picker menu
  gui      - Play a board in a desktop window
  serve    - Start SSH server for remote play
  stats    - View session statistics
  config   - Print the effective configuration

Examples:
  gemswap list
  gemswap play
  gemswap play gemswap_mini --seed 42
  gemswap gui
  gemswap serve --ssh :2222
  gemswap stats gemswap`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		gemswap.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemswap/stats.db", "Path to statistics database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "debug", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// variantArg returns the board named by args, or the default board.
// Exits if the board is unknown.
func variantArg(args []string) config.Variant {
	if len(args) == 0 {
		return config.VariantClassic
	}

	id := args[0]
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'gemswap list' to see available boards.")
		os.Exit(1)
	}
	return config.Variant(id)
}

// loadConfig loads and validates the config for a variant, exiting on error.
func loadConfig(v config.Variant) config.GemSwapConfig {
	cfg, err := config.LoadVariant(flagConfig, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger returns a file logger when --log is set, or a discarding one.
// The TUI owns the terminal, so logs never go to stdout or stderr there.
func newLogger() (*log.Logger, io.Closer) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gemswap",
		Level:           parseLevel(),
	})
	return logger, f
}

// parseLevel parses --log-level, falling back to debug.
func parseLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using debug\n", err)
		return log.DebugLevel
	}
	return level
}

// openStore opens the statistics database; the game works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open statistics database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
