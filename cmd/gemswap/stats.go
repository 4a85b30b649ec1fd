package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gemswap/internal/platform/tui"
	"github.com/vovakirdan/tui-gemswap/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsTUI   bool
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [board]",
	Short: "Show session statistics",
	Long: `Show totals and recent sessions for a board, or for all boards.

Examples:
  gemswap stats
  gemswap stats gemswap_mini --limit 20
  gemswap stats --tui
  gemswap stats gemswap --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&flagStatsLimit, "limit", "n", 10, "Number of recent sessions to show")
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Open the interactive statistics viewer")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all sessions of the board")
}

func runStats(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = string(variantArg(args))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if gameID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a board")
			os.Exit(1)
		}
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared sessions for %s.\n", gameID)
		return
	}

	if flagStatsTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunStats(store, gameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printTotals(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	if err := printRecent(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printTotals(store *storage.Store, gameID string) error {
	var all []*storage.GameStats
	if gameID != "" {
		stats, err := store.GetGameStats(gameID)
		if err != nil {
			return err
		}
		all = append(all, stats)
	} else {
		byID, err := store.GetAllGamesStats()
		if err != nil {
			return err
		}
		for _, s := range byID {
			all = append(all, s)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].GameID < all[j].GameID })
	}

	if len(all) == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}

	fmt.Printf("  %-16s %8s %8s %8s %8s  %s\n", "Board", "Sessions", "Swaps", "Reverts", "Rate", "Last played")
	fmt.Printf("  %-16s %8s %8s %8s %8s  %s\n", "-----", "--------", "-----", "-------", "----", "-----------")
	for _, s := range all {
		last := "-"
		if s.SessionCount > 0 {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-16s %8d %8d %8d %7.0f%%  %s\n",
			s.GameID, s.SessionCount, s.Swaps, s.Reverts, s.SwapRate()*100, last)
	}
	return nil
}

func printRecent(store *storage.Store, gameID string) error {
	sessions, err := store.RecentSessions(gameID, flagStatsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	fmt.Println("Recent sessions:")
	rows := tui.SessionRows(sessions)
	fmt.Printf("  %-4s %-16s %6s %8s %8s  %-12s %s\n", "#", "Board", "Swaps", "Reverts", "Time", "Player", "Date")
	for i, r := range rows {
		fmt.Printf("  %-4s %-16s %6s %8s %8s  %-12s %s\n",
			r[0], sessions[i].GameID, r[1], r[2], r[3], r[4], r[5])
	}
	return nil
}
