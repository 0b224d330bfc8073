package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-riders/internal/games/riders"
	"github.com/vovakirdan/pixel-riders/internal/platform/tui"
	"github.com/vovakirdan/pixel-riders/internal/registry"
	"github.com/vovakirdan/pixel-riders/internal/storage"
)

var (
	flagScoresTUI bool
	flagJumps     int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and jump stats",
	Long: `Display the top 10 scores and the jump log summary for a mode
(default: riders). With --tui the interactive scoreboard opens instead.

Examples:
  riders scores
  riders scores riders_zen --jumps 5
  riders scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagJumps, "jumps", 0, "Also list this many recent jumps")
}

func runScores(_ *cobra.Command, args []string) {
	mode := riders.ModeRide
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'riders list' to see ride modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(store, mode, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if err := printJumpStats(store, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving jump stats: %v\n", err)
	}
}

func printScores(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", registry.Title(mode))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'riders play %s' to set the first one!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printJumpStats(store *storage.Store, mode string) error {
	stats, err := store.GetJumpStats(mode)
	if err != nil {
		return err
	}
	if stats.Jumps == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Jumps")
	fmt.Printf("  Total:     %d (%d committed, %d perfect)\n", stats.Jumps, stats.Committed, stats.Perfect)
	fmt.Printf("  Crashes:   %d\n", stats.Crashes)
	fmt.Printf("  Flips:     %d\n", stats.TotalFlips)
	fmt.Printf("  Best jump: %d\n", stats.BestJump)
	fmt.Printf("  Longest:   %.2fs\n", stats.LongestAirtime.Seconds())

	if flagJumps <= 0 {
		return nil
	}
	jumps, err := store.RecentJumps(mode, flagJumps)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-5s  %-7s  %-6s  %s\n", "Outcome", "Quality", "Flips", "Air", "Points", "When")
	for _, j := range jumps {
		outcome := j.Outcome
		if j.Reason != "" {
			outcome = j.Reason
		}
		fmt.Printf("  %-10s  %-8s  %-5d  %-7s  %-6d  %s\n",
			outcome, j.Quality, j.Flips,
			fmt.Sprintf("%.2fs", float64(j.AirtimeMS)/1000),
			j.Points, j.CreatedAt.Format("01-02 15:04"))
	}
	return nil
}
