package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresStats  bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded results for a mode",
	Long: `Display recorded match results for the specified mode
(default: battleship), best scores first.

Examples:
  battleship scores
  battleship scores battleship_quick
  battleship scores --recent --limit 20
  battleship scores --stats
  battleship scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List newest matches instead of best scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show win/loss statistics for every mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "battleship"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !flagScoresStats && !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'battleship list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresStats:
		return printAllStats(store)
	case flagScoresClear:
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return nil
	}

	var results []storage.Result
	heading := "Best Results"
	if flagScoresRecent {
		heading = "Recent Matches"
		results, err = store.RecentResults(gameID, flagScoresLimit)
	} else {
		results, err = store.TopResults(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("%s - %s\n\n", heading, game.Title())

	if len(results) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'battleship play %s' to get on the board!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-4s  %-12s  %s\n", "Rank", "Score", "Result", "Shots", "Acc", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-4s  %-12s  %s\n", "----", "-----", "------", "-----", "---", "------", "----")
	for i, r := range results {
		outcome := "Loss"
		if r.Won() {
			outcome = "Win"
		}
		fmt.Printf("  %-4d  %-6d  %-6s  %-5d  %3.0f%%  %-12s  %s\n",
			i+1, r.Score, outcome, r.Shots, r.Accuracy()*100, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Played %d, won %d, lost %d. Best: %d\n", stats.Played, stats.Wins, stats.Losses(), stats.HighScore)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %-6s  %-4s  %-6s  %-6s  %-10s  %s\n", "Mode", "Played", "Wins", "Losses", "Best", "Best shots", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-18s  %-6d  %-4d  %-6d  %-6d  %-10d  %s\n",
			id, st.Played, st.Wins, st.Losses(), st.HighScore, st.BestShots, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
