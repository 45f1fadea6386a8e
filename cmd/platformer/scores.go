package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLevelDir string
	flagScoresAll      bool
	flagScoresClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level-id]",
	Short: "Show best times and campaign scores",
	Long: `Without arguments, shows a per-level summary (best time, wins,
deaths) and the top campaign scores. With a level ID, shows the ten fastest
winning runs of that level.

Examples:
  platformer scores
  platformer scores 02-gap
  platformer scores --all
  platformer scores --clear
  platformer scores --levels ./levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevelDir, "levels", "", "Directory of YAML levels (default: built-in campaign)")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every campaign score, highest first")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores("platformer"); err != nil {
			return err
		}
		fmt.Println("Scores and runs cleared.")
		return nil
	case flagScoresAll:
		return printAllScores(store)
	}

	if len(args) == 1 {
		return printLevelRuns(store, args[0])
	}

	plans, err := levels.Campaign(flagScoresLevelDir)
	if err != nil {
		return fmt.Errorf("cannot load levels: %w", err)
	}
	return printSummary(store, plans)
}

func printLevelRuns(store *storage.Store, levelID string) error {
	runs, err := store.BestRuns("platformer", levelID, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No winning runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %-7s  %s\n", "Rank", "Time", "Player", "Try", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %-7s  %s\n", "----", "----", "------", "---", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-10s  %-12s  %-7d  %s\n",
			i+1, fmt.Sprintf("%.2fs", r.Elapsed.Seconds()), player, r.Attempt, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store, plans []levels.Plan) error {
	summaries, err := store.LevelSummaries("platformer")
	if err != nil {
		return fmt.Errorf("retrieving level summaries: %w", err)
	}
	byID := make(map[string]storage.LevelSummary, len(summaries))
	for _, s := range summaries {
		byID[s.LevelID] = s
	}

	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-10s  %-5s  %s\n", "#", "ID", "Best", "Wins", "Deaths")
	fmt.Printf("  %-3s  %-20s  %-10s  %-5s  %s\n", "-", "--", "----", "----", "------")
	for i, p := range plans {
		s := byID[p.ID]
		best := "--"
		if s.BestTime > 0 {
			best = fmt.Sprintf("%.2fs", s.BestTime.Seconds())
		}
		fmt.Printf("  %-3d  %-20s  %-10s  %-5d  %d\n", i+1, p.ID, best, s.Wins, s.Deaths)
	}

	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println()
	fmt.Println("Campaign Scores")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, entry.Player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore("platformer"); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
	if stats, err := store.GetGameStats("platformer"); err == nil {
		fmt.Printf("Campaigns: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printAllScores(store *storage.Store) error {
	scores, err := store.AllScores("platformer")
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %s\n", "Date", "Player", "Score")
	fmt.Printf("  %-16s  %-12s  %s\n", "----", "------", "-----")
	for _, entry := range scores {
		fmt.Printf("  %-16s  %-12s  %d\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Player, entry.Score)
	}
	return nil
}
