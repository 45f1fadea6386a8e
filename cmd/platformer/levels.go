package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var flagListLevelDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of a campaign",
	Long: `Shows the levels played in order. Without --levels this is the
built-in campaign; with it, every YAML level under the directory, sorted by ID.
Files that fail to load are listed with the reason.

Examples:
  platformer levels
  platformer levels --levels ./levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagListLevelDir, "levels", "", "Directory of YAML levels (default: built-in campaign)")
}

func runLevels(_ *cobra.Command, _ []string) error {
	var report levels.Report
	if flagListLevelDir == "" {
		report.Plans = levels.Builtin()
		fmt.Println("Built-in campaign:")
	} else {
		var err error
		report, err = levels.NewLoader(flagListLevelDir).Scan()
		if err != nil {
			return fmt.Errorf("cannot scan %s: %w", flagListLevelDir, err)
		}
		fmt.Printf("Levels in %s:\n", flagListLevelDir)
	}
	fmt.Println()

	if len(report.Plans) == 0 {
		fmt.Println("No levels found.")
	} else {
		fmt.Printf("  %-3s  %-20s  %-24s  %-7s  %s\n", "#", "ID", "Title", "Size", "Fish")
		fmt.Printf("  %-3s  %-20s  %-24s  %-7s  %s\n", "-", "--", "-----", "----", "----")
		for i, p := range report.Plans {
			w, h := p.Size()
			fmt.Printf("  %-3d  %-20s  %-24s  %-7s  %d\n",
				i+1, p.ID, p.Title(), fmt.Sprintf("%dx%d", w, h), p.FishCount())
		}
	}

	if len(report.Skipped) > 0 {
		fmt.Println()
		fmt.Println("Skipped:")
		for _, s := range report.Skipped {
			fmt.Printf("  %s: %v\n", s.Path, s.Err)
		}
	}
	return nil
}
