package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

var checkCmd = &cobra.Command{
	Use:   "check <file...>",
	Short: "Validate level files",
	Long: `Parses each level file and builds it, reporting the first problem
found in each. The exit status is non-zero when any file is invalid.

Examples:
  platformer check levels/01-intro.yaml
  platformer check levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	loader := levels.NewLoader("")
	failed := 0

	for _, path := range args {
		plan, err := loader.LoadFile(path)
		if err == nil {
			err = plan.Validate()
		}
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s\n", path)
			fmt.Printf("      %s\n", describeLevelError(err))
			continue
		}
		w, h := plan.Size()
		fmt.Printf("ok    %s  (%s, %dx%d, %d fish)\n", path, plan.Title(), w, h, plan.FishCount())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(args))
	}
	return nil
}

// describeLevelError points at the offending cell for malformed grids.
func describeLevelError(err error) string {
	var malformed *world.MalformedLevelError
	if !errors.As(err, &malformed) {
		return err.Error()
	}
	switch {
	case malformed.Row < 0:
		return malformed.Reason
	case malformed.Col < 0:
		return fmt.Sprintf("line %d: %s", malformed.Row+1, malformed.Reason)
	}
	return fmt.Sprintf("line %d, column %d: %s", malformed.Row+1, malformed.Col+1, malformed.Reason)
}
