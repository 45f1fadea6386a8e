package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// runReporter is implemented by games that report finished level attempts.
type runReporter interface {
	SetRunObserver(platformer.RunObserver)
}

// recordRuns persists every finished level attempt of the game.
func recordRuns(game registry.Game, store *storage.Store, player string, logger *log.Logger) {
	r, ok := game.(runReporter)
	if !ok || store == nil {
		return
	}

	gameID := game.ID()
	r.SetRunObserver(func(res platformer.RunResult) {
		rec := RunRecord(gameID, player, res)
		if _, err := store.SaveRun(rec); err != nil {
			logger.Warn("could not save run", "level", res.LevelID, "error", err)
			return
		}
		logger.Debug("run saved", "level", res.LevelID, "outcome", rec.Outcome, "elapsed", rec.Elapsed)
	})
}

// RunRecord converts a finished attempt into a storage record.
func RunRecord(gameID, player string, res platformer.RunResult) storage.RunRecord {
	outcome := storage.OutcomeLost
	if res.Status == world.StatusWon {
		outcome = storage.OutcomeWon
	}
	return storage.RunRecord{
		GameID:    gameID,
		LevelID:   res.LevelID,
		Player:    player,
		Outcome:   outcome,
		Elapsed:   time.Duration(res.Elapsed * float64(time.Second)).Round(time.Millisecond),
		Fish:      res.Fish,
		FishTotal: res.FishTotal,
		Attempt:   res.Attempt,
	}
}
