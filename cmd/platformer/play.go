package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelDir   string
	flagWatch      bool
	flagMute       bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a level and play",
	Long: `Start the level picker, then play the campaign from the chosen level.
After the campaign ends or you leave it, you return to the picker.

Controls:
  A/D, Left/Right   - Run
  W, Up, Space      - Jump
  S, G, Shift+Arrow - Glide
  P/Esc             - Pause (Esc again leaves the level)
  R                 - Restart level
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play --level 3
  platformer play --difficulty hard
  platformer play --levels ./levels --watch
  platformer play --config ./my-physics.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at level N (1-based), skipping the picker")
	playCmd.Flags().StringVar(&flagLevelDir, "levels", "", "Directory of YAML levels (default: built-in campaign)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files under --levels change")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy while playing)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logOut, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, "platformer")

	if flagWatch && flagLevelDir == "" {
		return fmt.Errorf("--watch needs --levels")
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelDir(flagLevelDir)

	if !flagMute {
		sink := audio.NewSink(audio.DefaultConfig())
		if err := sink.Start(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer sink.Close()
			platformer.SetAudioSink(sink)
		}
	}

	var watcher *levels.Watcher
	if flagWatch {
		watcher, err = levels.NewWatcher(flagLevelDir)
		if err != nil {
			return fmt.Errorf("cannot watch %s: %w", flagLevelDir, err)
		}
		defer watcher.Close()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	opts := tui.ModelOptions{
		Player:  playerName(),
		Logger:  logger,
		Watcher: watcher,
	}

	if flagLevel > 0 {
		return playFrom(flagLevel-1, store, cfg, opts)
	}

	// Picker loop
	for {
		plans, err := levels.Campaign(flagLevelDir)
		if err != nil {
			return fmt.Errorf("cannot load levels: %w", err)
		}

		result, err := tui.RunMenu("platformer", plans, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard("platformer", plans, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playFrom(result.LevelIndex, store, cfg, opts); err != nil {
			return err
		}
	}
}

// playFrom runs the campaign starting at the given index.
func playFrom(index int, store *storage.Store, cfg core.RuntimeConfig, opts tui.ModelOptions) error {
	platformer.SetStartLevel(index)

	game, err := registry.Create("platformer")
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	opts.Logger.Info("game started", "level", index+1, "levels", flagLevelDir)
	if err := tui.Run(game, store, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	opts.Logger.Info("game ended", "score", game.State().Score)
	return nil
}

// openLogOutput opens the log file, or discards logs when path is empty.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// playerName is the local user name stored with scores.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
