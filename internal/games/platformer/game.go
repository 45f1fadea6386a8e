// Package platformer adapts the world simulation to the registry.Game
// interface: it runs a campaign of level plans, restarts lost levels,
// advances on wins and keeps the score.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Screen layout constants.
const (
	hudRows    = 1
	minScreenW = 24
	minScreenH = 8
	fishPoints = 10
)

// campaignState is the adapter-level state on top of the level status.
type campaignState int

const (
	statePlaying campaignState = iota
	statePaused
	stateComplete
	stateFailed
)

// RunResult describes one finished attempt at a level.
type RunResult struct {
	LevelID    string
	LevelIndex int
	Status     world.Status
	Elapsed    float64 // Simulated seconds until the level was decided
	Fish       int
	FishTotal  int
	Attempt    int
}

// RunObserver is notified every time a level attempt finishes.
type RunObserver func(RunResult)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
	levelDir         string
	audioSink        world.AudioSink
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetStartLevel sets the campaign index the next game starts at.
func SetStartLevel(index int) {
	startLevel = max(index, 0)
}

// SetLevelDir sets a directory of YAML level files. Empty means the built-in campaign.
func SetLevelDir(dir string) {
	levelDir = dir
}

// SetAudioSink sets the sink new games send simulation events to.
func SetAudioSink(sink world.AudioSink) {
	audioSink = sink
}

// Game is the platformer campaign.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager

	plans    []levels.Plan
	startAt  int // Overrides the package start level when not negative
	index    int
	level    *world.Level
	attempts int
	runTime  float64 // Elapsed time when the current attempt was decided
	banked   int     // Fish collected in won levels
	state    campaignState
	loadErr  error

	sink     world.AudioSink
	observer RunObserver
	camera   Camera

	screenTooSmall bool
}

// New creates a new platformer game.
func New() *Game {
	return &Game{startAt: -1}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Platformer"
}

// SetRunObserver registers a callback for finished attempts.
func (g *Game) SetRunObserver(fn RunObserver) {
	g.observer = fn
}

// StartAt makes the next Reset begin at the given campaign index.
func (g *Game) StartAt(index int) {
	g.startAt = max(index, 0)
}

// SetSink overrides the package-level audio sink for this game only.
func (g *Game) SetSink(sink world.AudioSink) {
	g.sink = sink
}

// Reset loads configuration and level plans and starts the campaign.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	gameCfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		gameCfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPlatformerPreset(&gameCfg, difficultyPreset)
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.sink == nil {
		g.sink = audioSink
	}

	g.banked = 0
	g.attempts = 1
	g.loadErr = nil
	g.state = statePlaying
	g.level = nil

	g.plans, err = levels.Campaign(levelDir)
	if err != nil {
		g.fail(err)
		return
	}
	start := startLevel
	if g.startAt >= 0 {
		start = g.startAt
	}
	g.index = min(start, len(g.plans)-1)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.buildLevel()
}

// Resize adapts the viewport without restarting the campaign.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < minScreenW || h < minScreenH
	g.camera.Resize(w, h-hudRows)
	if g.level != nil {
		g.camera.Follow(g.level)
	}
}

// ReloadLevels re-reads the campaign and restarts the current level with the
// new plans. The campaign position is kept when it still exists.
func (g *Game) ReloadLevels() error {
	plans, err := levels.Campaign(levelDir)
	if err != nil {
		return err
	}

	id := ""
	if g.index < len(g.plans) {
		id = g.plans[g.index].ID
	}
	g.plans = plans
	g.index = min(g.index, len(plans)-1)
	for i, p := range plans {
		if p.ID == id {
			g.index = i
			break
		}
	}

	if g.state == stateFailed {
		g.state = statePlaying
		g.loadErr = nil
	}
	if g.state == stateComplete {
		return nil
	}
	g.buildLevel()
	return nil
}

// buildLevel constructs the current plan with difficulty-scaled physics.
func (g *Game) buildLevel() {
	physics := g.cfg.ToPhysics()
	score := g.banked * fishPoints
	physics.HazardSpeed = g.difficulty.HazardSpeed(physics.HazardSpeed, g.index, score)
	physics.Gravity = g.difficulty.Gravity(physics.Gravity, g.index, score)

	lvl, err := g.plans[g.index].Build(world.Options{
		Physics: physics,
		Sink:    g.sink,
		Seed:    g.runtime.Seed + int64(g.index),
	})
	if err != nil {
		g.fail(err)
		return
	}
	g.level = lvl
	g.runTime = 0
	g.camera.Center(lvl)
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.state = stateFailed
	g.level = nil
}

// frameDelta returns the simulated seconds per tick.
func (g *Game) frameDelta() float64 {
	dt := 1.0 / float64(g.runtime.TickRate)
	if g.cfg.Timing.MaxFrame > 0 && dt > g.cfg.Timing.MaxFrame {
		dt = g.cfg.Timing.MaxFrame
	}
	return dt
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.state == stateFailed {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		switch g.state {
		case stateComplete:
			g.Reset(g.runtime)
			return core.StepResult{State: g.State()}
		case statePlaying:
			if g.level.Status() == world.StatusPlaying {
				g.attempts++
				g.buildLevel()
				return core.StepResult{State: g.State()}
			}
		}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case statePaused:
			g.state = statePlaying
		case statePlaying:
			g.state = statePaused
		}
	}

	if g.state != statePlaying {
		return core.StepResult{State: g.State()}
	}

	g.advance(in)

	if g.level.Status() != world.StatusPlaying && g.runTime == 0 {
		g.runTime = g.level.Elapsed()
	}
	if g.level.IsFinished() {
		g.finishLevel()
	}

	return core.StepResult{State: g.State()}
}

// advance animates one frame with a single intent snapshot from src.
func (g *Game) advance(src core.IntentSource) {
	g.level.Animate(g.frameDelta(), src.Intent())
	g.camera.Follow(g.level)
}

// finishLevel reports the attempt and moves the campaign on.
func (g *Game) finishLevel() {
	status := g.level.Status()
	collected := g.collected()
	g.report(status, collected)

	switch status {
	case world.StatusLost:
		g.attempts++
	case world.StatusWon:
		g.banked += collected
		g.attempts = 1
		g.index++
		if g.index >= len(g.plans) {
			g.index = len(g.plans) - 1
			g.state = stateComplete
			return
		}
	}
	g.buildLevel()
}

func (g *Game) report(status world.Status, collected int) {
	if g.observer == nil {
		return
	}
	g.observer(RunResult{
		LevelID:    g.plans[g.index].ID,
		LevelIndex: g.index,
		Status:     status,
		Elapsed:    g.runTime,
		Fish:       collected,
		FishTotal:  g.level.FishTotal(),
		Attempt:    g.attempts,
	})
}

// collected returns the fish taken in the current attempt.
func (g *Game) collected() int {
	if g.level == nil {
		return 0
	}
	return g.level.FishTotal() - g.level.FishRemaining()
}

// Score returns fish collected across the campaign, in points.
// Fish from the running attempt count until the level is rebuilt.
func (g *Game) Score() int {
	if g.state == stateComplete {
		return g.banked * fishPoints
	}
	return (g.banked + g.collected()) * fishPoints
}

// Level returns the running simulation, or nil after a load failure.
func (g *Game) Level() *world.Level {
	return g.level
}

// LevelIndex returns the campaign position of the current plan.
func (g *Game) LevelIndex() int {
	return g.index
}

// Plans returns the campaign.
func (g *Game) Plans() []levels.Plan {
	return g.plans
}

// Attempt returns the 1-based attempt number at the current level.
func (g *Game) Attempt() int {
	return g.attempts
}

// Err returns the error that stopped the campaign, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.state == stateComplete || g.state == stateFailed,
		Won:      g.state == stateComplete,
		Paused:   g.state == statePaused,
	}
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
