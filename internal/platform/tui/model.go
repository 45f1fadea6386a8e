package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// resizer is implemented by games that keep their state across window resizes.
type resizer interface {
	Resize(w, h int)
}

// levelReloader is implemented by games that can pick up edited level files.
type levelReloader interface {
	ReloadLevels() error
}

// levelsChangedMsg reports a level file change from the watcher.
type levelsChangedMsg struct {
	path string
}

// levelWatchErrMsg reports a watcher failure.
type levelWatchErrMsg struct {
	err error
}

// ModelOptions configures a game host.
type ModelOptions struct {
	Player  string          // Name stored with scores and runs
	Logger  *log.Logger     // Nil discards log output
	Watcher *levels.Watcher // Optional level hot reload

	// Key hold windows; zero uses DefaultHoldInitial and DefaultHoldRepeat.
	HoldInitial time.Duration
	HoldRepeat  time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	watcher    *levels.Watcher
	inputFrame core.InputFrame
	holds      *HoldTracker
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone play has no menu to return to
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	initial, repeat := opts.HoldInitial, opts.HoldRepeat
	if initial <= 0 {
		initial = DefaultHoldInitial
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}

	recordRuns(game, store, opts.Player, logger)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     opts.Player,
		logger:     logger,
		watcher:    opts.Watcher,
		inputFrame: core.NewInputFrame(),
		holds:      NewHoldTracker(cfg.TickRate, initial, repeat),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), waitForLevelChange(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case levelsChangedMsg:
		return m.handleLevelsChanged(msg)

	case levelWatchErrMsg:
		m.logger.Warn("level watcher error", "error", msg.err)
		return m, waitForLevelChange(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.holds) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves a finished or paused game and pauses a running one.
	if m.inputFrame.Has(core.ActionBack) {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize start over at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.holds.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			if _, err := m.store.SavePlayerScore(m.game.ID(), m.player, m.gameState.Score); err != nil {
				m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
			}
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	m.holds.Advance()

	return m, tickCmd(m.config.TickRate)
}

// handleLevelsChanged reloads the campaign after a level file changed.
func (m Model) handleLevelsChanged(msg levelsChangedMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(levelReloader); ok {
		if err := r.ReloadLevels(); err != nil {
			m.logger.Warn("level reload failed", "path", msg.path, "error", err)
		} else {
			m.logger.Info("levels reloaded", "path", msg.path)
		}
	}
	return m, waitForLevelChange(m.watcher)
}

// waitForLevelChange blocks on the watcher and turns its next event into a message.
func waitForLevelChange(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return levelsChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return levelWatchErrMsg{err: err}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot resolve home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, store, cfg, opts)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
