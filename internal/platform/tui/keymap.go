package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions.
// Shifted arrows move and glide at once. isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "a", "h", "left":
		return []core.Action{core.ActionLeft}, false
	case "d", "l", "right":
		return []core.Action{core.ActionRight}, false
	case "w", "k", "up", " ":
		return []core.Action{core.ActionJump}, false
	case "s", "j", "down", "g":
		return []core.Action{core.ActionGlide}, false
	case "shift+left":
		return []core.Action{core.ActionLeft, core.ActionGlide}, false
	case "shift+right":
		return []core.Action{core.ActionRight, core.ActionGlide}, false
	case "shift+up":
		return []core.Action{core.ActionJump, core.ActionGlide}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame and the hold tracker from a key
// message. Movement goes to the tracker; everything else to the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, holds *HoldTracker) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		if holds != nil && IsMovement(a) {
			holds.Press(a)
			continue
		}
		frame.Set(a)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// IsMovement reports whether an action is held rather than one-shot.
func IsMovement(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionGlide:
		return true
	}
	return false
}

// Default hold windows. The first press has to bridge the terminal's
// auto-repeat delay; later repeats arrive much faster.
const (
	DefaultHoldInitial = 350 * time.Millisecond
	DefaultHoldRepeat  = 120 * time.Millisecond
)

// HoldTracker turns key presses into held movement. Terminals report
// presses and auto-repeats but never releases, so a movement action stays
// held until a deadline that every new press pushes forward.
type HoldTracker struct {
	initial  int // Ticks a fresh press is held
	repeat   int // Ticks a repeated press extends the hold
	tick     int
	deadline map[core.Action]int
}

// NewHoldTracker creates a tracker for the given tick rate.
func NewHoldTracker(tickRate int, initial, repeat time.Duration) *HoldTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &HoldTracker{
		initial:  durationTicks(initial, tickRate),
		repeat:   durationTicks(repeat, tickRate),
		deadline: make(map[core.Action]int),
	}
}

func durationTicks(d time.Duration, tickRate int) int {
	ticks := int(d * time.Duration(tickRate) / time.Second)
	return max(ticks, 1)
}

// Press records a key press. Pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.deadline, core.ActionRight)
	case core.ActionRight:
		delete(h.deadline, core.ActionLeft)
	}

	if h.Held(a) {
		h.deadline[a] = max(h.deadline[a], h.tick+h.repeat)
		return
	}
	h.deadline[a] = h.tick + h.initial
}

// Release drops a held action immediately.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.deadline, a)
}

// Held reports whether a is held at the current tick.
func (h *HoldTracker) Held(a core.Action) bool {
	d, ok := h.deadline[a]
	return ok && h.tick < d
}

// Apply sets every held action on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a := range h.deadline {
		if h.Held(a) {
			frame.Set(a)
		}
	}
}

// Advance moves to the next tick and forgets expired holds.
func (h *HoldTracker) Advance() {
	h.tick++
	for a, d := range h.deadline {
		if h.tick >= d {
			delete(h.deadline, a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.deadline)
}
