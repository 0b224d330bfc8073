package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-riders/internal/core"
)

// holdTicks is how long a key press keeps its action active. Terminals send
// no key-up events, so a held key is a stream of repeats; the window must
// outlast the gap between repeats.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "d", "right", "l":
		return core.ActionThrottle, false
	case "a", "left", "h", " ":
		return core.ActionBrake, false
	case "w", "up", "k":
		return core.ActionLeanBack, false
	case "s", "down", "j":
		return core.ActionLeanForward, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// continuous reports whether an action stays active while its key is held.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionThrottle, core.ActionBrake, core.ActionLeanBack, core.ActionLeanForward:
		return true
	}
	return false
}

// HeldInput turns key presses into per-tick input. Riding actions stay held
// for a few ticks after each press; one-shot actions fire on the next tick
// only.
type HeldInput struct {
	held    map[core.Action]int
	oneShot core.InputFrame
}

// NewHeldInput creates an empty input state.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		held:    make(map[core.Action]int),
		oneShot: core.NewInputFrame(),
	}
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if continuous(a) {
		h.held[a] = holdTicks
		// Opposite actions cancel each other out.
		switch a {
		case core.ActionLeanBack:
			delete(h.held, core.ActionLeanForward)
		case core.ActionLeanForward:
			delete(h.held, core.ActionLeanBack)
		case core.ActionThrottle:
			delete(h.held, core.ActionBrake)
		case core.ActionBrake:
			delete(h.held, core.ActionThrottle)
		}
		return
	}
	h.oneShot.Set(a)
}

// Next returns the input for the coming tick and ages held actions.
func (h *HeldInput) Next() core.InputFrame {
	frame := h.oneShot.Clone()
	h.oneShot.Clear()
	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	return frame
}

// Peek reports whether an action is pending without consuming it.
func (h *HeldInput) Peek(a core.Action) bool {
	if h.oneShot.Has(a) {
		return true
	}
	_, ok := h.held[a]
	return ok
}

// Reset drops all pending input.
func (h *HeldInput) Reset() {
	clear(h.held)
	h.oneShot.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
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
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
