package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pixel-riders/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey("d"), core.ActionThrottle, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionThrottle, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionBrake, false},
		{runeKey("w"), core.ActionLeanBack, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionLeanForward, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(runeKey("l")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("z")))
}

func TestHeldInputHoldsRidingActions(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionThrottle)

	for i := range holdTicks {
		frame := h.Next()
		require.Truef(t, frame.Has(core.ActionThrottle), "tick %d", i)
	}
	assert.False(t, h.Next().Has(core.ActionThrottle), "throttle should release after the hold window")
}

func TestHeldInputRepeatExtendsHold(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionLeanBack)
	for range holdTicks - 1 {
		h.Next()
	}
	h.Press(core.ActionLeanBack)

	for range holdTicks {
		require.True(t, h.Next().Has(core.ActionLeanBack))
	}
}

func TestHeldInputOppositesCancel(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionLeanBack)
	h.Press(core.ActionLeanForward)

	frame := h.Next()
	assert.True(t, frame.Has(core.ActionLeanForward))
	assert.False(t, frame.Has(core.ActionLeanBack))

	h.Press(core.ActionBrake)
	h.Press(core.ActionThrottle)
	frame = h.Next()
	assert.True(t, frame.Has(core.ActionThrottle))
	assert.False(t, frame.Has(core.ActionBrake))
}

func TestHeldInputOneShot(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionPause)
	h.Press(core.ActionNone)

	assert.True(t, h.Peek(core.ActionPause))
	assert.True(t, h.Next().Has(core.ActionPause))
	assert.False(t, h.Next().Has(core.ActionPause))
	assert.False(t, h.Peek(core.ActionPause))
}

func TestHeldInputReset(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionThrottle)
	h.Press(core.ActionRestart)
	h.Reset()

	frame := h.Next()
	assert.False(t, frame.Has(core.ActionThrottle))
	assert.False(t, frame.Has(core.ActionRestart))
}
