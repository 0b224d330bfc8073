package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pixel-riders/internal/core"
)

func TestScreenRendererPlainText(t *testing.T) {
	// A renderer on a non-terminal writer has no color profile, so output
	// is the bare runes.
	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "c", core.ColorBlue)
	s.DrawText(0, 1, "rider")

	assert.Equal(t, s.String(), sr.Render(s))
}

func TestScreenRendererUnknownColor(t *testing.T) {
	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(250))

	assert.Equal(t, "x  ", sr.Render(s))
}

func TestScreenRendererEmpty(t *testing.T) {
	sr := NewScreenRenderer(nil)
	assert.Empty(t, sr.Render(core.NewScreen(0, 0)))
}
