package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pixel-riders/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                           { return g.id }
func (g fakeGame) Title() string                        { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return fakeGame{id: "test_b"} })
	Register("test_a", func() Game { return fakeGame{id: "test_a"} })

	require.True(t, Exists("test_a"))
	assert.Equal(t, "Fake test_a", Title("test_a"))

	g, err := Create("test_b")
	require.NoError(t, err)
	assert.Equal(t, "test_b", g.ID())

	ids := make([]string, 0)
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "test_a")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_mode")
	assert.Error(t, err)
	assert.False(t, Exists("no_such_mode"))
	assert.Empty(t, Title("no_such_mode"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return fakeGame{id: "test_dup"} })
	assert.Panics(t, func() {
		Register("test_dup", func() Game { return fakeGame{id: "test_dup"} })
	})
}
