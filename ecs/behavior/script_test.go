package behavior

import (
	"testing"

	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chaseSrc = `
pos := engine.position()
target := engine.player_position()
if target != undefined {
	engine.move(target[0] - pos[0], target[1] - pos[1])
	engine.set_row(2)
}
`

func TestScriptMovesTowardPlayer(t *testing.T) {
	w, _, _ := newTestWorld()
	player := newPlayer(w)
	player.Pos = cp.Vector{X: 100}
	enemy := w.NewEntity(ecs.KindEnemy, ecs.LayerEnemy)
	enemy.Speed = 5

	s, err := NewScript("chase.tengo", []byte(chaseSrc))
	require.NoError(t, err)
	s.Update(w, enemy)

	assert.InDelta(t, 5.0, enemy.Delta.X, 1e-9)
	assert.InDelta(t, 0.0, enemy.Delta.Y, 1e-9)
	assert.Equal(t, 2, enemy.Row)
	assert.False(t, s.Failed())
}

func TestScriptWithoutPlayerStaysPut(t *testing.T) {
	w, _, _ := newTestWorld()
	enemy := w.NewEntity(ecs.KindEnemy, ecs.LayerEnemy)
	enemy.Speed = 5

	s, err := NewScript("chase.tengo", []byte(chaseSrc))
	require.NoError(t, err)
	s.Update(w, enemy)

	assert.False(t, enemy.Moved())
}

func TestScriptStateSurvivesFrames(t *testing.T) {
	w, _, _ := newTestWorld()
	enemy := w.NewEntity(ecs.KindEnemy, ecs.LayerEnemy)

	s, err := NewScript("count.tengo", []byte(`
if state.n == undefined { state.n = 0 }
state.n += 1
engine.set_row(state.n)
`))
	require.NoError(t, err)

	for range 3 {
		s.Update(w, enemy)
	}
	assert.Equal(t, 3, enemy.Row)

	clone := s.Clone()
	clone.Update(w, enemy)
	assert.Equal(t, 1, enemy.Row)
}

func TestScriptErrors(t *testing.T) {
	_, err := NewScript("broken.tengo", []byte(`x := `))
	require.Error(t, err)

	w, _, _ := newTestWorld()
	enemy := w.NewEntity(ecs.KindEnemy, ecs.LayerEnemy)
	s, err := NewScript("bad_args.tengo", []byte(`engine.move("left")`))
	require.NoError(t, err)

	s.Update(w, enemy)
	assert.True(t, s.Failed())

	require.NoError(t, s.Reload([]byte(`engine.set_row(4)`)))
	assert.False(t, s.Failed())
	s.Update(w, enemy)
	assert.Equal(t, 4, enemy.Row)
}
