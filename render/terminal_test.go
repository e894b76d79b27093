package render

import (
	"testing"

	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTerminalDrawsLayersInOrder(t *testing.T) {
	screen := newSimScreen(t, 10, 6)
	cam := NewCamera(10*32, 5*32)
	cam.SnapTo(5*32, 2.5*32)
	term := NewTerminal(screen, cam)

	ground := &ecs.Entity{Kind: ecs.KindBackground, Pos: cp.Vector{X: 64, Y: 32}, Size: 32}
	player := &ecs.Entity{Kind: ecs.KindPlayer, Pos: cp.Vector{X: 64, Y: 32}, Size: 32}
	stone := &ecs.Entity{Kind: ecs.KindStone, Pos: cp.Vector{X: 0, Y: 0}, Size: 32}
	offscreen := &ecs.Entity{Kind: ecs.KindStone, Pos: cp.Vector{X: 2000, Y: 0}, Size: 32}

	term.ClearSurface()
	term.DrawLayer(ecs.LayerBackground, []*ecs.Entity{ground})
	term.DrawLayer(ecs.LayerWorld, []*ecs.Entity{stone, offscreen})
	term.DrawLayer(ecs.LayerPlayer, []*ecs.Entity{player})
	term.Status("money 100")

	assert.Equal(t, '@', runeAt(screen, 2, 2))
	assert.Equal(t, '#', runeAt(screen, 0, 1))
	assert.Equal(t, 'm', runeAt(screen, 0, 0))
	assert.Equal(t, ' ', runeAt(screen, 9, 0))
}

func TestTerminalViewSize(t *testing.T) {
	screen := newSimScreen(t, 40, 11)
	term := NewTerminal(screen, nil)

	w, h := term.ViewSize()
	assert.Equal(t, 40.0*32, w)
	assert.Equal(t, 10.0*32, h)
}
