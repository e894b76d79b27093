package render

import (
	"testing"

	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestCameraCenterOn(t *testing.T) {
	cases := []struct {
		name         string
		smooth       float64
		bounds       [2]float64
		pos          cp.Vector
		wantX, wantY float64
	}{
		{"snap_unbounded", 1, [2]float64{}, cp.Vector{X: 500, Y: 300}, 516, 316},
		{"smoothed", 0.5, [2]float64{}, cp.Vector{X: 84, Y: 34}, 75, 50},
		{"clamped_to_min", 1, [2]float64{1000, 1000}, cp.Vector{}, 50, 50},
		{"clamped_to_max", 1, [2]float64{1000, 1000}, cp.Vector{X: 990, Y: 990}, 950, 950},
		{"world_smaller_than_view", 1, [2]float64{60, 40}, cp.Vector{X: 10, Y: 10}, 30, 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(100, 100)
			cam.SetSmooth(c.smooth)
			cam.SetWorldBounds(c.bounds[0], c.bounds[1])

			cam.CenterOn(&ecs.Entity{Pos: c.pos, Size: 32})

			assert.Equal(t, c.wantX, cam.PosX)
			assert.Equal(t, c.wantY, cam.PosY)
		})
	}
}

func TestCameraHooks(t *testing.T) {
	cam := NewCamera(100, 100)
	cleared := 0
	cam.OnClear(func() { cleared++ })

	cam.ClearScreen()
	cam.NextFrame()
	cam.NextFrame()
	cam.CenterOn(nil)

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 2, cam.Frames())
	x, y := cam.ViewTopLeft()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}
