package render

import (
	"math"

	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
)

// Camera follows the player across the map. It works in world pixels and
// knows nothing about the output device, so both the window and the
// terminal renderer use it.
type Camera struct {
	PosX float64
	PosY float64

	viewW float64
	viewH float64

	// smoothing factor (0..1]; 1 snaps to the target
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64

	frames  int
	onClear func()
}

// NewCamera creates a camera with a view of viewW x viewH world pixels.
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{
		viewW:  viewW,
		viewH:  viewH,
		smooth: 0.15,
		PosX:   viewW / 2,
		PosY:   viewH / 2,
	}
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = max(0, min(f, 1))
}

// SetWorldBounds sets the map size in pixels for clamping.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// SetViewSize changes the visible area, e.g. after a terminal resize.
func (c *Camera) SetViewSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.viewW = w
	c.viewH = h
}

// OnClear registers the hook ClearScreen runs.
func (c *Camera) OnClear(fn func()) {
	c.onClear = fn
}

func (c *Camera) ClearScreen() {
	if c.onClear != nil {
		c.onClear()
	}
}

// NextFrame counts frames; the count is exposed for debug overlays.
func (c *Camera) NextFrame() {
	c.frames++
}

func (c *Camera) Frames() int {
	return c.frames
}

// CenterOn moves the camera toward the center of e.
func (c *Camera) CenterOn(e *ecs.Entity) {
	if e == nil {
		return
	}
	center := e.Center()
	if c.smooth <= 0 {
		c.PosX, c.PosY = center.X, center.Y
	} else {
		c.PosX = common.Lerp(c.PosX, center.X, c.smooth)
		c.PosY = common.Lerp(c.PosY, center.Y, c.smooth)
	}
	c.PosX = math.Round(c.PosX)
	c.PosY = math.Round(c.PosY)
	c.clamp()
}

// SnapTo centers the camera on a point without smoothing.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.clamp()
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - c.viewW/2, c.PosY - c.viewH/2
}

func (c *Camera) clamp() {
	c.PosX = clampAxis(c.PosX, c.viewW, c.worldW)
	c.PosY = clampAxis(c.PosY, c.viewH, c.worldH)
}

func clampAxis(pos, view, world float64) float64 {
	if world <= 0 {
		return pos
	}
	half := view / 2
	lo, hi := half, world-half
	if hi < lo {
		// world smaller than view: center on world
		return world / 2
	}
	return max(lo, min(pos, hi))
}
