package render

import (
	"github.com/fcblfcbasel1/Project-Informatik/assets"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// View supplies the world-space top-left of what is visible.
type View interface {
	ViewTopLeft() (float64, float64)
}

// Canvas draws entity sprites into an offscreen image that the host blits
// to the window. It implements ecs.Renderer.
type Canvas struct {
	surface *ebiten.Image
	view    View
	sheets  *assets.Library
	frames  map[frameKey]*ebiten.Image
	missing map[string]bool
	log     zerolog.Logger
}

type frameKey struct {
	sheet    string
	col, row int
}

func NewCanvas(width, height int, view View, sheets *assets.Library, log zerolog.Logger) *Canvas {
	return &Canvas{
		surface: ebiten.NewImage(width, height),
		view:    view,
		sheets:  sheets,
		frames:  map[frameKey]*ebiten.Image{},
		missing: map[string]bool{},
		log:     log,
	}
}

// Surface is the image the world was drawn into this frame.
func (c *Canvas) Surface() *ebiten.Image {
	return c.surface
}

func (c *Canvas) ClearSurface() {
	c.surface.Clear()
}

// Reset drops cached frames, e.g. after a sheet was edited on disk.
func (c *Canvas) Reset() {
	clear(c.frames)
	clear(c.missing)
}

func (c *Canvas) DrawLayer(_ string, entities []*ecs.Entity) {
	var left, top float64
	if c.view != nil {
		left, top = c.view.ViewTopLeft()
	}
	for _, e := range entities {
		img := c.frame(e.Sheet, e.Col, e.Row)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(e.Pos.X-left, e.Pos.Y-top)
		c.surface.DrawImage(img, op)
	}
}

func (c *Canvas) frame(sheet string, col, row int) *ebiten.Image {
	key := frameKey{sheet: sheet, col: col, row: row}
	if img, ok := c.frames[key]; ok {
		return img
	}
	if sheet == "" || c.missing[sheet] {
		return nil
	}
	src, err := c.sheets.Frame(sheet, col, row)
	if err != nil {
		c.missing[sheet] = true
		c.log.Warn().Err(err).Str("sheet", sheet).Msg("sprite sheet unavailable")
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.frames[key] = img
	return img
}
