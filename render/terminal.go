package render

import (
	"math"

	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/gdamore/tcell/v2"
)

// Glyph is how one entity kind looks in a terminal cell.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// DefaultGlyphs covers every shipped kind.
func DefaultGlyphs() map[ecs.Kind]Glyph {
	base := tcell.StyleDefault.Background(tcell.ColorDarkOliveGreen)
	return map[ecs.Kind]Glyph{
		ecs.KindBackground: {'.', base.Foreground(tcell.ColorOliveDrab)},
		ecs.KindStone:      {'#', base.Foreground(tcell.ColorGray)},
		ecs.KindTree:       {'T', base.Foreground(tcell.ColorGreen)},
		ecs.KindMushroom:   {'*', base.Foreground(tcell.ColorOrangeRed)},
		ecs.KindForest:     {'F', base.Foreground(tcell.ColorDarkGreen)},
		ecs.KindCave:       {'O', base.Foreground(tcell.ColorSaddleBrown)},
		ecs.KindEnemy:      {'E', base.Foreground(tcell.ColorRed).Bold(true)},
		ecs.KindPlayer:     {'@', base.Foreground(tcell.ColorWhite).Bold(true)},
	}
}

// Terminal draws one cell per tile onto a tcell screen. It implements
// ecs.Renderer; the host calls Show after each step.
type Terminal struct {
	screen tcell.Screen
	view   View
	glyphs map[ecs.Kind]Glyph
	// top rows reserved for the status line
	offsetY int
}

func NewTerminal(screen tcell.Screen, view View) *Terminal {
	return &Terminal{screen: screen, view: view, glyphs: DefaultGlyphs(), offsetY: 1}
}

// ViewSize returns the map area in world pixels for the current screen size.
func (t *Terminal) ViewSize() (float64, float64) {
	w, h := t.screen.Size()
	return float64(w) * common.TileSize, float64(max(h-t.offsetY, 0)) * common.TileSize
}

func (t *Terminal) ClearSurface() {
	t.screen.Clear()
}

func (t *Terminal) DrawLayer(_ string, entities []*ecs.Entity) {
	var left, top float64
	if t.view != nil {
		left, top = t.view.ViewTopLeft()
	}
	w, h := t.screen.Size()
	for _, e := range entities {
		g, ok := t.glyphs[e.Kind]
		if !ok {
			g = Glyph{Rune: '?', Style: tcell.StyleDefault}
		}
		x := int(math.Floor((e.Center().X - left) / common.TileSize))
		y := int(math.Floor((e.Center().Y-top)/common.TileSize)) + t.offsetY
		if x < 0 || y < t.offsetY || x >= w || y >= h {
			continue
		}
		t.screen.SetContent(x, y, g.Rune, nil, g.Style)
	}
}

// Status writes a line of text in the reserved top row.
func (t *Terminal) Status(text string) {
	w, _ := t.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		t.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, 0, ' ', nil, style)
	}
}
