// Command sheets previews the sprite sheets the game draws with, every row
// animated side by side. Left/Right switch sheets.
package main

import (
	"flag"
	"image/color"
	"os"
	"slices"

	"github.com/fcblfcbasel1/Project-Informatik/assets"
	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/fcblfcbasel1/Project-Informatik/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const (
	previewSize = 512
	frameScale  = 3
)

type previewGame struct {
	library *assets.Library
	log     zerolog.Logger
	names   []string
	sheet   int

	frames      [][]*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.load((g.sheet + 1) % len(g.names))
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.load((g.sheet + len(g.names) - 1) % len(g.names))
	}

	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current++
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.frames) == 0 {
		return
	}
	edge := common.TileSize * frameScale
	sx := (previewSize - len(g.frames)*edge) / 2
	sy := (previewSize - edge) / 2
	for row, frames := range g.frames {
		if len(frames) == 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(frameScale, frameScale)
		op.GeoM.Translate(float64(sx+row*edge), float64(sy))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frames[g.current%len(frames)], op)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func (g *previewGame) load(index int) {
	g.sheet = index
	name := g.names[index]
	layout := assets.Layouts[name]
	g.frames = make([][]*ebiten.Image, layout.Rows)
	for row := range layout.Rows {
		for col := range layout.Cols {
			img, err := g.library.Frame(name, col, row)
			if err != nil {
				g.log.Warn().Err(err).Str("sheet", name).Int("col", col).Int("row", row).Msg("frame unavailable")
				continue
			}
			g.frames[row] = append(g.frames[row], ebiten.NewImageFromImage(img))
		}
	}
	g.current = 0
	ebiten.SetWindowTitle("Sheet preview: " + name)
}

func main() {
	dir := flag.String("assets", "", "directory with png overrides; empty shows the built-in sheets")
	fps := flag.Int("fps", 6, "animation frames per second")
	flag.Parse()

	names := make([]string, 0, len(assets.Layouts))
	for name := range assets.Layouts {
		names = append(names, name)
	}
	slices.Sort(names)

	ticks := 1
	if *fps > 0 {
		ticks = max(common.TPS / *fps, 1)
	}
	log := config.Default().NewLogger(os.Stderr)
	g := &previewGame{library: assets.NewLibrary(*dir), log: log, names: names, ticksPerFrm: ticks}
	g.load(0)

	ebiten.SetWindowSize(previewSize, previewSize)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run preview")
	}
}
