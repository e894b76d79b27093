// Package assets provides sprite sheets. A png in the asset directory
// overrides the generated placeholder sheet of the same name.
package assets

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/rotisserie/eris"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

var ErrUnknownSheet = eris.New("assets: unknown sheet")

// SheetLayout is the frame grid of a sheet.
type SheetLayout struct {
	Cols, Rows int
	// FrameSize is the edge of one frame in the source image. Frames are
	// scaled to the tile size on load.
	FrameSize int
}

// Layouts lists the sheets the prefabs refer to.
var Layouts = map[string]SheetLayout{
	"ground":    {Cols: 3, Rows: 2, FrameSize: common.TileSize},
	"character": {Cols: 3, Rows: 4, FrameSize: common.TileSize},
	"enemy":     {Cols: 3, Rows: 4, FrameSize: common.TileSize},
}

// Library loads and caches sheets.
type Library struct {
	Dir string

	sheets map[string]*image.RGBA
}

func NewLibrary(dir string) *Library {
	return &Library{Dir: dir, sheets: map[string]*image.RGBA{}}
}

// Sheet returns the named sheet scaled to tile-sized frames.
func (l *Library) Sheet(name string) (*image.RGBA, error) {
	if sheet, ok := l.sheets[name]; ok {
		return sheet, nil
	}
	layout, ok := Layouts[name]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownSheet, "%q", name)
	}

	sheet, err := l.loadDisk(name+".png", layout)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		sheet = Placeholder(name, layout)
	}
	l.sheets[name] = sheet
	return sheet, nil
}

// Frame returns one tile of a sheet.
func (l *Library) Frame(name string, col, row int) (image.Image, error) {
	sheet, err := l.Sheet(name)
	if err != nil {
		return nil, err
	}
	layout := Layouts[name]
	col = wrap(col, layout.Cols)
	row = wrap(row, layout.Rows)
	x, y := col*common.TileSize, row*common.TileSize
	return sheet.SubImage(image.Rect(x, y, x+common.TileSize, y+common.TileSize)), nil
}

// Invalidate drops a cached sheet so the next lookup reloads it.
func (l *Library) Invalidate(name string) {
	delete(l.sheets, strings.TrimSuffix(cleanAssetPath(name), ".png"))
}

func (l *Library) loadDisk(file string, layout SheetLayout) (*image.RGBA, error) {
	if l.Dir == "" {
		return nil, nil
	}
	b, err := os.ReadFile(filepath.Join(l.Dir, file))
	if err != nil {
		return nil, nil
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, eris.Wrapf(err, "assets: decode %s", file)
	}

	dst := image.NewRGBA(image.Rect(0, 0, layout.Cols*common.TileSize, layout.Rows*common.TileSize))
	src := image.Rect(0, 0, layout.Cols*layout.FrameSize, layout.Rows*layout.FrameSize).Add(img.Bounds().Min)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst, nil
}

var placeholderColors = map[string][][]color.RGBA{
	"ground": {
		{colornames.Yellowgreen, colornames.Slategray, colornames.Orangered},
		{colornames.Saddlebrown, colornames.Forestgreen, colornames.Darkgreen},
	},
	"character": {
		{colornames.Royalblue}, {colornames.Cornflowerblue}, {colornames.Dodgerblue}, {colornames.Steelblue},
	},
	"enemy": {
		{colornames.Crimson}, {colornames.Firebrick}, {colornames.Indianred}, {colornames.Darkred},
	},
}

// Placeholder draws a flat-colored sheet. Every frame gets an outline and a
// marker that shifts with the column, so animation stays visible.
func Placeholder(name string, layout SheetLayout) *image.RGBA {
	size := common.TileSize
	img := image.NewRGBA(image.Rect(0, 0, layout.Cols*size, layout.Rows*size))
	palette := placeholderColors[name]

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			fill := colornames.Magenta
			if row < len(palette) && len(palette[row]) > 0 {
				fill = palette[row][min(col, len(palette[row])-1)]
			}
			frame := image.Rect(col*size, row*size, (col+1)*size, (row+1)*size)
			draw.Draw(img, frame, image.NewUniform(fill), image.Point{}, draw.Src)
			outline(img, frame, colornames.Black)

			marker := image.Rect(0, 0, size/4, size/4).Add(frame.Min).Add(image.Pt(size/8+col*size/4, size/2))
			draw.Draw(img, marker, image.NewUniform(colornames.White), image.Point{}, draw.Src)
		}
	}
	return img
}

func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return filepath.Base(s)
}
