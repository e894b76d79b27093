package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestPlaceholderSheets(t *testing.T) {
	lib := NewLibrary("")
	for name, layout := range Layouts {
		t.Run(name, func(t *testing.T) {
			sheet, err := lib.Sheet(name)
			require.NoError(t, err)
			assert.Equal(t, layout.Cols*common.TileSize, sheet.Bounds().Dx())
			assert.Equal(t, layout.Rows*common.TileSize, sheet.Bounds().Dy())

			again, err := lib.Sheet(name)
			require.NoError(t, err)
			assert.Same(t, sheet, again)
		})
	}

	_, err := lib.Sheet("nope")
	require.ErrorIs(t, err, ErrUnknownSheet)
}

func TestFrameWraps(t *testing.T) {
	lib := NewLibrary("")
	frame, err := lib.Frame("ground", 4, -1)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(32, 32, 64, 64), frame.Bounds())
	r, g, b, _ := frame.At(40, 40).RGBA()
	fr, fg, fb, _ := colornames.Forestgreen.RGBA()
	assert.Equal(t, []uint32{fr, fg, fb}, []uint32{r, g, b})
}

func TestDiskSheetIsScaled(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 3*16, 2*16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			src.Set(x, y, colornames.Gold)
		}
	}
	f, err := os.Create(filepath.Join(dir, "ground.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	saved := Layouts["ground"]
	Layouts["ground"] = SheetLayout{Cols: 3, Rows: 2, FrameSize: 16}
	t.Cleanup(func() { Layouts["ground"] = saved })

	lib := NewLibrary(dir)
	sheet, err := lib.Sheet("ground")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 96, 64), sheet.Bounds())
	assert.Equal(t, colornames.Gold, sheet.RGBAAt(31, 31))

	lib.Invalidate("assets/ground.png")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ground.png"), []byte("not a png"), 0o644))
	_, err = lib.Sheet("ground")
	require.Error(t, err)
}
