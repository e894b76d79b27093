package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse([]byte("; comment\nS.P\n M\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, []Tile{
		{Kind: "background", Col: 0, Row: 0},
		{Kind: "stone", Col: 0, Row: 0},
		{Kind: "background", Col: 1, Row: 0},
		{Kind: "background", Col: 2, Row: 0},
		{Kind: "player", Col: 2, Row: 0},
		{Kind: "background", Col: 1, Row: 1},
		{Kind: "mushroom", Col: 1, Row: 1},
	}, m.Tiles)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		is   error
	}{
		{"empty", "; nothing\n", ErrEmptyMap},
		{"unknown_symbol", "P?\n", ErrUnknownSymbol},
		{"no_player", "SS\n", ErrPlayerCount},
		{"two_players", "PP\n", ErrPlayerCount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.src))
			require.ErrorIs(t, err, c.is)
		})
	}
}

func TestLoaderEmbeddedMaps(t *testing.T) {
	l := NewLoader("")
	for _, name := range []string{"map-01.txt", "levels/map-02.txt"} {
		t.Run(name, func(t *testing.T) {
			m, err := l.Load(name)
			require.NoError(t, err)
			assert.Equal(t, 35, m.Width)
			assert.Equal(t, 15, m.Height)
		})
	}

	_, err := l.Load("map-99.txt")
	require.Error(t, err)
}

func TestLoaderPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "map-01.txt"), []byte("P.\n"), 0o644))

	m, err := NewLoader(dir).Load("map-01.txt")
	require.NoError(t, err)
	assert.Equal(t, "map-01.txt", m.Name)
	assert.Equal(t, 2, m.Width)
	assert.Equal(t, 1, m.Height)
}
