package levels

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	ErrEmptyMap      = eris.New("levels: map is empty")
	ErrUnknownSymbol = eris.New("levels: unknown map symbol")
	ErrPlayerCount   = eris.New("levels: map must place exactly one player")
)

// Legend maps a map symbol to the entity kinds placed on that cell, bottom
// first.
var Legend = map[rune][]string{
	'.': {"background"},
	'S': {"background", "stone"},
	'T': {"background", "tree"},
	'M': {"background", "mushroom"},
	'F': {"background", "forest"},
	'C': {"background", "cave"},
	'E': {"background", "enemy"},
	'P': {"background", "player"},
	' ': nil,
}

// Map is a parsed tile map.
type Map struct {
	Name   string
	Width  int
	Height int
	Tiles  []Tile
}

// Tile is one entity placement in tile coordinates.
type Tile struct {
	Kind string
	Col  int
	Row  int
}

// Parse reads a plain-text map: one line per row, one symbol per column.
// Lines starting with ';' are comments.
func Parse(data []byte) (*Map, error) {
	m := &Map{}
	players := 0
	row := 0

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, ";") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if m.Height > 0 {
				row++
			}
			continue
		}
		col := 0
		for _, r := range line {
			kinds, ok := Legend[r]
			if !ok {
				return nil, eris.Wrapf(ErrUnknownSymbol, "%q at row %d col %d", r, row, col)
			}
			for _, kind := range kinds {
				if kind == "player" {
					players++
				}
				m.Tiles = append(m.Tiles, Tile{Kind: kind, Col: col, Row: row})
			}
			col++
		}
		if col > m.Width {
			m.Width = col
		}
		row++
		m.Height = row
	}
	if err := sc.Err(); err != nil {
		return nil, eris.Wrap(err, "levels: scan")
	}
	if len(m.Tiles) == 0 {
		return nil, ErrEmptyMap
	}
	if players != 1 {
		return nil, eris.Wrapf(ErrPlayerCount, "found %d", players)
	}
	return m, nil
}
