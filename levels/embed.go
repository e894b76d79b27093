package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

//go:embed *.txt
var LevelsFS embed.FS

// Loader reads maps from a directory on disk, falling back to the embedded
// maps when the file is not there.
type Loader struct {
	Dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load reads and parses the map at path.
func (l *Loader) Load(path string) (*Map, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, eris.Wrapf(err, "levels: read %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "levels: parse %s", path)
	}
	m.Name = cleanLevelPath(path)
	return m, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	clean := cleanLevelPath(path)
	if l != nil && l.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(l.Dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	return LevelsFS.ReadFile(clean)
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "maps/"); ok {
		s = after
	}
	return s
}
