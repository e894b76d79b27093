package system

import "github.com/fcblfcbasel1/Project-Informatik/ecs"

// EntityUpdateSystem runs every entity's behavior pipeline once, layer by
// layer in draw order. Entities destroyed earlier in the pass are skipped.
type EntityUpdateSystem struct{}

func NewEntityUpdateSystem() *EntityUpdateSystem {
	return &EntityUpdateSystem{}
}

func (s *EntityUpdateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	reg := w.Registry()
	for _, layer := range reg.Layers() {
		for _, e := range reg.Layer(layer) {
			if !w.IsAlive(e) {
				continue
			}
			e.Update(w)
		}
	}
}
