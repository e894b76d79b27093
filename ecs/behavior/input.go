package behavior

import (
	"strings"

	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/rotisserie/eris"
)

// Direction is one movement binding: a unit step and the sprite row that
// faces it.
type Direction struct {
	DX, DY float64
	Row    int
}

var (
	Up    = Direction{DX: 0, DY: -1, Row: 3}
	Down  = Direction{DX: 0, DY: 1, Row: 0}
	Left  = Direction{DX: -1, DY: 0, Row: 1}
	Right = Direction{DX: 1, DY: 0, Row: 2}
)

var ErrUnknownDirection = eris.New("behavior: unknown direction")

// ParseDirection maps "up", "down", "left" and "right" to their binding.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Direction{}, eris.Wrapf(ErrUnknownDirection, "%q", name)
	}
}

// DefaultBindings is WASD movement.
func DefaultBindings() map[string]Direction {
	return map[string]Direction{
		"KeyW": Up,
		"KeyS": Down,
		"KeyA": Left,
		"KeyD": Right,
	}
}

// Input turns held keys into movement. Keys are processed in the order they
// were pressed; diagonals add up and the last bound key decides the row.
type Input struct {
	Bindings map[string]Direction
	// JumpKey overrides the world's jump key when set.
	JumpKey string
}

func NewInput(bindings map[string]Direction) *Input {
	if len(bindings) == 0 {
		bindings = DefaultBindings()
	}
	return &Input{Bindings: bindings}
}

func (b *Input) Kind() ecs.BehaviorKind {
	return ecs.BehaviorInput
}

func (b *Input) Update(w *ecs.World, e *ecs.Entity) {
	if b == nil || e == nil {
		return
	}
	jump := b.JumpKey
	if jump == "" {
		jump = w.Tuning().JumpKey
	}

	for _, key := range w.Input().Keys() {
		if key == jump {
			if g, ok := ecs.Lookup[*Gravity](e.Pipeline, ecs.BehaviorGravity); ok {
				g.Jump()
			}
			continue
		}
		d, ok := b.Bindings[key]
		if !ok {
			continue
		}
		e.Delta.X += d.DX * e.Speed
		e.Delta.Y += d.DY * e.Speed
		e.Row = d.Row
	}
}
