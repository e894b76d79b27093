// Package input feeds device key state into ecs.InputState using logical
// key codes ("KeyW", "Space", ...).
package input

import (
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Aliases maps extra device keys onto the logical codes behaviors read.
var Aliases = map[string]string{
	"ArrowUp":    "KeyW",
	"ArrowDown":  "KeyS",
	"ArrowLeft":  "KeyA",
	"ArrowRight": "KeyD",
}

// Code returns the logical code of an ebiten key.
func Code(k ebiten.Key) string {
	var name string
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		name = "Key" + k.String()
	} else {
		name = k.String()
	}
	if alias, ok := Aliases[name]; ok {
		return alias
	}
	return name
}

// Keyboard reads the ebiten keyboard once per frame.
type Keyboard struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll applies this frame's presses and releases to state. Call it from the
// ebiten Update before ticking the scheduler.
func (k *Keyboard) Poll(state *ecs.InputState) {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	for _, key := range k.released {
		state.Release(Code(key))
	}
	for _, key := range k.pressed {
		state.Press(Code(key))
	}
}
