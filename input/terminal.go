package input

import (
	"strings"

	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/gdamore/tcell/v2"
)

// Terminal turns tcell key events into held keys. Terminals only report
// presses and auto-repeat, so a key counts as held for HoldFrames frames
// after its last event.
type Terminal struct {
	HoldFrames int

	frame   int
	expires map[string]int
}

func NewTerminal(holdFrames int) *Terminal {
	return &Terminal{HoldFrames: max(holdFrames, 1), expires: map[string]int{}}
}

// TerminalCode returns the logical code of a tcell key event, or "" if the
// key is not used by the game.
func TerminalCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "KeyW"
	case tcell.KeyDown:
		return "KeyS"
	case tcell.KeyLeft:
		return "KeyA"
	case tcell.KeyRight:
		return "KeyD"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyRune:
	default:
		return ""
	}

	r := ev.Rune()
	switch {
	case r == ' ':
		return "Space"
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + strings.ToUpper(string(r))
	default:
		return ""
	}
}

// Handle records a key event and presses its code.
func (t *Terminal) Handle(ev *tcell.EventKey, state *ecs.InputState) string {
	code := TerminalCode(ev)
	if code == "" {
		return ""
	}
	state.Press(code)
	t.expires[code] = t.frame + t.HoldFrames
	return code
}

// Advance moves to the next frame and releases keys that were not repeated.
func (t *Terminal) Advance(state *ecs.InputState) {
	t.frame++
	for code, until := range t.expires {
		if t.frame >= until {
			state.Release(code)
			delete(t.expires, code)
		}
	}
}
