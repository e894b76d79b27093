package ecs

import "slices"

// InputState is the set of currently held logical key codes ("KeyW",
// "Space", ...). Input sources write it between frames; behaviors read it
// during the frame. Iteration is insertion order; releasing a key shifts the
// keys pressed after it.
type InputState struct {
	keys []string
}

func NewInputState() *InputState {
	return &InputState{}
}

// Press marks code as held. Pressing a held key is a no-op.
func (s *InputState) Press(code string) {
	if s == nil || code == "" || slices.Contains(s.keys, code) {
		return
	}
	s.keys = append(s.keys, code)
}

// Release marks code as no longer held.
func (s *InputState) Release(code string) {
	if s == nil {
		return
	}
	if idx := slices.Index(s.keys, code); idx >= 0 {
		s.keys = slices.Delete(s.keys, idx, idx+1)
	}
}

func (s *InputState) Held(code string) bool {
	return s != nil && slices.Contains(s.keys, code)
}

// Keys returns the held keys in insertion order.
func (s *InputState) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Reset releases every key.
func (s *InputState) Reset() {
	if s == nil {
		return
	}
	s.keys = nil
}
