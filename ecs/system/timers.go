package system

import "github.com/fcblfcbasel1/Project-Informatik/ecs"

// TimerSystem counts world timers down by one frame and fires the ones that
// expire. Timers whose entity was destroyed are dropped without firing.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.AdvanceTimers()
}
