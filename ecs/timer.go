package ecs

import "slices"

// TimerFunc runs when a timer completes. target is the entity the timer was
// bound to; it is guaranteed to be alive when the callback runs.
type TimerFunc func(w *World, target *Entity)

// Timer is a frame-based countdown owned by the world and advanced inside
// the frame step. A timer fires after Ticks periods of Frames frames each.
// Timers bound to an entity are dropped without firing once the entity is
// destroyed.
type Timer struct {
	Name   string
	Target *Entity
	Frames int
	Ticks  int

	fn        TimerFunc
	remaining int
	cancelled bool
}

// Cancel stops the timer; it will not fire.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Done reports whether the timer fired or was cancelled.
func (t *Timer) Done() bool {
	return t == nil || t.cancelled || t.Ticks <= 0
}

type timerQueue struct {
	timers []*Timer
}

func (q *timerQueue) add(t *Timer) {
	q.timers = append(q.timers, t)
}

func (q *timerQueue) find(target *Entity, name string) *Timer {
	for _, t := range q.timers {
		if t.Target == target && t.Name == name && !t.Done() {
			return t
		}
	}
	return nil
}

// advance steps every pending timer by one frame. Timers added while
// advancing start counting on the next frame.
func (q *timerQueue) advance(w *World) {
	for _, t := range slices.Clone(q.timers) {
		if t.Done() {
			continue
		}
		if t.Target != nil && !w.IsAlive(t.Target) {
			t.cancelled = true
			continue
		}
		t.remaining--
		if t.remaining > 0 {
			continue
		}
		t.Ticks--
		if t.Ticks > 0 {
			t.remaining = t.Frames
			continue
		}
		if t.fn != nil && (t.Target == nil || w.IsAlive(t.Target)) {
			t.fn(w, t.Target)
		}
	}
	q.timers = slices.DeleteFunc(q.timers, (*Timer).Done)
}

func (q *timerQueue) len() int {
	n := 0
	for _, t := range q.timers {
		if !t.Done() {
			n++
		}
	}
	return n
}

func (q *timerQueue) clear() {
	for _, t := range q.timers {
		t.cancelled = true
	}
	q.timers = nil
}
