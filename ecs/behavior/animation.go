package behavior

import "github.com/fcblfcbasel1/Project-Informatik/ecs"

// Animation cycles the sprite column while the entity moves and freezes it
// while the entity stands still.
type Animation struct {
	FramesPerAnimation int
	NumberOfFrames     int

	frameCounter int
}

func NewAnimation(framesPerAnimation, numberOfFrames int) *Animation {
	if framesPerAnimation < 1 {
		framesPerAnimation = 1
	}
	if numberOfFrames < 1 {
		numberOfFrames = 1
	}
	return &Animation{FramesPerAnimation: framesPerAnimation, NumberOfFrames: numberOfFrames}
}

func (a *Animation) Kind() ecs.BehaviorKind {
	return ecs.BehaviorAnimation
}

// Update must run before the entity applies its delta, so it sees this
// frame's movement.
func (a *Animation) Update(_ *ecs.World, e *ecs.Entity) {
	if a == nil || !e.Moved() {
		return
	}
	a.frameCounter++
	if a.frameCounter < a.FramesPerAnimation {
		return
	}
	a.frameCounter = 0
	e.Col = (e.Col + 1) % a.NumberOfFrames
}

// Counter returns the frames counted toward the next column change.
func (a *Animation) Counter() int {
	if a == nil {
		return 0
	}
	return a.frameCounter
}
