package behavior

import "github.com/fcblfcbasel1/Project-Informatik/ecs"

// Gravity pulls the entity down until terrain pushes it back up.
type Gravity struct {
	Acceleration float64
	MaxFall      float64
	JumpImpulse  float64

	velocity float64
	grounded bool
}

func NewGravity(acceleration, maxFall, jumpImpulse float64) *Gravity {
	return &Gravity{Acceleration: acceleration, MaxFall: maxFall, JumpImpulse: jumpImpulse}
}

func (g *Gravity) Kind() ecs.BehaviorKind {
	return ecs.BehaviorGravity
}

func (g *Gravity) Update(_ *ecs.World, e *ecs.Entity) {
	if g == nil || e == nil {
		return
	}
	g.velocity += g.Acceleration
	if g.MaxFall > 0 && g.velocity > g.MaxFall {
		g.velocity = g.MaxFall
	}
	if g.velocity > 0 {
		g.grounded = false
	}
	e.Delta.Y += g.velocity
}

// Jump launches the entity if it is standing on something.
func (g *Gravity) Jump() bool {
	if g == nil || !g.grounded {
		return false
	}
	g.velocity = -g.JumpImpulse
	g.grounded = false
	return true
}

// Land stops the fall. Collision response calls it after pushing the entity
// up out of terrain.
func (g *Gravity) Land() {
	if g == nil {
		return
	}
	g.velocity = 0
	g.grounded = true
}

func (g *Gravity) Grounded() bool {
	return g != nil && g.grounded
}

func (g *Gravity) Velocity() float64 {
	if g == nil {
		return 0
	}
	return g.velocity
}
