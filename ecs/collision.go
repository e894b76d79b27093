package ecs

import (
	"math"

	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/jakecoffman/cp"
)

// Outcome is one detected overlap, delivered to Self's collision response.
type Outcome struct {
	Self  *Entity
	Other *Entity
	// Penetration is the signed overlap depth per axis. Subtracting it from
	// Self's position separates the boxes.
	Penetration cp.Vector
}

// Axis names the axis a resolution moved an entity along.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// Penetration computes the overlap between the boxes of a and b. Overlap on
// an axis is the half-size sum minus the distance between centers; the boxes
// collide only if both overlaps are positive. When the centers line up on an
// axis the overlap there counts as positive, so resolving along that axis
// pushes a toward negative x or y (left or up).
func Penetration(a, b *Entity) (cp.Vector, bool) {
	if a == nil || b == nil {
		return cp.Vector{}, false
	}
	ab, bb := a.Bounds(), b.Bounds()
	if !ab.Intersects(bb) {
		return cp.Vector{}, false
	}

	ac, bc := a.Center(), b.Center()
	dx := bc.X - ac.X
	dy := bc.Y - ac.Y
	ox := (a.Size+b.Size)/2 - math.Abs(dx)
	oy := (a.Size+b.Size)/2 - math.Abs(dy)
	if ox <= 0 || oy <= 0 {
		return cp.Vector{}, false
	}
	return cp.Vector{X: common.Sign(dx) * ox, Y: common.Sign(dy) * oy}, true
}

// Resolve pushes e out along the axis with the shallower penetration only,
// leaving the other axis untouched.
func Resolve(e *Entity, pen cp.Vector) Axis {
	if e == nil || (pen.X == 0 && pen.Y == 0) {
		return AxisNone
	}
	if math.Abs(pen.X) <= math.Abs(pen.Y) {
		e.Pos.X -= pen.X
		return AxisX
	}
	e.Pos.Y -= pen.Y
	return AxisY
}
