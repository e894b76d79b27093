package ecs

import (
	"slices"
	"strconv"

	"github.com/jakecoffman/cp"
)

// EntityID is a generational handle: the low 32 bits index the id store and
// the high 32 bits carry the generation the handle was issued with.
type EntityID uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) EntityID {
	return EntityID(uint64(gen)<<entityIDBits | uint64(id))
}

func (e EntityID) id() entityID {
	return entityID(uint32(e))
}

func (e EntityID) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e EntityID) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e EntityID) Valid() bool {
	return e.id() > 0
}

// Kind is the stable identity of an entity. Behavior differences live in the
// pipeline; the kind only selects the prefab an entity was built from.
type Kind string

const (
	KindBackground Kind = "background"
	KindStone      Kind = "stone"
	KindTree       Kind = "tree"
	KindMushroom   Kind = "mushroom"
	KindForest     Kind = "forest"
	KindCave       Kind = "cave"
	KindEnemy      Kind = "enemy"
	KindPlayer     Kind = "player"
)

// Layer tags, in default draw order.
const (
	LayerBackground = "background"
	LayerWorld      = "world"
	LayerItem       = "item"
	LayerEnemy      = "enemy"
	LayerPlayer     = "player"
)

// Collision tags used by the collision response policy.
const (
	TagWorld   = "world"
	TagPickups = "pickups"
	TagEnemy   = "enemy"
	TagForest  = "forest"
	TagCave    = "cave"
)

// Entity is the single simulation unit. Entities are created by
// World.NewEntity and torn down by World.Destroy.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Sheet string

	Pos   cp.Vector
	Delta cp.Vector
	Size  float64

	Row int
	Col int

	Layer string

	Speed     float64
	BaseSpeed float64
	CanAttack bool

	Pipeline *Pipeline

	tags []string
}

// CollisionTags returns a copy of the entity's collision tags.
func (e *Entity) CollisionTags() []string {
	if e == nil {
		return nil
	}
	return slices.Clone(e.tags)
}

// HasTag reports whether the entity carries the collision tag.
func (e *Entity) HasTag(tag string) bool {
	if e == nil {
		return false
	}
	return slices.Contains(e.tags, tag)
}

// Bounds returns the entity's axis-aligned box. Screen space grows
// downward, so B holds the top edge and T the bottom edge.
func (e *Entity) Bounds() cp.BB {
	if e == nil {
		return cp.BB{}
	}
	return cp.BB{L: e.Pos.X, B: e.Pos.Y, R: e.Pos.X + e.Size, T: e.Pos.Y + e.Size}
}

// Center returns the midpoint of the entity's box.
func (e *Entity) Center() cp.Vector {
	if e == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: e.Pos.X + e.Size/2, Y: e.Pos.Y + e.Size/2}
}

// Moved reports whether the entity accumulated any movement this frame.
func (e *Entity) Moved() bool {
	return e != nil && (e.Delta.X != 0 || e.Delta.Y != 0)
}

// Update runs the behavior pipeline and then applies the accumulated delta.
// Destroyed entities are ignored.
func (e *Entity) Update(w *World) {
	if e == nil || !w.IsAlive(e) {
		return
	}
	e.Pipeline.RunAll(w, e)
	if !w.IsAlive(e) {
		return
	}
	e.Pos = e.Pos.Add(e.Delta)
	e.Delta = cp.Vector{}
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	return string(e.Kind) + "#" + e.ID.String()
}

func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}
