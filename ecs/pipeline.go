package ecs

import (
	"reflect"
	"slices"
)

// BehaviorKind identifies a behavior variant for pipeline lookups.
type BehaviorKind uint8

const (
	BehaviorInput BehaviorKind = iota + 1
	BehaviorAnimation
	BehaviorGravity
	BehaviorCollision
	BehaviorScript
)

func (k BehaviorKind) String() string {
	switch k {
	case BehaviorInput:
		return "input"
	case BehaviorAnimation:
		return "animation"
	case BehaviorGravity:
		return "gravity"
	case BehaviorCollision:
		return "collision"
	case BehaviorScript:
		return "script"
	default:
		return "unknown"
	}
}

// Behavior is one per-frame component of an entity's pipeline. Pipelines
// find behaviors by identity, so implementations must be comparable;
// pointer types are the norm.
type Behavior interface {
	Kind() BehaviorKind
	Update(w *World, e *Entity)
}

// CollisionResponder is a behavior that consumes collision outcomes. A nil
// outcome means no collision and must be a no-op.
type CollisionResponder interface {
	Behavior
	Respond(w *World, out *Outcome)
}

// Pipeline is the ordered, mutable behavior list of one entity.
type Pipeline struct {
	behaviors []Behavior
}

func NewPipeline(behaviors ...Behavior) *Pipeline {
	p := &Pipeline{}
	for _, b := range behaviors {
		p.Add(b)
	}
	return p
}

// Add appends a behavior and reports whether it did. Behaviors whose
// dynamic type is not comparable are refused.
func (p *Pipeline) Add(b Behavior) bool {
	if p == nil || b == nil || !reflect.TypeOf(b).Comparable() {
		return false
	}
	p.behaviors = append(p.behaviors, b)
	return true
}

// Remove deletes the first occurrence of b and reports whether it was found.
func (p *Pipeline) Remove(b Behavior) bool {
	if p == nil || b == nil {
		return false
	}
	idx := slices.Index(p.behaviors, b)
	if idx < 0 {
		return false
	}
	p.behaviors = slices.Delete(p.behaviors, idx, idx+1)
	return true
}

// Get returns the first behavior of the requested kind.
func (p *Pipeline) Get(kind BehaviorKind) (Behavior, bool) {
	if p == nil {
		return nil, false
	}
	for _, b := range p.behaviors {
		if b.Kind() == kind {
			return b, true
		}
	}
	return nil, false
}

// Behaviors returns a snapshot of the pipeline.
func (p *Pipeline) Behaviors() []Behavior {
	if p == nil {
		return nil
	}
	return slices.Clone(p.behaviors)
}

func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.behaviors)
}

// RunAll updates every behavior in order. It walks a snapshot, so behaviors
// added during the run start next frame and behaviors removed during the run
// are skipped if not yet reached. The run stops once e is destroyed.
func (p *Pipeline) RunAll(w *World, e *Entity) {
	if p == nil {
		return
	}
	for _, b := range slices.Clone(p.behaviors) {
		if !w.IsAlive(e) {
			return
		}
		if !slices.Contains(p.behaviors, b) {
			continue
		}
		b.Update(w, e)
	}
}
