package system

import (
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
)

// ScopeAll tests every collision bucket.
const ScopeAll = "all"

type pair struct {
	a, b *ecs.Entity
}

// CollisionSystem finds overlapping entities that share a collision tag and
// hands each overlap to the collision response of the entity that owns one.
type CollisionSystem struct {
	Scope string

	reported map[string]bool
}

func NewCollisionSystem(scope string) *CollisionSystem {
	if scope == "" {
		scope = ScopeAll
	}
	return &CollisionSystem{Scope: scope}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if s.Scope != ScopeAll {
		if !s.reported[s.Scope] {
			if s.reported == nil {
				s.reported = map[string]bool{}
			}
			s.reported[s.Scope] = true
			w.Logger().Warn().Str("scope", s.Scope).Msg("unknown collision scope, skipping")
		}
		return
	}
	s.detect(w)
}

// detect walks the buckets in tag order. For each entity A with a collision
// response it tests every other entity B of the same bucket. An ordered pair
// is delivered at most once per pass even when A and B share several tags.
// A requested map switch ends the pass, since the entities are about to be
// replaced.
func (s *CollisionSystem) detect(w *ecs.World) {
	reg := w.Registry()
	seen := make(map[pair]struct{})

	for _, tag := range reg.Tags() {
		bucket := reg.Bucket(tag)
		for _, a := range bucket {
			responder, ok := ecs.Responder(a)
			if !ok {
				continue
			}
			for _, b := range bucket {
				if w.ReloadPending() {
					return
				}
				if a == b || !w.IsAlive(a) || !w.IsAlive(b) {
					continue
				}
				key := pair{a: a, b: b}
				if _, dup := seen[key]; dup {
					continue
				}
				pen, hit := ecs.Penetration(a, b)
				if !hit {
					continue
				}
				seen[key] = struct{}{}
				responder.Respond(w, &ecs.Outcome{Self: a, Other: b, Penetration: pen})
			}
		}
	}
}
