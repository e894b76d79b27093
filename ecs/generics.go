package ecs

// Lookup returns the first behavior of the given kind as its concrete type.
func Lookup[T Behavior](p *Pipeline, kind BehaviorKind) (T, bool) {
	var zero T
	b, ok := p.Get(kind)
	if !ok {
		return zero, false
	}
	cast, ok := b.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// Responder returns the entity's collision response behavior, if any.
func Responder(e *Entity) (CollisionResponder, bool) {
	if e == nil {
		return nil, false
	}
	return Lookup[CollisionResponder](e.Pipeline, BehaviorCollision)
}
