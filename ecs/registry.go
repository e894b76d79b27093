package ecs

import "slices"

// DefaultLayerOrder is the draw and update order for the well-known layers.
// Layers not listed here follow in the order they were first used.
var DefaultLayerOrder = []string{LayerBackground, LayerWorld, LayerItem, LayerEnemy, LayerPlayer}

// Registry keeps two independent indexes over live entities: the layer index
// (one list per layer, update and draw order) and the collision index (one
// list per collision tag). It indexes entities but does not own them.
type Registry struct {
	layerOrder []string
	layers     map[string][]*Entity

	tagOrder []string
	buckets  map[string][]*Entity
}

// NewRegistry creates an empty registry. With no arguments the layer order
// is DefaultLayerOrder.
func NewRegistry(layerOrder ...string) *Registry {
	if len(layerOrder) == 0 {
		layerOrder = DefaultLayerOrder
	}
	return &Registry{
		layerOrder: slices.Clone(layerOrder),
		layers:     make(map[string][]*Entity),
		buckets:    make(map[string][]*Entity),
	}
}

// Register appends e to its layer list and to the bucket of each of its
// collision tags. Registering an entity twice has no effect.
func (r *Registry) Register(e *Entity) {
	if r == nil || e == nil {
		return
	}
	if slices.Contains(r.layers[e.Layer], e) {
		return
	}
	if !slices.Contains(r.layerOrder, e.Layer) {
		r.layerOrder = append(r.layerOrder, e.Layer)
	}
	r.layers[e.Layer] = append(r.layers[e.Layer], e)
	for _, tag := range e.tags {
		r.addToBucket(tag, e)
	}
}

// Deregister removes e from every index. Removing an entity that is not
// present succeeds silently.
func (r *Registry) Deregister(e *Entity) {
	if r == nil || e == nil {
		return
	}
	r.layers[e.Layer] = removeEntity(r.layers[e.Layer], e)
	for _, tag := range e.tags {
		r.buckets[tag] = removeEntity(r.buckets[tag], e)
	}
}

// Retag replaces the collision tags of a registered entity and moves it
// between buckets accordingly.
func (r *Registry) Retag(e *Entity, tags []string) {
	if r == nil || e == nil {
		return
	}
	next := uniqueTags(tags)
	registered := slices.Contains(r.layers[e.Layer], e)
	for _, tag := range e.tags {
		if !slices.Contains(next, tag) {
			r.buckets[tag] = removeEntity(r.buckets[tag], e)
		}
	}
	if registered {
		for _, tag := range next {
			if !slices.Contains(e.tags, tag) {
				r.addToBucket(tag, e)
			}
		}
	}
	e.tags = next
}

func (r *Registry) addToBucket(tag string, e *Entity) {
	if !slices.Contains(r.tagOrder, tag) {
		r.tagOrder = append(r.tagOrder, tag)
	}
	if slices.Contains(r.buckets[tag], e) {
		return
	}
	r.buckets[tag] = append(r.buckets[tag], e)
}

// Contains reports whether e is present in its layer list.
func (r *Registry) Contains(e *Entity) bool {
	if r == nil || e == nil {
		return false
	}
	return slices.Contains(r.layers[e.Layer], e)
}

// Layers returns the layer tags in draw order.
func (r *Registry) Layers() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.layerOrder)
}

// Layer returns a snapshot of the entities in a layer, in insertion order.
func (r *Registry) Layer(tag string) []*Entity {
	if r == nil {
		return nil
	}
	return slices.Clone(r.layers[tag])
}

// Tags returns the collision tags in the order they were first used.
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.tagOrder)
}

// Bucket returns a snapshot of the entities carrying a collision tag.
func (r *Registry) Bucket(tag string) []*Entity {
	if r == nil {
		return nil
	}
	return slices.Clone(r.buckets[tag])
}

// Entities returns every indexed entity in layer order.
func (r *Registry) Entities() []*Entity {
	if r == nil {
		return nil
	}
	var out []*Entity
	for _, tag := range r.layerOrder {
		out = append(out, r.layers[tag]...)
	}
	return out
}

// Len returns the number of entities in the layer index.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, list := range r.layers {
		n += len(list)
	}
	return n
}

// Clear empties both indexes. Layer and tag order are kept.
func (r *Registry) Clear() {
	if r == nil {
		return
	}
	clear(r.layers)
	clear(r.buckets)
}

func removeEntity(list []*Entity, e *Entity) []*Entity {
	idx := slices.Index(list, e)
	if idx < 0 {
		return list
	}
	return slices.Delete(list, idx, idx+1)
}
