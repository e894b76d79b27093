package entity

import (
	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/fcblfcbasel1/Project-Informatik/ecs/behavior"
	"github.com/fcblfcbasel1/Project-Informatik/prefabs"
	"github.com/jakecoffman/cp"
	"github.com/rotisserie/eris"
)

var (
	ErrUnknownPrefab   = eris.New("entity: unknown prefab")
	ErrUnknownBehavior = eris.New("entity: unknown behavior type")
)

// ScriptSource loads a script by name.
type ScriptSource func(name string) ([]byte, error)

type behaviorBuildFn func(b *Builder, spec prefabs.BehaviorSpec) (ecs.Behavior, error)

var behaviorRegistry = map[string]behaviorBuildFn{
	"input":     buildInput,
	"animation": buildAnimation,
	"gravity":   buildGravity,
	"collision": buildCollision,
	"script":    buildScript,
}

// Builder creates entities from prefab specs. It implements ecs.Spawner.
type Builder struct {
	catalog *prefabs.Catalog
	scripts ScriptSource

	compiled map[string]*behavior.Script
}

// NewBuilder returns a builder over catalog. Scripts are read with
// prefabs.LoadScript.
func NewBuilder(catalog *prefabs.Catalog) *Builder {
	return &Builder{
		catalog:  catalog,
		scripts:  prefabs.LoadScript,
		compiled: map[string]*behavior.Script{},
	}
}

// SetScriptSource replaces where scripts are read from.
func (b *Builder) SetScriptSource(src ScriptSource) {
	if src == nil {
		src = prefabs.LoadScript
	}
	b.scripts = src
	clear(b.compiled)
}

// SetCatalog swaps the prefab catalog. Entities already built keep their
// behaviors; new spawns use the new specs.
func (b *Builder) SetCatalog(catalog *prefabs.Catalog) {
	b.catalog = catalog
}

// InvalidateScript drops the cached compile of a script so the next spawn
// reads it again.
func (b *Builder) InvalidateScript(name string) {
	delete(b.compiled, name)
}

func (b *Builder) Has(kind ecs.Kind) bool {
	_, ok := b.catalog.Get(string(kind))
	return ok
}

// Spawn builds an entity of kind at the given tile. The entity is
// registered by World.NewEntity before its behaviors are attached; if a
// behavior fails to build the entity is destroyed again.
func (b *Builder) Spawn(w *ecs.World, kind ecs.Kind, col, row int) (*ecs.Entity, error) {
	spec, ok := b.catalog.Get(string(kind))
	if !ok {
		return nil, eris.Wrapf(ErrUnknownPrefab, "%q", kind)
	}

	e := w.NewEntity(kind, spec.Layer, spec.CollisionTags...)
	e.Sheet = spec.Sheet
	e.Row = spec.Row
	e.Col = spec.Col
	e.Pos = cp.Vector{X: float64(col) * common.TileSize, Y: float64(row) * common.TileSize}
	e.Speed = spec.Speed
	e.BaseSpeed = spec.Speed
	e.CanAttack = spec.CanAttack

	for _, bs := range spec.Behaviors {
		build, ok := behaviorRegistry[bs.Type]
		if !ok {
			w.Destroy(e)
			return nil, eris.Wrapf(ErrUnknownBehavior, "%s: %q", kind, bs.Type)
		}
		beh, err := build(b, bs)
		if err != nil {
			w.Destroy(e)
			return nil, eris.Wrapf(err, "entity: %s: build %s", kind, bs.Type)
		}
		e.Pipeline.Add(beh)
	}

	return e, nil
}

func buildInput(_ *Builder, spec prefabs.BehaviorSpec) (ecs.Behavior, error) {
	params, err := prefabs.DecodeBehaviorSpec[prefabs.InputBehaviorSpec](spec.Params)
	if err != nil {
		return nil, err
	}
	var bindings map[string]behavior.Direction
	if len(params.Bindings) > 0 {
		bindings = make(map[string]behavior.Direction, len(params.Bindings))
		for key, name := range params.Bindings {
			d, err := behavior.ParseDirection(name)
			if err != nil {
				return nil, eris.Wrapf(err, "binding %s", key)
			}
			bindings[key] = d
		}
	}
	return behavior.NewInput(bindings), nil
}

func buildAnimation(_ *Builder, spec prefabs.BehaviorSpec) (ecs.Behavior, error) {
	params, err := prefabs.DecodeBehaviorSpec[prefabs.AnimationBehaviorSpec](spec.Params)
	if err != nil {
		return nil, err
	}
	return behavior.NewAnimation(params.FramesPerAnimation, params.NumberOfFrames), nil
}

func buildGravity(_ *Builder, spec prefabs.BehaviorSpec) (ecs.Behavior, error) {
	params, err := prefabs.DecodeBehaviorSpec[prefabs.GravityBehaviorSpec](spec.Params)
	if err != nil {
		return nil, err
	}
	return behavior.NewGravity(params.Acceleration, params.MaxFall, params.JumpImpulse), nil
}

func buildCollision(*Builder, prefabs.BehaviorSpec) (ecs.Behavior, error) {
	return behavior.NewCollisionResponse(), nil
}

func buildScript(b *Builder, spec prefabs.BehaviorSpec) (ecs.Behavior, error) {
	params, err := prefabs.DecodeBehaviorSpec[prefabs.ScriptBehaviorSpec](spec.Params)
	if err != nil {
		return nil, err
	}
	if params.Script == "" {
		return nil, eris.New("script path is required")
	}

	base, ok := b.compiled[params.Script]
	if !ok {
		src, err := b.scripts(params.Script)
		if err != nil {
			return nil, eris.Wrapf(err, "load script %s", params.Script)
		}
		base, err = behavior.NewScript(params.Script, src)
		if err != nil {
			return nil, err
		}
		b.compiled[params.Script] = base
	}
	return base.Clone(), nil
}
