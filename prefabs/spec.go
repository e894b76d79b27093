package prefabs

import (
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DefaultKinds lists the prefabs shipped with the game; each has a
// <kind>.yaml file.
var DefaultKinds = []string{"background", "stone", "tree", "mushroom", "forest", "cave", "enemy", "player"}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, eris.Wrapf(err, "prefabs: load %s", filename)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, eris.Wrapf(err, "prefabs: unmarshal %s", filename)
	}

	return spec, nil
}

// EntitySpec describes how to build one entity kind.
type EntitySpec struct {
	Name          string         `yaml:"name"`
	Sheet         string         `yaml:"sheet"`
	Layer         string         `yaml:"layer"`
	CollisionTags []string       `yaml:"collision_tags"`
	Row           int            `yaml:"row"`
	Col           int            `yaml:"col"`
	Speed         float64        `yaml:"speed"`
	CanAttack     bool           `yaml:"can_attack"`
	Behaviors     []BehaviorSpec `yaml:"behaviors"`
}

// BehaviorSpec names a behavior variant; the remaining keys are its
// parameters and are decoded by the builder for that variant.
type BehaviorSpec struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:",inline"`
}

type AnimationBehaviorSpec struct {
	FramesPerAnimation int `yaml:"frames_per_animation"`
	NumberOfFrames     int `yaml:"number_of_frames"`
}

type GravityBehaviorSpec struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxFall      float64 `yaml:"max_fall"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
}

type ScriptBehaviorSpec struct {
	Script string `yaml:"script"`
}

type InputBehaviorSpec struct {
	Bindings map[string]string `yaml:"bindings"`
}

func DecodeBehaviorSpec[T any](raw map[string]any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, eris.Wrap(err, "prefabs: marshal behavior params")
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, eris.Wrap(err, "prefabs: unmarshal behavior params")
	}
	return out, nil
}

// GameSpec holds starting resources, map list and gameplay tuning.
type GameSpec struct {
	StartMoney  int        `yaml:"start_money"`
	StartHealth int        `yaml:"start_health"`
	Maps        []string   `yaml:"maps"`
	Tuning      TuningSpec `yaml:"tuning"`
}

type TuningSpec struct {
	PickupReward        int     `yaml:"pickup_reward"`
	HarvestReward       int     `yaml:"harvest_reward"`
	HarvestTicks        int     `yaml:"harvest_ticks"`
	TickFrames          int     `yaml:"tick_frames"`
	EnemyDamage         int     `yaml:"enemy_damage"`
	EnemySlowSpeed      float64 `yaml:"enemy_slow_speed"`
	EnemyRecoveryFrames int     `yaml:"enemy_recovery_frames"`
	ActionKey           string  `yaml:"action_key"`
	JumpKey             string  `yaml:"jump_key"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Catalog is the set of entity specs keyed by kind.
type Catalog struct {
	Specs map[string]*EntitySpec
}

// LoadCatalog reads <kind>.yaml for every kind. With no kinds it loads
// DefaultKinds.
func LoadCatalog(kinds ...string) (*Catalog, error) {
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}
	c := &Catalog{Specs: make(map[string]*EntitySpec, len(kinds))}
	for _, kind := range kinds {
		spec, err := LoadSpec[EntitySpec](kind + ".yaml")
		if err != nil {
			return nil, err
		}
		if spec.Name == "" {
			spec.Name = kind
		}
		if spec.Layer == "" {
			return nil, eris.Errorf("prefabs: %s.yaml: layer is required", kind)
		}
		c.Specs[kind] = &spec
	}
	return c, nil
}

// Get returns the spec for kind.
func (c *Catalog) Get(kind string) (*EntitySpec, bool) {
	if c == nil {
		return nil, false
	}
	spec, ok := c.Specs[kind]
	return spec, ok
}
