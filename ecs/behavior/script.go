package behavior

import (
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/rotisserie/eris"
)

// Script drives an entity from a tengo script that runs once per frame.
// The script sees two globals: engine, a map of functions bound to the
// entity, and state, a map that survives between frames.
type Script struct {
	Path string

	compiled *tengo.Compiled
	state    *tengo.Map
	failed   bool
}

// NewScript compiles src. Path is only used for logging.
func NewScript(path string, src []byte) (*Script, error) {
	s := &Script{Path: path}
	if err := s.Reload(src); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload recompiles the script and clears a previous failure. The state map
// is kept.
func (s *Script) Reload(src []byte) error {
	script := tengo.NewScript(src)
	_ = script.Add("engine", map[string]any{})
	_ = script.Add("state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return eris.Wrapf(err, "behavior: compile script %s", s.Path)
	}
	s.compiled = compiled
	s.failed = false
	if s.state == nil {
		s.state = &tengo.Map{Value: map[string]tengo.Object{}}
	}
	return nil
}

// Clone returns an independent copy sharing the compiled bytecode, with its
// own globals and an empty state map.
func (s *Script) Clone() *Script {
	if s == nil || s.compiled == nil {
		return nil
	}
	return &Script{
		Path:     s.Path,
		compiled: s.compiled.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

func (s *Script) Kind() ecs.BehaviorKind {
	return ecs.BehaviorScript
}

// Failed reports whether the script hit a runtime error and went inert.
func (s *Script) Failed() bool {
	return s != nil && s.failed
}

func (s *Script) Update(w *ecs.World, e *ecs.Entity) {
	if s == nil || s.compiled == nil || s.failed || e == nil {
		return
	}
	if err := s.run(w, e); err != nil {
		s.failed = true
		w.Logger().Error().Err(err).Str("script", s.Path).Stringer("entity", e).Msg("script disabled")
	}
}

func (s *Script) run(w *ecs.World, e *ecs.Entity) error {
	if err := s.compiled.Set("engine", scriptEngine(w, e)); err != nil {
		return err
	}
	if err := s.compiled.Set("state", s.state); err != nil {
		return err
	}
	return s.compiled.Run()
}

func scriptEngine(w *ecs.World, e *ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vectorObject(e.Pos.X, e.Pos.Y), nil
	}}

	values["player_position"] = &tengo.UserFunction{Name: "player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		player := w.Player()
		if player == nil {
			return tengo.UndefinedValue, nil
		}
		return vectorObject(player.Pos.X, player.Pos.Y), nil
	}}

	values["speed"] = &tengo.UserFunction{Name: "speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: e.Speed}, nil
	}}

	values["frame"] = &tengo.UserFunction{Name: "frame", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(w.Frame())}, nil
	}}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		dx, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "dx", Expected: "float", Found: args[0].TypeName()}
		}
		dy, ok := tengo.ToFloat64(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "dy", Expected: "float", Found: args[1].TypeName()}
		}
		length := math.Hypot(dx, dy)
		if length == 0 {
			return tengo.FalseValue, nil
		}
		e.Delta.X += dx / length * e.Speed
		e.Delta.Y += dy / length * e.Speed
		return tengo.TrueValue, nil
	}}

	values["set_row"] = &tengo.UserFunction{Name: "set_row", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		row, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "row", Expected: "int", Found: args[0].TypeName()}
		}
		e.Row = row
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vectorObject(x, y float64) tengo.Object {
	return &tengo.ImmutableArray{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}
}
