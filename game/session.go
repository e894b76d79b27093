// Package game wires the simulation core to its prefabs, maps and resources.
// Hosts own a Session and tick it once per frame.
package game

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/fcblfcbasel1/Project-Informatik/component"
	"github.com/fcblfcbasel1/Project-Informatik/config"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/fcblfcbasel1/Project-Informatik/ecs/entity"
	"github.com/fcblfcbasel1/Project-Informatik/ecs/system"
	"github.com/fcblfcbasel1/Project-Informatik/levels"
	"github.com/fcblfcbasel1/Project-Informatik/prefabs"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Session is one running game.
type Session struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Builder   *entity.Builder
	Money     *component.Wallet
	Health    *component.Health

	// applied remembers the disk modification time of each prefab or
	// script the last time it was applied.
	applied map[string]time.Time

	log zerolog.Logger
}

// NewSession loads the game spec and prefab catalog, builds the world and
// loads the first map. The scheduler starts stopped with one frame pending.
func NewSession(cfg config.Config, log zerolog.Logger) (*Session, error) {
	if cfg.PrefabDir != "" {
		prefabs.Dir = cfg.PrefabDir
	}
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Builder: entity.NewBuilder(catalog),
		Money:   component.NewWallet(spec.StartMoney),
		Health:  component.NewHealth(spec.StartHealth),
		applied: map[string]time.Time{},
		log:     log,
	}

	w := ecs.NewWorld()
	w.SetLogger(log)
	w.SetTuning(Tuning(spec.Tuning))
	w.SetResources(s.Money, s.Health)
	w.SetMapLoader(levels.NewLoader(cfg.LevelDir))
	w.SetSpawner(s.Builder)
	w.SetMaps(spec.Maps...)
	if err := w.Start(); err != nil {
		return nil, eris.Wrap(err, "game: start")
	}
	s.World = w

	s.Scheduler = ecs.NewScheduler(w,
		system.NewEntityUpdateSystem(),
		system.NewTimerSystem(),
		system.NewCollisionSystem(system.ScopeAll),
	)
	return s, nil
}

// Tuning converts the yaml tuning block, keeping defaults for unset values.
func Tuning(spec prefabs.TuningSpec) ecs.Tuning {
	t := ecs.DefaultTuning()
	if spec.PickupReward != 0 {
		t.PickupReward = spec.PickupReward
	}
	if spec.HarvestReward != 0 {
		t.HarvestReward = spec.HarvestReward
	}
	if spec.HarvestTicks != 0 {
		t.HarvestTicks = spec.HarvestTicks
	}
	if spec.TickFrames != 0 {
		t.TickFrames = spec.TickFrames
	}
	if spec.EnemyDamage != 0 {
		t.EnemyDamage = spec.EnemyDamage
	}
	if spec.EnemySlowSpeed != 0 {
		t.EnemySlowSpeed = spec.EnemySlowSpeed
	}
	if spec.EnemyRecoveryFrames != 0 {
		t.EnemyRecoveryFrames = spec.EnemyRecoveryFrames
	}
	if spec.ActionKey != "" {
		t.ActionKey = spec.ActionKey
	}
	if spec.JumpKey != "" {
		t.JumpKey = spec.JumpKey
	}
	return t
}

// TogglePause starts a stopped scheduler or pauses a running one.
func (s *Session) TogglePause() {
	if s.Scheduler.Running() {
		s.Scheduler.Pause()
		s.log.Info().Int("frame", s.World.Frame()).Msg("paused")
		return
	}
	s.Scheduler.Start()
	s.log.Info().Int("frame", s.World.Frame()).Msg("running")
}

// Restart refills the resources and reloads the current map, e.g. after the
// player died.
func (s *Session) Restart() error {
	s.Health.Dead = false
	s.Health.Heal(s.Health.Max - s.Health.Current)
	return s.World.Reload()
}

// Apply reacts to an edited asset. Prefab edits swap the catalog and tuning,
// script edits drop the cached compile, and both reload the current map so
// every entity is rebuilt. A map edit reloads only if it is the current map.
// Prefab and script files already applied at their current modification
// time are skipped. If the reload fails the current map stays loaded.
func (s *Session) Apply(change prefabs.Change) error {
	switch change.Kind {
	case prefabs.ChangePrefab:
		if s.unchanged(filepath.Base(change.Path)) {
			return nil
		}
		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			return err
		}
		catalog, err := prefabs.LoadCatalog()
		if err != nil {
			return err
		}
		s.World.SetTuning(Tuning(spec.Tuning))
		s.Builder.SetCatalog(catalog)
	case prefabs.ChangeScript:
		if s.unchanged("scripts/" + filepath.Base(change.Path)) {
			return nil
		}
		s.Builder.InvalidateScript(filepath.Base(change.Path))
	case prefabs.ChangeMap:
		if !s.isCurrentMap(change.Path) {
			return nil
		}
	default:
		return nil
	}
	s.log.Info().Str("path", change.Path).Msg("asset changed, reloading map")
	return s.World.Reload()
}

// unchanged reports whether the prefab file name was already applied at its
// current modification time, and records that time otherwise. Files with no
// disk copy always count as changed.
func (s *Session) unchanged(name string) bool {
	mod, ok := prefabs.ModTime(name)
	if !ok {
		return false
	}
	if last, seen := s.applied[name]; seen && last.Equal(mod) {
		return true
	}
	s.applied[name] = mod
	return false
}

func (s *Session) isCurrentMap(path string) bool {
	n := s.World.WorldNumber()
	spec, err := prefabs.LoadGameSpec()
	if err != nil || n < 1 || n > len(spec.Maps) {
		return false
	}
	return filepath.Base(spec.Maps[n-1]) == filepath.Base(path)
}

// MapBounds returns the size of the loaded map in world pixels, measured
// over the background layer.
func (s *Session) MapBounds() (float64, float64) {
	var w, h float64
	for _, e := range s.World.Registry().Layer(ecs.LayerBackground) {
		w = max(w, e.Pos.X+e.Size)
		h = max(h, e.Pos.Y+e.Size)
	}
	return w, h
}

// Status is the one-line summary hosts show above the map.
func (s *Session) Status() string {
	state := "running"
	if !s.Scheduler.Running() {
		state = "paused"
	}
	return fmt.Sprintf("Money %d  Health %d  World %d  [%s]", s.Money.Amount(), max(s.Health.Health(), 0), s.World.WorldNumber(), state)
}

// HealthFill returns how many of width units of a health bar are filled.
func (s *Session) HealthFill(width int) int {
	return int(math.Round(float64(width) * s.Health.Ratio()))
}

// Close tears down the world.
func (s *Session) Close() {
	s.World.Close()
}
