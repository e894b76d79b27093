package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fcblfcbasel1/Project-Informatik/config"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/fcblfcbasel1/Project-Informatik/prefabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.PrefabDir = t.TempDir()
	cfg.LevelDir = t.TempDir()
	s, err := NewSession(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewSessionLoadsFirstMap(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, 1, s.World.WorldNumber())
	assert.Equal(t, 100, s.Money.Amount())
	assert.Equal(t, 100, s.Health.Health())
	require.NotNil(t, s.World.Player())
	assert.NotEmpty(t, s.World.Registry().Bucket(ecs.TagCave))
	assert.NotEmpty(t, s.World.Registry().Layer(ecs.LayerEnemy))
	assert.Equal(t, ecs.DefaultTuning(), s.World.Tuning())
}

func TestSessionRunsFrames(t *testing.T) {
	s := newSession(t)
	start := s.World.Player().Pos

	s.World.Input().Press("KeyD")
	s.TogglePause()
	for range 2 {
		require.True(t, s.Scheduler.Tick())
	}

	assert.Equal(t, 2, s.World.Frame())
	assert.NotEqual(t, start, s.World.Player().Pos)

	s.TogglePause()
	s.Scheduler.Tick()
	assert.False(t, s.Scheduler.Tick())
}

func TestSessionRestart(t *testing.T) {
	s := newSession(t)
	s.Health.Attack(150)
	s.Health.Die()

	require.NoError(t, s.Restart())
	assert.True(t, s.Health.IsAlive())
	assert.Equal(t, 100, s.Health.Health())
	assert.Equal(t, 1.0, s.Health.Ratio())
	assert.NotNil(t, s.World.Player())
}

func TestSessionBrokenScriptKeepsMap(t *testing.T) {
	s := newSession(t)
	before := s.World.Registry().Entities()
	count := s.World.Count()
	player := s.World.Player()
	require.NotEmpty(t, s.World.Registry().Layer(ecs.LayerEnemy))

	dir := filepath.Join(prefabs.Dir, "scripts")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "chase.tengo")
	require.NoError(t, os.WriteFile(path, []byte("engine.move(1,"), 0o644))

	require.Error(t, s.Apply(prefabs.Change{Path: path, Kind: prefabs.ChangeScript}))

	assert.Equal(t, before, s.World.Registry().Entities())
	assert.Equal(t, count, s.World.Count())
	assert.Same(t, player, s.World.Player())
	for _, e := range before {
		assert.True(t, s.World.IsAlive(e))
	}

	s.TogglePause()
	assert.True(t, s.Scheduler.Tick(), "the kept map keeps running")
}

func TestSessionApplySkipsUnchangedFiles(t *testing.T) {
	s := newSession(t)
	src, err := prefabs.PrefabsFS.ReadFile("enemy.yaml")
	require.NoError(t, err)
	path := filepath.Join(prefabs.Dir, "enemy.yaml")
	require.NoError(t, os.WriteFile(path, src, 0o644))
	change := prefabs.Change{Path: path, Kind: prefabs.ChangePrefab}

	player := s.World.Player()
	require.NoError(t, s.Apply(change))
	reloaded := s.World.Player()
	assert.NotSame(t, player, reloaded)

	require.NoError(t, s.Apply(change))
	assert.Same(t, reloaded, s.World.Player(), "same modification time is not applied twice")
}

func TestSessionHealthFill(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, 10, s.HealthFill(10))

	s.Health.Attack(25)
	assert.Equal(t, 75, s.HealthFill(100))

	s.Health.Attack(100)
	assert.Equal(t, 0, s.HealthFill(100))
}

func TestSessionApplyChanges(t *testing.T) {
	s := newSession(t)
	player := s.World.Player()

	require.NoError(t, s.Apply(prefabs.Change{Path: "levels/map-02.txt", Kind: prefabs.ChangeMap}))
	assert.Same(t, player, s.World.Player(), "other map edits are ignored")

	require.NoError(t, s.Apply(prefabs.Change{Path: "levels/map-01.txt", Kind: prefabs.ChangeMap}))
	assert.NotSame(t, player, s.World.Player())

	require.NoError(t, s.Apply(prefabs.Change{Path: "prefabs/enemy.yaml", Kind: prefabs.ChangePrefab}))
	require.NoError(t, s.Apply(prefabs.Change{Path: "prefabs/scripts/chase.tengo", Kind: prefabs.ChangeScript}))
	assert.Equal(t, 1, s.World.WorldNumber())
}

func TestTuningKeepsDefaults(t *testing.T) {
	got := Tuning(prefabs.TuningSpec{PickupReward: 15, JumpKey: "KeyJ"})
	want := ecs.DefaultTuning()
	want.PickupReward = 15
	want.JumpKey = "KeyJ"
	assert.Equal(t, want, got)
}

func TestSessionMapBoundsAndStatus(t *testing.T) {
	s := newSession(t)

	w, h := s.MapBounds()
	assert.Equal(t, 35.0*32, w)
	assert.Equal(t, 15.0*32, h)
	assert.Equal(t, "Money 100  Health 100  World 1  [paused]", s.Status())
}
