package ecs

import (
	"testing"

	"github.com/fcblfcbasel1/Project-Informatik/levels"
	"github.com/jakecoffman/cp"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]*Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.NewEntity(KindStone, LayerWorld, TagWorld))
			}
			require.Equal(t, c.create, w.Count())
			require.Len(t, w.Registry().Layer(LayerWorld), c.create)

			if c.destroyIndex < 0 {
				return
			}
			victim := ents[c.destroyIndex]
			require.True(t, w.Destroy(victim))
			assert.False(t, w.IsAlive(victim))
			assert.False(t, w.Destroy(victim), "second destroy is a no-op")
			assert.Equal(t, c.create-1, w.Count())
			assert.NotContains(t, w.Registry().Layer(LayerWorld), victim)
			assert.NotContains(t, w.Registry().Bucket(TagWorld), victim)
		})
	}
}

func TestWorldReusesIDsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.NewEntity(KindStone, LayerWorld)
	w.Destroy(old)
	fresh := w.NewEntity(KindStone, LayerWorld)

	assert.Equal(t, old.ID.id(), fresh.ID.id())
	assert.NotEqual(t, old.ID, fresh.ID)
	assert.False(t, w.IsAlive(old))
	assert.True(t, w.IsAlive(fresh))
	assert.False(t, EntityID(0).Valid())
}

func TestWorldIndexMembership(t *testing.T) {
	w := NewWorld()
	player := w.NewEntity(KindPlayer, LayerPlayer, TagWorld, TagPickups, TagWorld)
	stone := w.NewEntity(KindStone, LayerWorld, TagWorld)

	assert.Equal(t, []string{TagWorld, TagPickups}, player.CollisionTags())
	assert.Equal(t, []*Entity{player, stone}, w.Registry().Bucket(TagWorld))
	assert.Equal(t, []*Entity{player}, w.Registry().Bucket(TagPickups))
	assert.Equal(t, []*Entity{player}, w.Registry().Layer(LayerPlayer))
	assert.Same(t, player, w.Player())

	w.SetCollisionTags(player, TagCave)
	assert.Equal(t, []*Entity{stone}, w.Registry().Bucket(TagWorld))
	assert.Empty(t, w.Registry().Bucket(TagPickups))
	assert.Equal(t, []*Entity{player}, w.Registry().Bucket(TagCave))

	w.Destroy(player)
	assert.Nil(t, w.Player())
	assert.Empty(t, w.Registry().Bucket(TagCave))
}

func TestEntityUpdateStopsWhenDestroyed(t *testing.T) {
	w := NewWorld()
	e := w.NewEntity(KindEnemy, LayerEnemy)
	after := &countBehavior{kind: BehaviorAnimation}
	e.Pipeline.Add(&funcBehavior{kind: BehaviorScript, fn: func(w *World, e *Entity) {
		e.Delta = cp.Vector{X: 3}
		w.Destroy(e)
	}})
	e.Pipeline.Add(after)

	e.Update(w)

	assert.Equal(t, 0, after.n)
	assert.Equal(t, cp.Vector{}, e.Pos)
}

type fakeSpawner struct {
	kinds map[Kind]string
	fail  Kind
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{kinds: map[Kind]string{
		KindBackground: LayerBackground,
		KindStone:      LayerWorld,
		KindMushroom:   LayerItem,
		KindCave:       LayerWorld,
		KindPlayer:     LayerPlayer,
	}}
}

func (s *fakeSpawner) Has(kind Kind) bool {
	_, ok := s.kinds[kind]
	return ok
}

func (s *fakeSpawner) Spawn(w *World, kind Kind, col, row int) (*Entity, error) {
	if kind == s.fail {
		return nil, eris.New("spawn failed")
	}
	e := w.NewEntity(kind, s.kinds[kind], string(kind))
	e.Pos = cp.Vector{X: float64(col) * e.Size, Y: float64(row) * e.Size}
	return e, nil
}

type memLoader map[string]string

func (m memLoader) Load(path string) (*levels.Map, error) {
	src, ok := m[path]
	if !ok {
		return nil, eris.Errorf("no map %s", path)
	}
	return levels.Parse([]byte(src))
}

func newMapWorld(maps memLoader, paths ...string) *World {
	w := NewWorld()
	w.SetMapLoader(maps)
	w.SetSpawner(newFakeSpawner())
	w.SetMaps(paths...)
	return w
}

func TestWorldLoadMap(t *testing.T) {
	w := newMapWorld(memLoader{"a": "PS\n.M"}, "a")
	require.NoError(t, w.Start())

	assert.Equal(t, 1, w.WorldNumber())
	assert.Equal(t, 7, w.Count())
	assert.Len(t, w.Registry().Layer(LayerBackground), 4)
	require.NotNil(t, w.Player())
	assert.Equal(t, cp.Vector{}, w.Player().Pos)

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventMapLoaded, events[0].Type)
	assert.Equal(t, "a", events[0].Data)
}

func TestWorldLoadMapErrorsKeepPreviousMap(t *testing.T) {
	maps := memLoader{
		"good":    "PS",
		"unknown": "PE",
		"garbage": "P?",
	}
	cases := []struct {
		name string
		path string
		is   error
	}{
		{"missing_file", "nope", nil},
		{"unknown_kind", "unknown", ErrUnknownKind},
		{"bad_symbol", "garbage", levels.ErrUnknownSymbol},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newMapWorld(maps, "good")
			require.NoError(t, w.Start())
			before := w.Registry().Entities()

			err := w.LoadMap(c.path)
			require.Error(t, err)
			if c.is != nil {
				assert.ErrorIs(t, err, c.is)
			}
			assert.Equal(t, before, w.Registry().Entities())
			for _, e := range before {
				assert.True(t, w.IsAlive(e))
			}
		})
	}
}

func TestWorldLoadMapSpawnFailureKeepsPreviousMap(t *testing.T) {
	maps := memLoader{
		"good":   "PS\n.M",
		"broken": "MSP\n.M",
	}
	cases := []struct {
		name string
		load func(w *World) error
	}{
		{"load_other_map", func(w *World) error { return w.LoadMap("broken") }},
		{"reload_current_map", func(w *World) error { return w.Reload() }},
		{"world_toggle", func(w *World) error {
			w.RequestWorldToggle()
			return w.ApplyPendingReload()
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newMapWorld(maps, "good", "broken")
			spawner := newFakeSpawner()
			w.SetSpawner(spawner)
			require.NoError(t, w.Start())

			before := w.Registry().Entities()
			count := w.Count()
			player := w.Player()
			fired := false
			w.After(player, "pending", 1, func(*World, *Entity) { fired = true })

			spawner.fail = KindMushroom
			require.Error(t, c.load(w))

			assert.Equal(t, before, w.Registry().Entities())
			assert.Equal(t, count, w.Count())
			assert.Same(t, player, w.Player())
			assert.Equal(t, 1, w.WorldNumber())
			for _, e := range before {
				assert.True(t, w.IsAlive(e))
			}
			assert.Equal(t, 1, w.PendingTimers())
			w.AdvanceTimers()
			assert.True(t, fired, "timers of the kept map still run")
		})
	}
}

func TestWorldLoadMapReplacesPreviousMap(t *testing.T) {
	w := newMapWorld(memLoader{"a": "PS", "b": "SP\nMM"}, "a", "b")
	require.NoError(t, w.Start())
	old := w.Registry().Entities()
	oldPlayer := w.Player()
	w.After(oldPlayer, "pending", 1, func(*World, *Entity) {})

	require.NoError(t, w.LoadMap("b"))

	for _, e := range old {
		assert.False(t, w.IsAlive(e))
	}
	assert.Equal(t, 0, w.PendingTimers())
	assert.Equal(t, len(w.Registry().Entities()), w.Count())
	require.NotNil(t, w.Player())
	assert.NotSame(t, oldPlayer, w.Player())
}

func TestWorldLoadMapNeedsCollaborators(t *testing.T) {
	w := NewWorld()
	assert.ErrorIs(t, w.LoadMap("a"), ErrNoMapLoader)
	w.SetMapLoader(memLoader{})
	assert.ErrorIs(t, w.LoadMap("a"), ErrNoSpawner)
	assert.ErrorIs(t, w.Start(), ErrNoMaps)
}

func TestWorldToggleCycles(t *testing.T) {
	w := newMapWorld(memLoader{"one": "PC", "two": "P.\n.."}, "one", "two")
	require.NoError(t, w.Start())
	first := w.Player()

	w.RequestWorldToggle()
	w.RequestWorldToggle()
	require.NoError(t, w.ApplyPendingReload())
	assert.Equal(t, 2, w.WorldNumber())
	assert.False(t, w.IsAlive(first))
	assert.Equal(t, 5, w.Count())
	assert.Empty(t, w.Registry().Bucket(string(KindCave)))

	require.NoError(t, w.ApplyPendingReload(), "nothing pending")
	assert.Equal(t, 2, w.WorldNumber())

	w.RequestWorldToggle()
	require.NoError(t, w.ApplyPendingReload())
	assert.Equal(t, 1, w.WorldNumber())
	assert.Len(t, w.Registry().Bucket(string(KindCave)), 1)
}

func TestWorldReloadClearsTimers(t *testing.T) {
	w := newMapWorld(memLoader{"a": "PS"}, "a")
	require.NoError(t, w.Start())
	stone := w.Registry().Layer(LayerWorld)[0]
	fired := false
	w.After(stone, "t", 1, func(*World, *Entity) { fired = true })
	w.After(nil, "global", 1, func(*World, *Entity) { fired = true })

	require.NoError(t, w.Reload())
	w.AdvanceTimers()

	assert.False(t, fired)
	assert.Equal(t, 0, w.PendingTimers())
}

func TestWorldClose(t *testing.T) {
	w := newMapWorld(memLoader{"a": "PS"}, "a")
	require.NoError(t, w.Start())
	w.Input().Press("KeyW")
	w.RequestWorldToggle()

	w.Close()

	assert.Equal(t, 0, w.Count())
	assert.Equal(t, 0, w.Registry().Len())
	assert.Equal(t, 0, w.Events().Len())
	assert.Empty(t, w.Input().Keys())
	assert.False(t, w.ReloadPending())
	assert.Nil(t, w.Player())
}
