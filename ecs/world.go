package ecs

import (
	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/fcblfcbasel1/Project-Informatik/levels"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

var (
	ErrNoMapLoader   = eris.New("ecs: no map loader configured")
	ErrNoSpawner     = eris.New("ecs: no spawner configured")
	ErrUnknownKind   = eris.New("ecs: unknown entity kind")
	ErrNoMaps        = eris.New("ecs: no maps configured")
	ErrMissingPlayer = eris.New("ecs: map has no player")
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Currency is the money resource the collision policy pays into.
type Currency interface {
	Increase(amount int)
	Amount() int
}

// Vitality is the player's health resource.
type Vitality interface {
	Attack(amount int)
	Die()
	Health() int
}

// MapLoader reads a map asset. It is called on startup and on every world
// toggle.
type MapLoader interface {
	Load(path string) (*levels.Map, error)
}

// Spawner builds entities of a kind. Spawn must create the entity through
// World.NewEntity so it is registered on construction.
type Spawner interface {
	Has(kind Kind) bool
	Spawn(w *World, kind Kind, col, row int) (*Entity, error)
}

// Tuning holds the gameplay constants used by behaviors.
type Tuning struct {
	PickupReward        int
	HarvestReward       int
	HarvestTicks        int
	TickFrames          int
	EnemyDamage         int
	EnemySlowSpeed      float64
	EnemyRecoveryFrames int
	ActionKey           string
	JumpKey             string
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		PickupReward:        10,
		HarvestReward:       20,
		HarvestTicks:        3,
		TickFrames:          common.TPS,
		EnemyDamage:         5,
		EnemySlowSpeed:      2,
		EnemyRecoveryFrames: 3 * common.TPS,
		ActionKey:           "KeyF",
		JumpKey:             "Space",
	}
}

// World is the explicit game context: the indexes, the resources, the
// current map and everything deferred between frames.
type World struct {
	registry *Registry
	entities entityStore
	input    *InputState
	events   EventQueue
	timers   timerQueue

	money  Currency
	health Vitality
	player *Entity

	loader  MapLoader
	spawner Spawner
	maps    []string

	worldNumber   int
	pendingToggle bool
	frame         int

	tuning Tuning
	log    zerolog.Logger
}

// NewWorld creates an empty world with default tuning and a no-op logger.
func NewWorld() *World {
	return &World{
		registry: NewRegistry(),
		input:    NewInputState(),
		tuning:   DefaultTuning(),
		log:      zerolog.Nop(),
	}
}

func (w *World) SetLogger(l zerolog.Logger) {
	if w == nil {
		return
	}
	w.log = l
}

func (w *World) Logger() *zerolog.Logger {
	if w == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return &w.log
}

// SetResources attaches the money and health resources.
func (w *World) SetResources(money Currency, health Vitality) {
	if w == nil {
		return
	}
	w.money = money
	w.health = health
}

func (w *World) Money() Currency {
	if w == nil {
		return nil
	}
	return w.money
}

func (w *World) Health() Vitality {
	if w == nil {
		return nil
	}
	return w.health
}

func (w *World) SetMapLoader(l MapLoader) {
	if w == nil {
		return
	}
	w.loader = l
}

func (w *World) SetSpawner(s Spawner) {
	if w == nil {
		return
	}
	w.spawner = s
}

// SetMaps configures the maps the world cycles through; world number n uses
// maps[n-1].
func (w *World) SetMaps(paths ...string) {
	if w == nil {
		return
	}
	w.maps = append([]string(nil), paths...)
}

func (w *World) SetTuning(t Tuning) {
	if w == nil {
		return
	}
	w.tuning = t
}

func (w *World) Tuning() Tuning {
	if w == nil {
		return DefaultTuning()
	}
	return w.tuning
}

func (w *World) Registry() *Registry {
	if w == nil {
		return nil
	}
	return w.registry
}

func (w *World) Input() *InputState {
	if w == nil {
		return nil
	}
	return w.input
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Player returns the player-controlled entity of the current map, or nil.
func (w *World) Player() *Entity {
	if w == nil || !w.IsAlive(w.player) {
		return nil
	}
	return w.player
}

// WorldNumber is the 1-based index of the loaded map, 0 before the first load.
func (w *World) WorldNumber() int {
	if w == nil {
		return 0
	}
	return w.worldNumber
}

func (w *World) Frame() int {
	if w == nil {
		return 0
	}
	return w.frame
}

func (w *World) advanceFrame() {
	w.frame++
}

// NewEntity allocates an entity and registers it in the layer index and in
// the collision index for each tag.
func (w *World) NewEntity(kind Kind, layer string, tags ...string) *Entity {
	if w == nil {
		return nil
	}
	e := &Entity{
		ID:       w.entities.create(),
		Kind:     kind,
		Layer:    layer,
		Size:     common.TileSize,
		Pipeline: NewPipeline(),
		tags:     uniqueTags(tags),
	}
	w.registry.Register(e)
	if kind == KindPlayer && w.Player() == nil {
		w.player = e
	}
	return e
}

// Destroy removes e from every index and retires its id. It reports false
// when e was already destroyed.
func (w *World) Destroy(e *Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	w.registry.Deregister(e)
	w.entities.destroy(e.ID)
	if w.player == e {
		w.player = nil
	}
	return true
}

// IsAlive reports whether e was created by this world and not destroyed.
func (w *World) IsAlive(e *Entity) bool {
	if w == nil || e == nil {
		return false
	}
	return w.entities.isAlive(e.ID)
}

// SetCollisionTags replaces e's collision tags and updates the collision
// index to match.
func (w *World) SetCollisionTags(e *Entity, tags ...string) {
	if !w.IsAlive(e) {
		return
	}
	w.registry.Retag(e, tags)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// After schedules fn to run once, frames frames from now. If target is
// destroyed first the timer is dropped.
func (w *World) After(target *Entity, name string, frames int, fn TimerFunc) *Timer {
	return w.Countdown(target, name, 1, frames, fn)
}

// Countdown schedules fn to run after ticks periods of frames frames.
func (w *World) Countdown(target *Entity, name string, ticks, frames int, fn TimerFunc) *Timer {
	if w == nil {
		return nil
	}
	if ticks < 1 {
		ticks = 1
	}
	if frames < 1 {
		frames = 1
	}
	t := &Timer{Name: name, Target: target, Frames: frames, Ticks: ticks, fn: fn, remaining: frames}
	w.timers.add(t)
	return t
}

// TimerFor returns the pending timer with the given name bound to target.
func (w *World) TimerFor(target *Entity, name string) *Timer {
	if w == nil {
		return nil
	}
	return w.timers.find(target, name)
}

// PendingTimers returns the number of timers that have not fired yet.
func (w *World) PendingTimers() int {
	if w == nil {
		return 0
	}
	return w.timers.len()
}

// AdvanceTimers steps all timers by one frame.
func (w *World) AdvanceTimers() {
	if w == nil {
		return
	}
	w.timers.advance(w)
}

// LoadMap replaces the current map. The map is read and validated first,
// then built into a fresh registry next to the current one. The current map
// is destroyed only once every entity of the new one spawned; any failure
// leaves the previous map, its timers and its player untouched.
func (w *World) LoadMap(path string) error {
	if w == nil {
		return nil
	}
	if w.loader == nil {
		return ErrNoMapLoader
	}
	if w.spawner == nil {
		return ErrNoSpawner
	}

	m, err := w.loader.Load(path)
	if err != nil {
		return eris.Wrapf(err, "ecs: load map %s", path)
	}
	hasPlayer := false
	for _, tile := range m.Tiles {
		kind := Kind(tile.Kind)
		if !w.spawner.Has(kind) {
			return eris.Wrapf(ErrUnknownKind, "ecs: map %s: %q at %d,%d", path, tile.Kind, tile.Col, tile.Row)
		}
		hasPlayer = hasPlayer || kind == KindPlayer
	}
	if !hasPlayer {
		return eris.Wrapf(ErrMissingPlayer, "ecs: map %s", path)
	}

	prev := w.stage()
	for _, tile := range m.Tiles {
		if _, err := w.spawner.Spawn(w, Kind(tile.Kind), tile.Col, tile.Row); err != nil {
			w.rollback(prev)
			return eris.Wrapf(err, "ecs: map %s: spawn %s at %d,%d", path, tile.Kind, tile.Col, tile.Row)
		}
	}
	if w.player == nil {
		w.rollback(prev)
		return eris.Wrapf(ErrMissingPlayer, "ecs: map %s", path)
	}
	w.discard(prev.registry, &prev.timers)

	w.log.Info().Str("map", path).Int("entities", w.Count()).Msg("map loaded")
	w.events.Push(Event{Type: EventMapLoaded, Data: path})
	return nil
}

// Start loads the first configured map and sets the world number to 1.
func (w *World) Start() error {
	if w == nil {
		return nil
	}
	if len(w.maps) == 0 {
		return ErrNoMaps
	}
	if err := w.LoadMap(w.maps[0]); err != nil {
		return err
	}
	w.worldNumber = 1
	return nil
}

// RequestWorldToggle asks for a switch to the next map. The switch happens
// at the end of the current frame's systems; repeated requests within one
// frame collapse into one.
func (w *World) RequestWorldToggle() {
	if w == nil {
		return
	}
	w.pendingToggle = true
}

// ReloadPending reports whether a map switch has been requested.
func (w *World) ReloadPending() bool {
	return w != nil && w.pendingToggle
}

// ApplyPendingReload performs a requested map switch. World n moves to
// world n+1, wrapping after the last map.
func (w *World) ApplyPendingReload() error {
	if w == nil || !w.pendingToggle {
		return nil
	}
	w.pendingToggle = false
	if len(w.maps) == 0 {
		return ErrNoMaps
	}

	next := w.worldNumber%len(w.maps) + 1
	if err := w.LoadMap(w.maps[next-1]); err != nil {
		return err
	}
	w.log.Info().Int("from", w.worldNumber).Int("to", next).Msg("world toggled")
	w.worldNumber = next
	return nil
}

// Reload reloads the current map in place.
func (w *World) Reload() error {
	if w == nil || w.worldNumber == 0 || w.worldNumber > len(w.maps) {
		return nil
	}
	return w.LoadMap(w.maps[w.worldNumber-1])
}

// Close tears the world down: every entity is destroyed and every pending
// timer and event dropped.
func (w *World) Close() {
	if w == nil {
		return
	}
	w.clear()
	w.events.flush()
	w.input.Reset()
	w.pendingToggle = false
}

func (w *World) clear() {
	w.discard(w.registry, &w.timers)
	w.player = nil
}

// mapState is what a map load replaces.
type mapState struct {
	registry *Registry
	timers   timerQueue
	player   *Entity
}

// stage sets the current map aside and points the world at empty indexes.
// Ids keep coming from the shared store, so staged entities never alias
// the ones set aside.
func (w *World) stage() mapState {
	prev := mapState{registry: w.registry, timers: w.timers, player: w.player}
	w.registry = NewRegistry(w.registry.layerOrder...)
	w.timers = timerQueue{}
	w.player = nil
	return prev
}

// rollback destroys the partly built map and restores prev.
func (w *World) rollback(prev mapState) {
	w.discard(w.registry, &w.timers)
	w.registry, w.timers, w.player = prev.registry, prev.timers, prev.player
}

// discard destroys every entity of reg and drops the timers.
func (w *World) discard(reg *Registry, timers *timerQueue) {
	for _, e := range reg.Entities() {
		w.entities.destroy(e.ID)
	}
	reg.Clear()
	timers.clear()
}
