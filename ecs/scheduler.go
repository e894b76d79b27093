package ecs

// Renderer draws layers. It is an external collaborator.
type Renderer interface {
	ClearSurface()
	DrawLayer(tag string, entities []*Entity)
}

// Camera follows an entity. It is an external collaborator.
type Camera interface {
	CenterOn(e *Entity)
	NextFrame()
	ClearScreen()
}

// SchedulerState is the run state of the frame scheduler.
type SchedulerState uint8

const (
	Stopped SchedulerState = iota
	Running
)

func (s SchedulerState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Scheduler is the cooperative frame driver. The host calls Tick once per
// host frame; Tick runs a step only when one was scheduled, and a step only
// schedules its successor while the scheduler is running. Pausing therefore
// takes effect at the next frame boundary and never interrupts a step.
type Scheduler struct {
	world    *World
	systems  []System
	camera   Camera
	renderer Renderer

	state     SchedulerState
	scheduled bool
}

// NewScheduler creates a stopped scheduler with one step scheduled, so the
// first frame is produced before the game is started.
func NewScheduler(w *World, systems ...System) *Scheduler {
	s := &Scheduler{world: w, scheduled: true}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

func (s *Scheduler) SetCamera(c Camera) {
	s.camera = c
}

func (s *Scheduler) SetRenderer(r Renderer) {
	s.renderer = r
}

func (s *Scheduler) World() *World {
	return s.world
}

func (s *Scheduler) State() SchedulerState {
	return s.state
}

func (s *Scheduler) Running() bool {
	return s.state == Running
}

// Start moves stopped to running and schedules the next step.
func (s *Scheduler) Start() {
	if s.state == Running {
		return
	}
	s.state = Running
	s.scheduled = true
}

// Pause moves running to stopped. An already scheduled step still runs.
func (s *Scheduler) Pause() {
	s.state = Stopped
}

// Tick runs the scheduled step, if any, and reports whether it did.
func (s *Scheduler) Tick() bool {
	if !s.scheduled {
		return false
	}
	s.scheduled = false
	s.Step()
	s.scheduled = s.state == Running
	return true
}

// Step produces one frame: advance the frame counter, prepare the surface,
// run the systems (entity update, timers, collisions), apply a requested map
// switch, recenter the camera on the player and draw every layer.
func (s *Scheduler) Step() {
	w := s.world
	if w == nil {
		return
	}
	w.advanceFrame()

	if s.renderer != nil {
		s.renderer.ClearSurface()
	}
	if s.camera != nil {
		s.camera.ClearScreen()
		s.camera.NextFrame()
	}

	for _, system := range s.systems {
		system.Update(w)
	}

	if err := w.ApplyPendingReload(); err != nil {
		w.log.Error().Err(err).Int("frame", w.Frame()).Msg("map switch failed, keeping current map")
	}

	if player := w.Player(); player != nil && s.camera != nil {
		s.camera.CenterOn(player)
	}

	if s.renderer != nil {
		reg := w.Registry()
		for _, tag := range reg.Layers() {
			s.renderer.DrawLayer(tag, reg.Layer(tag))
		}
	}
}
