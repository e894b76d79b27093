package main

import (
	"github.com/fcblfcbasel1/Project-Informatik/assets"
	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/fcblfcbasel1/Project-Informatik/config"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/fcblfcbasel1/Project-Informatik/game"
	"github.com/fcblfcbasel1/Project-Informatik/input"
	"github.com/fcblfcbasel1/Project-Informatik/prefabs"
	"github.com/fcblfcbasel1/Project-Informatik/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const (
	screenWidth  = common.BaseWidth
	screenHeight = common.BaseHeight
)

// Game adapts a session to ebiten: input is polled and the scheduler ticked
// in Update, the finished frame is blitted in Draw.
type Game struct {
	session  *game.Session
	keyboard *input.Keyboard
	camera   *render.Camera
	canvas   *render.Canvas
	watcher  *prefabs.Watcher
	hud      *HUD

	quit bool
	log  zerolog.Logger
}

func NewGame(session *game.Session, cfg config.Config, watcher *prefabs.Watcher, log zerolog.Logger) *Game {
	g := &Game{
		session:  session,
		keyboard: input.NewKeyboard(),
		camera:   render.NewCamera(screenWidth, screenHeight),
		watcher:  watcher,
		log:      log,
	}
	g.canvas = render.NewCanvas(screenWidth, screenHeight, g.camera, assets.NewLibrary(cfg.AssetDir), log)
	g.hud = NewHUD(g)
	g.fitCamera()

	session.Scheduler.SetCamera(g.camera)
	session.Scheduler.SetRenderer(g.canvas)
	session.Scheduler.Start()
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.keyboard.Poll(g.session.World.Input())
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.TogglePause()
		g.hud.Refresh()
	}

	if g.watcher != nil {
		for _, change := range g.watcher.Pending() {
			if err := g.session.Apply(change); err != nil {
				g.log.Error().Err(err).Str("path", change.Path).Msg("reload failed, keeping current map")
			}
		}
	}

	g.session.Scheduler.Tick()
	g.handleEvents()
	g.hud.Update()
	return nil
}

func (g *Game) handleEvents() {
	for _, evt := range g.session.World.Events().Drain() {
		switch evt.Type {
		case ecs.EventMapLoaded:
			g.fitCamera()
		case ecs.EventPlayerDied:
			g.log.Info().Int("world", g.session.World.WorldNumber()).Msg("restarting after death")
			if err := g.session.Restart(); err != nil {
				g.log.Error().Err(err).Msg("restart failed")
			}
		}
	}
	g.hud.Refresh()
}

func (g *Game) fitCamera() {
	w, h := g.session.MapBounds()
	g.camera.SetWorldBounds(w, h)
	if player := g.session.World.Player(); player != nil {
		center := player.Center()
		g.camera.SnapTo(center.X, center.Y)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Surface(), nil)
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
