// Command tui runs the game in a terminal, one cell per tile.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fcblfcbasel1/Project-Informatik/common"
	"github.com/fcblfcbasel1/Project-Informatik/config"
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/fcblfcbasel1/Project-Informatik/game"
	"github.com/fcblfcbasel1/Project-Informatik/input"
	"github.com/fcblfcbasel1/Project-Informatik/prefabs"
	"github.com/fcblfcbasel1/Project-Informatik/render"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "game.env", "settings file (KEY=value lines)")
	logPath := flag.String("log", "tui.log", "log file; the terminal is busy drawing")
	watch := flag.Bool("watch", false, "reload prefabs, scripts and maps when they change on disk")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		os.Exit(1)
	}
	defer logFile.Close()

	cfg, err := config.Load(*configPath)
	cfg.LogPretty = false
	log := cfg.NewLogger(logFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	session, err := game.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}
	defer session.Close()

	var watcher *prefabs.Watcher
	if cfg.Watch || *watch {
		watcher, err = prefabs.NewWatcher(cfg.PrefabDir, filepath.Join(cfg.PrefabDir, "scripts"), cfg.LevelDir)
		if err != nil {
			log.Warn().Err(err).Msg("hot reload disabled")
		} else {
			defer watcher.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("open terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("init terminal")
	}
	defer screen.Fini()

	if err := run(screen, session, watcher, cfg, log); err != nil {
		log.Error().Err(err).Msg("terminal loop")
	}
}

func run(screen tcell.Screen, session *game.Session, watcher *prefabs.Watcher, cfg config.Config, log zerolog.Logger) error {
	camera := render.NewCamera(0, 0)
	camera.SetSmooth(1)
	term := render.NewTerminal(screen, camera)
	keys := input.NewTerminal(cfg.HoldFrames)

	fit := func() {
		camera.SetViewSize(term.ViewSize())
		camera.SetWorldBounds(session.MapBounds())
		if player := session.World.Player(); player != nil {
			center := player.Center()
			camera.SnapTo(center.X, center.Y)
		}
	}
	fit()
	session.Scheduler.SetCamera(camera)
	session.Scheduler.SetRenderer(term)
	session.Scheduler.Start()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				fit()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
					session.TogglePause()
					continue
				}
				if keys.Handle(ev, session.World.Input()) == "Escape" {
					session.World.Input().Release("Escape")
					session.TogglePause()
				}
			}
		case <-ticker.C:
			keys.Advance(session.World.Input())
			if watcher != nil {
				for _, change := range watcher.Pending() {
					if err := session.Apply(change); err != nil {
						log.Error().Err(err).Str("path", change.Path).Msg("reload failed, keeping current map")
					}
				}
			}
			session.Scheduler.Tick()
			for _, evt := range session.World.Events().Drain() {
				switch evt.Type {
				case ecs.EventMapLoaded:
					fit()
				case ecs.EventPlayerDied:
					log.Info().Msg("restarting after death")
					if err := session.Restart(); err != nil {
						return err
					}
				}
			}
			term.Status(session.Status() + "  " + healthBar(session))
			screen.Show()
		}
	}
}

const healthCells = 10

func healthBar(session *game.Session) string {
	n := session.HealthFill(healthCells)
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", healthCells-n) + "]"
}
