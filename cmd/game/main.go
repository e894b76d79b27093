package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/fcblfcbasel1/Project-Informatik/config"
	"github.com/fcblfcbasel1/Project-Informatik/game"
	"github.com/fcblfcbasel1/Project-Informatik/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "game.env", "settings file (KEY=value lines)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watch := flag.Bool("watch", false, "reload prefabs, scripts and maps when they change on disk")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	log := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *debug {
		cfg.LogLevel = "debug"
		log = cfg.NewLogger(os.Stderr)
	}
	cfg.Watch = cfg.Watch || *watch
	if *profileMode != "" {
		cfg.Profile = *profileMode
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	session, err := game.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}
	defer session.Close()

	var watcher *prefabs.Watcher
	if cfg.Watch {
		watcher, err = prefabs.NewWatcher(cfg.PrefabDir, filepath.Join(cfg.PrefabDir, "scripts"), cfg.LevelDir)
		if err != nil {
			log.Warn().Err(err).Msg("hot reload disabled")
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(float64(screenWidth)*cfg.Scale), int(float64(screenHeight)*cfg.Scale))
	ebiten.SetWindowTitle("Project Informatik")
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(60)

	g := NewGame(session, cfg, watcher, log)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Error().Err(err).Msg("game loop")
	}
}
