package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/robobrawl/internal/application/game"
	"github.com/younwookim/robobrawl/internal/application/scene"
	"github.com/younwookim/robobrawl/internal/application/scene/playing"
	"github.com/younwookim/robobrawl/internal/infrastructure/config"
	"github.com/younwookim/robobrawl/internal/infrastructure/progress"
)

const appName = "robobrawl"

// loadConfig reads configs from dir, or the embedded copy when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded configs: %w", err)
		}
		return config.NewFSLoader(fsys, "configs").LoadAll()
	}
	return config.NewLoader(dir).LoadAll()
}

// startArena picks the requested arena, or the last unlocked one
func startArena(cfg *config.GameConfig, requested string, unlocked func(string) bool) (string, error) {
	if requested != "" {
		if _, ok := cfg.Arena(requested); !ok {
			return "", fmt.Errorf("unknown arena %q", requested)
		}
		return requested, nil
	}
	if len(cfg.Tuning.Arenas) == 0 {
		return "", fmt.Errorf("no arenas configured")
	}
	id := cfg.Tuning.Arenas[0]
	if unlocked == nil {
		return id, nil
	}
	for _, a := range cfg.Tuning.Arenas {
		if unlocked(a) {
			id = a
		}
	}
	return id, nil
}

// watchConfig rebuilds the running arena whenever a file under dir changes
func watchConfig(dir string, g *game.Game, opts []playing.Option) (*config.Watcher, error) {
	w, err := config.NewWatcher(dir, filepath.Join(dir, "arenas"))
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				log.Printf("Config changed: %s", name)
				g.Replace(func(current scene.Scene) (scene.Scene, error) {
					cfg, err := config.NewLoader(dir).LoadAll()
					if err != nil {
						return nil, err
					}
					id := ""
					if p, ok := current.(*playing.Playing); ok {
						id = p.ArenaID()
					}
					if _, ok := cfg.Arena(id); !ok {
						return nil, fmt.Errorf("arena %q is gone after reload", id)
					}
					next, err := playing.New(cfg, id, opts...)
					if err != nil {
						return nil, err
					}
					log.Printf("Reloaded config, restarting arena %s", id)
					return next, nil
				})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: config watcher: %v", err)
			}
		}
	}()
	return w, nil
}

func main() {
	arenaFlag := flag.String("arena", "", "Arena to start in (default: the latest unlocked)")
	configFlag := flag.String("config", "", "Config directory (default: built-in configs)")
	watchFlag := flag.Bool("watch", false, "Restart the arena when files under -config change")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var opts []playing.Option
	var unlocked func(string) bool
	tracker, err := progress.Open(appName, cfg.Tuning.Arenas)
	if err != nil {
		log.Printf("Warning: progress will not be saved: %v", err)
	} else {
		unlocked = tracker.Unlocked
		opts = append(opts, playing.WithProgress(tracker), playing.WithUnlocked(unlocked))
	}

	arenaID, err := startArena(cfg, *arenaFlag, unlocked)
	if err != nil {
		log.Fatalf("Failed to pick arena: %v", err)
	}
	first, err := playing.New(cfg, arenaID, opts...)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	display := cfg.Tuning.Display
	g := game.New(first, display.ScreenWidth, display.ScreenHeight)
	if display.Framerate > 0 {
		g.SetDT(1.0 / float64(display.Framerate))
		ebiten.SetTPS(display.Framerate)
	}

	if *watchFlag {
		if *configFlag == "" {
			log.Fatal("-watch needs -config")
		}
		w, err := watchConfig(*configFlag, g, opts)
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer w.Close()
	}

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle("Robo Brawl")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
