// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/robobrawl/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// replace carries scene rebuilds requested outside the game loop (config reloads)
	replace chan Rebuild
}

// Rebuild builds a scene to replace current. Returning nil keeps current.
type Rebuild func(current scene.Scene) (scene.Scene, error)

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		replace: make(chan Rebuild, 1),
	}
	g.current.OnEnter()
	return g
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Replace runs build on the game loop before the next Update and switches
// to the scene it returns. It is safe to call from other goroutines; a newer
// request overrides one not yet applied. A failed build keeps the current scene.
func (g *Game) Replace(build Rebuild) {
	for {
		select {
		case g.replace <- build:
			return
		default:
		}
		select {
		case <-g.replace:
		default:
		}
	}
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	select {
	case build := <-g.replace:
		next, err := build(g.current)
		switch {
		case err != nil:
			log.Printf("Warning: Could not rebuild scene: %v", err)
		case next != nil:
			g.switchTo(next)
		}
	default:
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to scenes.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
