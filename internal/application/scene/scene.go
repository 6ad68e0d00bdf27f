// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game, such as an arena fight.
// The game loop forwards Update and Draw to the active scene.
type Scene interface {
	// Update advances the scene by one frame of dt seconds.
	// A non-nil next scene replaces this one; an error stops the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter and OnExit bracket the time the scene is active.
	OnEnter()
	OnExit()
}
