// Package scene defines the Scene interface the game loop drives.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The loop delegates Update and Draw
// to the current scene; a scene hands control over by returning the
// next scene from Update, or ends the run by returning an error.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene
	// requests a transition; nil stays on the current scene.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene stops being current, and on shutdown.
	// Persistence hooks live here.
	OnExit()
}
