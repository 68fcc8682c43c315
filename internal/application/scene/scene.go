// Package scene defines the Scene interface the game loop drives.
//
// Space Boy runs a single gameplay scene; its menu, manual, pause and
// end screens are world modes drawn by that scene, not separate scenes.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is what the game loop updates and draws each frame.
// Returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds of wall time.
	// The scene turns dt into fixed simulation steps itself.
	// A non-nil error ends the game; ebiten.Termination is a clean quit.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is left or the game ends.
	OnExit()
}
