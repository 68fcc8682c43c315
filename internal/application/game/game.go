// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceboy/internal/application/clock"
	"github.com/younwookim/spaceboy/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	// clock supplies wall time per update; without one dt is fixed
	clock *clock.Clock
	dt    float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// NewWithClock creates a Game whose scenes receive measured wall time.
func NewWithClock(initialScene scene.Scene, screenW, screenH int, c *clock.Clock) *Game {
	g := New(initialScene, screenW, screenH)
	g.clock = c
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	dt := g.dt
	if g.clock != nil {
		dt = g.clock.Tick()
	}

	next, err := g.current.Update(dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
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

// SetDT sets the delta time used when no clock is attached.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Close exits the current scene. Call it once the run loop has returned.
func (g *Game) Close() {
	g.current.OnExit()
}
