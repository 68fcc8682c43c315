// Package world owns the simulation: the current level, its entities, the
// fixed-step clock and the game mode. Everything the game loop mutates
// lives on a World value; nothing is package-level.
package world

import (
	"errors"
	"fmt"

	"github.com/younwookim/spaceboy/internal/application/clock"
	"github.com/younwookim/spaceboy/internal/application/state"
	"github.com/younwookim/spaceboy/internal/application/system"
	"github.com/younwookim/spaceboy/internal/domain/entity"
	"github.com/younwookim/spaceboy/internal/ecs"
	"github.com/younwookim/spaceboy/internal/infrastructure/config"
	"github.com/younwookim/spaceboy/internal/infrastructure/level"
)

// ErrNoLevels is returned by New when the level list is empty
var ErrNoLevels = errors.New("no levels")

const arenaCapacity = 64

// World is the simulation context
type World struct {
	config *config.GameConfig
	levels []*level.Data

	mode       state.GameState
	levelIndex int
	stage      *system.Stage
	arena      *ecs.Arena

	physics  *system.PhysicsSystem
	contacts *system.ContactSystem
	enemies  *system.EnemySystem

	playerAnim *system.Animator
	enemyAnim  *system.Animator

	acc   *clock.Accumulator
	input system.InputState

	score  int
	events []Event
	quit   bool
	err    error
}

// New creates a world in the menu. Every level is built once up front so
// a broken level fails here rather than mid-game.
func New(cfg *config.GameConfig, levels []*level.Data) (*World, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	arena := ecs.NewArena(arenaCapacity)
	for i, data := range levels {
		if _, err := system.LoadStage(data, cfg, arena); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}

	w := &World{
		config:     cfg,
		levels:     levels,
		mode:       state.StateMenu,
		arena:      arena,
		contacts:   system.NewContactSystem(),
		enemies:    system.NewEnemySystem(cfg.Entities.Enemy.AI),
		playerAnim: system.NewAnimator(cfg.Physics.Animation.FPS, cfg.Physics.Animation.Frames),
		enemyAnim:  system.NewAnimator(cfg.Physics.Animation.FPS, cfg.Physics.Animation.Frames),
		acc:        clock.NewAccumulator(cfg.Physics.Simulation.Step, cfg.Physics.Simulation.MaxStepsPerFrame),
		events:     make([]Event, 0, 8),
	}
	if err := w.loadLevel(0); err != nil {
		return nil, err
	}
	return w, nil
}

// Frame runs one displayed frame: mode keys are handled once, then the
// accumulator pays out fixed steps. Steps only simulate while playing,
// but elapsed time is consumed in every mode so nothing piles up behind
// a pause. Returns the number of steps paid out.
func (w *World) Frame(elapsed float64, in system.InputState) (int, error) {
	w.handleInput(in)
	if w.quit || w.err != nil {
		return 0, w.err
	}

	w.input = in
	n := w.acc.Advance(elapsed, func(dt float64) {
		if w.mode.Simulating() && w.err == nil {
			w.step(dt)
		}
	})
	return n, w.err
}

func (w *World) handleInput(in system.InputState) {
	switch w.mode {
	case state.StateMenu:
		switch {
		case in.Confirm:
			w.emit(EventSelect)
			w.startGame()
		case in.Instructions:
			w.emit(EventSelect)
			w.mode = state.StateManual
		case in.Pause:
			w.quit = true
		}

	case state.StateManual, state.StateWin, state.StateGameOver:
		switch {
		case in.Confirm:
			w.emit(EventSelect)
			w.toMenu()
		case in.Pause:
			w.quit = true
		}

	case state.StatePlaying:
		if in.Pause {
			w.mode = state.StatePaused
			w.emit(EventPause)
		}

	case state.StatePaused:
		switch {
		case in.Confirm:
			w.mode = state.StatePlaying
			w.emit(EventResume)
		case in.Pause:
			w.toMenu()
		}
	}
}

func (w *World) startGame() {
	w.score = 0
	if err := w.loadLevel(0); err != nil {
		w.err = err
		return
	}
	w.mode = state.StatePlaying
	w.emit(EventLevelStart)
}

func (w *World) toMenu() {
	w.mode = state.StateMenu
	w.emit(EventMenu)
}

func (w *World) loadLevel(i int) error {
	stage, err := system.LoadStage(w.levels[i], w.config, w.arena)
	if err != nil {
		return fmt.Errorf("level %d: %w", i+1, err)
	}

	w.levelIndex = i
	w.stage = stage
	if w.physics == nil {
		w.physics = system.NewPhysicsSystem(w.config.Physics, w.config.Entities.Enemy.AI, stage.Grid)
	} else {
		w.physics.SetGrid(stage.Grid)
	}
	w.playerAnim.Reset()
	w.enemyAnim.Reset()
	return nil
}

// step advances the level by one fixed step
func (w *World) step(dt float64) {
	playerID := w.stage.PlayerID
	player, ok := w.arena.Get(playerID)
	if !ok {
		return
	}

	w.arena.Each(func(_ entity.EntityID, e *entity.Entity) {
		if e.Active && e.Kind == entity.KindEnemy {
			w.enemies.Think(e, player)
		}
	})

	w.arena.Each(func(id entity.EntityID, e *entity.Entity) {
		if !e.Active {
			return
		}
		var in system.InputState
		if id == playerID {
			in = w.input
		}
		if w.physics.Step(e, in, dt) {
			w.emit(EventJump)
		}
	})
	// Key-up only applies to the first step of a frame
	w.input.HorizontalReleased = false

	floor := -w.stage.Grid.WorldHeight()
	if player.Top() < floor {
		w.lose()
		return
	}
	w.arena.Each(func(id entity.EntityID, e *entity.Entity) {
		if id != playerID && e.Top() < floor {
			w.arena.Release(id)
		}
	})

	for _, c := range w.contacts.Resolve(playerID, w.arena) {
		switch c.Kind {
		case entity.KindCollectible:
			w.arena.Release(c.ID)
			w.score++
			w.emit(EventCollect)
		case entity.KindEnemy:
			w.lose()
			return
		case entity.KindGoal:
			w.advance()
			return
		}
	}

	w.playerAnim.Advance(dt)
	w.enemyAnim.Advance(dt)
}

func (w *World) lose() {
	w.mode = state.StateGameOver
	w.emit(EventLose)
}

func (w *World) advance() {
	next := w.levelIndex + 1
	if next >= len(w.levels) {
		w.mode = state.StateWin
		w.emit(EventWin)
		return
	}
	if err := w.loadLevel(next); err != nil {
		w.err = err
		return
	}
	w.emit(EventLevelStart)
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// DrainEvents returns the events queued since the last call
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}

// State returns the current game mode
func (w *World) State() state.GameState {
	return w.mode
}

// LevelIndex returns the zero-based index of the loaded level
func (w *World) LevelIndex() int {
	return w.levelIndex
}

// LevelCount returns the number of levels
func (w *World) LevelCount() int {
	return len(w.levels)
}

// LevelName returns the name of the loaded level
func (w *World) LevelName() string {
	return w.levels[w.levelIndex].Name
}

// Grid returns the collision map of the loaded level
func (w *World) Grid() *entity.TileGrid {
	return w.stage.Grid
}

// Player returns the player entity
func (w *World) Player() (*entity.Entity, bool) {
	return w.arena.Get(w.stage.PlayerID)
}

// Each visits every live entity in arena order. fn must not mutate them.
func (w *World) Each(fn func(id entity.EntityID, e *entity.Entity)) {
	w.arena.Each(fn)
}

// Score returns the coins collected this run
func (w *World) Score() int {
	return w.score
}

// Coins returns the number of coins the current level started with
func (w *World) Coins() int {
	return w.stage.Coins
}

// PlayerFrame returns the player's animation frame
func (w *World) PlayerFrame() int {
	return w.playerAnim.Frame()
}

// EnemyFrame returns the shared enemy animation frame
func (w *World) EnemyFrame() int {
	return w.enemyAnim.Frame()
}

// Steps returns the number of fixed steps paid out so far
func (w *World) Steps() uint64 {
	return w.acc.Steps()
}

// Alpha returns the render interpolation factor
func (w *World) Alpha() float64 {
	return w.acc.Alpha()
}

// Quit reports whether the player asked to leave the game
func (w *World) Quit() bool {
	return w.quit
}
