package system

import (
	"math"

	"github.com/younwookim/spaceboy/internal/domain/entity"
	"github.com/younwookim/spaceboy/internal/infrastructure/config"
)

// PhysicsSystem integrates entities and resolves them against the tile grid.
// Each step moves Y and resolves it before moving and resolving X, so a
// diagonal approach into a corner is settled one axis at a time.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	bounce config.EnemyAIConfig
	grid   *entity.TileGrid
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, bounce config.EnemyAIConfig, grid *entity.TileGrid) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		bounce: bounce,
		grid:   grid,
	}
}

// SetGrid swaps the collision map on a level change
func (s *PhysicsSystem) SetGrid(grid *entity.TileGrid) {
	s.grid = grid
}

// Step advances one entity by dt. Input only affects the player.
// Returns true when the player started a jump this step.
func (s *PhysicsSystem) Step(e *entity.Entity, input InputState, dt float64) bool {
	e.Velocity.X = lerp(e.Velocity.X, 0, dt*e.Friction.X)
	e.Velocity.Y = lerp(e.Velocity.Y, 0, dt*e.Friction.Y)

	jumped := false
	if e.Kind == entity.KindPlayer {
		jumped = s.applyInput(e, input)
	}

	maxX := s.config.Movement.MaxSpeedX
	e.Velocity.X = clamp(e.Velocity.X+e.Acceleration.X*dt, -maxX, maxX)
	e.Velocity.Y += e.Acceleration.Y * dt

	e.OutOfWorld = false
	e.Position.Y += e.Velocity.Y * dt
	s.collideTileY(e)

	e.Position.X += e.Velocity.X * dt
	s.collideTileX(e)

	e.Transform = e.Position
	return jumped
}

// applyInput sets horizontal acceleration from held keys and starts a jump
// if the player was standing on a tile at the end of the previous step
func (s *PhysicsSystem) applyInput(e *entity.Entity, input InputState) bool {
	if input.HorizontalReleased {
		e.Velocity.X = 0
	}

	accel := s.config.Movement.Acceleration
	switch {
	case input.Left:
		e.Acceleration.X = -accel
	case input.Right:
		e.Acceleration.X = accel
	default:
		e.Acceleration.X = 0
	}

	if input.Jump && e.Collisions.Bottom {
		e.Velocity.Y = s.config.Movement.JumpImpulse
		return true
	}
	return false
}

// collideTileY samples the tile under the midpoint of the top edge and of
// the bottom edge and pushes the entity out of any solid one
func (s *PhysicsSystem) collideTileY(e *entity.Entity) {
	eps := s.config.Physics.PenetrationEpsilon
	e.Collisions.Top = false
	e.Collisions.Bottom = false

	_, row, solid, inside := s.grid.Probe(e.Position.X, e.Top())
	if !inside {
		e.OutOfWorld = true
	}
	if solid {
		e.Collisions.Top = true
		e.Velocity.Y = 0
		pen := math.Abs(e.Top() - s.grid.RowBottom(row))
		e.Penetration.Y = pen
		e.Position.Y -= pen + eps
	}

	_, row, solid, inside = s.grid.Probe(e.Position.X, e.Bottom())
	if !inside {
		e.OutOfWorld = true
	}
	if solid {
		e.Collisions.Bottom = true
		e.Velocity.Y = 0
		e.Acceleration.Y = 0
		pen := s.grid.RowTop(row) - e.Bottom()
		e.Penetration.Y = pen
		e.Position.Y += pen + eps
	} else {
		// Airborne: gravity takes over
		e.Acceleration.Y = s.config.Physics.Gravity
	}
}

// collideTileX samples the tile at the midpoint of the left edge and of the
// right edge and pushes the entity out of any solid one
func (s *PhysicsSystem) collideTileX(e *entity.Entity) {
	eps := s.config.Physics.PenetrationEpsilon
	e.Collisions.Left = false
	e.Collisions.Right = false

	col, _, solid, inside := s.grid.Probe(e.Left(), e.Position.Y)
	if !inside {
		e.OutOfWorld = true
	}
	if solid {
		e.Collisions.Left = true
		pen := e.Left() - s.grid.ColRight(col)
		e.Penetration.X = math.Abs(pen)
		e.Position.X -= pen - eps
		s.wallResponse(e, 1)
	}

	col, _, solid, inside = s.grid.Probe(e.Right(), e.Position.Y)
	if !inside {
		e.OutOfWorld = true
	}
	if solid {
		e.Collisions.Right = true
		pen := s.grid.ColLeft(col) - e.Right()
		e.Penetration.X = math.Abs(pen)
		e.Position.X += pen - eps
		s.wallResponse(e, -1)
	}
}

// wallResponse stops the player; anything else turns around and heads
// in direction away (+1 right, -1 left)
func (s *PhysicsSystem) wallResponse(e *entity.Entity, away float64) {
	if e.Kind == entity.KindPlayer {
		e.Velocity.X = 0
		return
	}
	e.Velocity.X = away * s.bounce.BounceSpeed
	e.Acceleration.X = away * s.bounce.BounceAccel
}

func lerp(from, to, t float64) float64 {
	return (1.0-t)*from + t*to
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
