package system

import (
	"math"

	"github.com/younwookim/spaceboy/internal/domain/entity"
	"github.com/younwookim/spaceboy/internal/infrastructure/config"
)

// EnemySystem steers enemies. An enemy near the player becomes alert and
// speeds up along its heading; otherwise it patrols at a steady pace.
// Turning around is left to the wall bounce in PhysicsSystem.
type EnemySystem struct {
	config config.EnemyAIConfig
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg config.EnemyAIConfig) *EnemySystem {
	return &EnemySystem{config: cfg}
}

// Think updates one enemy's state and acceleration
func (s *EnemySystem) Think(enemy, player *entity.Entity) {
	heading := sign(enemy.Acceleration.X)

	dx := math.Abs(player.Position.X - enemy.Position.X)
	dy := math.Abs(player.Position.Y - enemy.Position.Y)
	if dx < s.config.AlertRangeX && dy < s.config.AlertRangeY {
		enemy.Alert = true
		enemy.Acceleration.X = heading * s.config.AlertAccel
		return
	}

	enemy.Alert = false
	enemy.Velocity.X = heading * s.config.PatrolSpeed
	enemy.Acceleration.X = heading * s.config.PatrolAccel
}
