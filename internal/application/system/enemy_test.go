package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/spaceboy/internal/domain/entity"
)

func TestEnemySystem_Think(t *testing.T) {
	tests := []struct {
		name      string
		playerX   float64
		playerY   float64
		heading   float64
		wantAlert bool
		wantAX    float64
		wantVX    float64
	}{
		{"player close ahead", 13, -20, 1, true, 5, 0.3},
		{"player close behind", 7, -21, -1, true, -5, 0.3},
		{"player far", 30, -20, 1, false, 2.5, 1.5},
		{"player far heading left", 30, -20, -1, false, -2.5, -1.5},
		{"player above range", 10, -15, 1, false, 2.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewEnemySystem(createTestBounce())
			enemy := createTestEntity(entity.KindEnemy, 10, -20)
			enemy.Acceleration.X = tt.heading
			enemy.Velocity.X = 0.3
			player := createTestEntity(entity.KindPlayer, tt.playerX, tt.playerY)

			sys.Think(enemy, player)

			assert.Equal(t, tt.wantAlert, enemy.Alert)
			assert.Equal(t, tt.wantAX, enemy.Acceleration.X)
			assert.Equal(t, tt.wantVX, enemy.Velocity.X)
		})
	}
}

func TestEnemySystem_CalmsDown(t *testing.T) {
	sys := NewEnemySystem(createTestBounce())
	enemy := createTestEntity(entity.KindEnemy, 10, -20)
	player := createTestEntity(entity.KindPlayer, 11, -20)

	sys.Think(enemy, player)
	assert.True(t, enemy.Alert)

	player.Position.X = 40
	sys.Think(enemy, player)
	assert.False(t, enemy.Alert)
}
