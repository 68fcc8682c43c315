package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceboy/internal/domain/entity"
	"github.com/younwookim/spaceboy/internal/ecs"
	"github.com/younwookim/spaceboy/internal/infrastructure/config"
	"github.com/younwookim/spaceboy/internal/infrastructure/level"
)

func createTestEntitiesConfig() *config.EntitiesConfig {
	body := config.BodyConfig{
		Width:        0.5,
		Height:       1.0,
		Friction:     config.Vec{X: 1, Y: 0.5},
		Acceleration: config.Vec{X: 0, Y: -1},
	}
	enemy := body
	enemy.Velocity = config.Vec{X: 2, Y: 0}
	enemy.Acceleration = config.Vec{X: 1, Y: -1}

	return &config.EntitiesConfig{
		Player:      body,
		Enemy:       config.EnemyConfig{BodyConfig: enemy, AI: createTestBounce()},
		Goal:        body,
		Collectible: body,
	}
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics:  createTestPhysicsConfig(),
		Entities: createTestEntitiesConfig(),
	}
}

func createTestLevel() *level.Data {
	return &level.Data{
		Name:   "test",
		Width:  3,
		Height: 3,
		Tiles: [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{1, 1, 1},
		},
		Objects: []level.Object{
			{Type: "Player", X: 0.5, Y: 1},
			{Type: "Enemy", X: 2, Y: 1},
			{Type: "coin", X: 1, Y: 0},
			{Type: "Goal", X: 2.5, Y: 1},
		},
	}
}

func TestLoadStage(t *testing.T) {
	t.Run("loads basic stage", func(t *testing.T) {
		arena := ecs.NewArena(8)

		stage, err := LoadStage(createTestLevel(), createTestGameConfig(), arena)
		require.NoError(t, err)

		assert.Equal(t, 3, stage.Grid.Width)
		assert.Equal(t, 3, stage.Grid.Height)
		assert.True(t, stage.Grid.SolidAt(1, 2))
		assert.Equal(t, entity.EntityID(0), stage.PlayerID)
		assert.Equal(t, 1, stage.Coins)
		assert.Equal(t, 4, arena.Len())

		player, ok := arena.Get(stage.PlayerID)
		require.True(t, ok)
		assert.Equal(t, entity.KindPlayer, player.Kind)
		assert.Equal(t, entity.Vec2{X: 0.5, Y: -1}, player.Position)
		assert.Equal(t, player.Position, player.Transform)
		assert.True(t, player.Active)

		enemy, ok := arena.Get(1)
		require.True(t, ok)
		assert.Equal(t, entity.KindEnemy, enemy.Kind)
		assert.Equal(t, entity.Vec2{X: 2, Y: 0}, enemy.Velocity)
		assert.Equal(t, entity.Vec2{X: 1, Y: -1}, enemy.Acceleration)
	})

	t.Run("resets arena", func(t *testing.T) {
		arena := ecs.NewArena(8)
		arena.Spawn(entity.Entity{})
		arena.Spawn(entity.Entity{})

		_, err := LoadStage(createTestLevel(), createTestGameConfig(), arena)
		require.NoError(t, err)
		assert.Equal(t, 4, arena.Len())
	})

	t.Run("scales by tile size", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Physics.Physics.TileSize = 2

		arena := ecs.NewArena(8)
		stage, err := LoadStage(createTestLevel(), cfg, arena)
		require.NoError(t, err)

		player, _ := arena.Get(stage.PlayerID)
		assert.Equal(t, entity.Vec2{X: 1, Y: -2}, player.Position)
	})
}

func TestLoadStage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		objects []level.Object
		target  error
	}{
		{"no player", []level.Object{{Type: "Goal"}}, ErrNoPlayer},
		{"two players", []level.Object{{Type: "Player"}, {Type: "player"}}, ErrManyPlayers},
		{"unknown kind", []level.Object{{Type: "Player"}, {Type: "Spike"}}, entity.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := createTestLevel()
			data.Objects = tt.objects

			_, err := LoadStage(data, createTestGameConfig(), ecs.NewArena(4))
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("ragged tiles", func(t *testing.T) {
		data := createTestLevel()
		data.Tiles = [][]int{{0, 0}, {0}}

		_, err := LoadStage(data, createTestGameConfig(), ecs.NewArena(4))
		assert.ErrorIs(t, err, entity.ErrRaggedGrid)
	})
}

func TestSpawnEntity(t *testing.T) {
	cfg := createTestEntitiesConfig()
	cfg.Goal.Width = 0.8

	e := SpawnEntity(entity.KindGoal, entity.Vec2{X: 3, Y: -4}, cfg)

	assert.Equal(t, entity.KindGoal, e.Kind)
	assert.Equal(t, 0.8, e.Width)
	assert.Equal(t, entity.Vec2{X: 1, Y: 0.5}, e.Friction)
	assert.True(t, e.Active)
}
