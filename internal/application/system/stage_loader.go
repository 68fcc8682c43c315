package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/spaceboy/internal/domain/entity"
	"github.com/younwookim/spaceboy/internal/ecs"
	"github.com/younwookim/spaceboy/internal/infrastructure/config"
	"github.com/younwookim/spaceboy/internal/infrastructure/level"
)

var (
	// ErrNoPlayer is returned for a level without a player object
	ErrNoPlayer = errors.New("level has no player")
	// ErrManyPlayers is returned for a level with more than one player object
	ErrManyPlayers = errors.New("level has more than one player")
)

// Stage is a level ready to simulate
type Stage struct {
	Grid     *entity.TileGrid
	PlayerID entity.EntityID
	Coins    int
}

// LoadStage builds the tile grid from level data and spawns its objects
// into arena, which is reset first. Object tile coordinates become world
// positions (col*TileSize, -row*TileSize).
func LoadStage(data *level.Data, cfg *config.GameConfig, arena *ecs.Arena) (*Stage, error) {
	ts := cfg.Physics.Physics.TileSize
	grid, err := entity.NewTileGrid(data.Tiles, ts, cfg.Physics.Physics.SolidTiles)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}

	arena.Reset()
	stage := &Stage{Grid: grid}
	players := 0

	for _, obj := range data.Objects {
		kind, err := entity.ParseKind(obj.Type)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", data.Name, err)
		}

		pos := entity.Vec2{X: obj.X * ts, Y: -obj.Y * ts}
		id := arena.Spawn(SpawnEntity(kind, pos, cfg.Entities))

		switch kind {
		case entity.KindPlayer:
			players++
			stage.PlayerID = id
		case entity.KindCollectible:
			stage.Coins++
		}
	}

	switch {
	case players == 0:
		return nil, fmt.Errorf("level %s: %w", data.Name, ErrNoPlayer)
	case players > 1:
		return nil, fmt.Errorf("level %s: %d players: %w", data.Name, players, ErrManyPlayers)
	}

	return stage, nil
}

// SpawnEntity creates an active entity of kind at pos with its configured defaults
func SpawnEntity(kind entity.Kind, pos entity.Vec2, cfg *config.EntitiesConfig) entity.Entity {
	var body config.BodyConfig
	switch kind {
	case entity.KindPlayer:
		body = cfg.Player
	case entity.KindEnemy:
		body = cfg.Enemy.BodyConfig
	case entity.KindGoal:
		body = cfg.Goal
	case entity.KindCollectible:
		body = cfg.Collectible
	}

	return entity.Entity{
		Kind:         kind,
		Position:     pos,
		Transform:    pos,
		Velocity:     entity.Vec2{X: body.Velocity.X, Y: body.Velocity.Y},
		Acceleration: entity.Vec2{X: body.Acceleration.X, Y: body.Acceleration.Y},
		Friction:     entity.Vec2{X: body.Friction.X, Y: body.Friction.Y},
		Width:        body.Width,
		Height:       body.Height,
		Active:       true,
	}
}
