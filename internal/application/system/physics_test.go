package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceboy/internal/domain/entity"
	"github.com/younwookim/spaceboy/internal/infrastructure/config"
)

const (
	testDT  = 1.0 / 60.0
	testEps = 0.005
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Simulation: config.SimulationConfig{
			Step:             testDT,
			MaxStepsPerFrame: 10,
		},
		Physics: config.PhysicsSettings{
			TileSize:           1.0,
			Gravity:            -5.0,
			PenetrationEpsilon: testEps,
			SolidTiles:         []int{1},
		},
		Movement: config.MovementConfig{
			Acceleration: 3.5,
			JumpImpulse:  4.8,
			MaxSpeedX:    40,
		},
	}
}

func createTestBounce() config.EnemyAIConfig {
	return config.EnemyAIConfig{
		AlertRangeX: 6,
		AlertRangeY: 4,
		AlertAccel:  5,
		PatrolSpeed: 1.5,
		PatrolAccel: 2.5,
		BounceSpeed: 1,
		BounceAccel: 2.5,
	}
}

// createTestGrid builds a 5x5 room walled on every side.
// The open interior spans x in [1,4] and y in [-4,-1].
func createTestGrid(t *testing.T) *entity.TileGrid {
	t.Helper()
	tiles := make([][]int, 5)
	for row := 0; row < 5; row++ {
		tiles[row] = make([]int, 5)
		for col := 0; col < 5; col++ {
			if col == 0 || col == 4 || row == 0 || row == 4 {
				tiles[row][col] = 1
			}
		}
	}
	grid, err := entity.NewTileGrid(tiles, 1.0, []int{1})
	require.NoError(t, err)
	return grid
}

func createTestEntity(kind entity.Kind, x, y float64) *entity.Entity {
	return &entity.Entity{
		Kind:     kind,
		Position: entity.Vec2{X: x, Y: y},
		Friction: entity.Vec2{X: 1.0, Y: 0.5},
		Width:    0.5,
		Height:   1.0,
		Active:   true,
	}
}

func newTestPhysics(t *testing.T) *PhysicsSystem {
	t.Helper()
	return NewPhysicsSystem(createTestPhysicsConfig(), createTestBounce(), createTestGrid(t))
}

func TestNewPhysicsSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()
	grid := createTestGrid(t)

	sys := NewPhysicsSystem(cfg, createTestBounce(), grid)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
	assert.Equal(t, grid, sys.grid)
}

func TestPhysics_FallsOntoFloor(t *testing.T) {
	sys := newTestPhysics(t)
	p := createTestEntity(entity.KindPlayer, 2.5, -2.0)

	landed := false
	for i := 0; i < 300; i++ {
		sys.Step(p, InputState{}, testDT)
		if p.Collisions.Bottom {
			landed = true
			break
		}
	}

	require.True(t, landed, "player should reach the floor")
	assert.InDelta(t, -4.0+testEps, p.Bottom(), 1e-9)
	assert.Equal(t, 0.0, p.Velocity.Y)
	assert.Equal(t, 0.0, p.Acceleration.Y)
	assert.False(t, p.OutOfWorld)
	assert.Equal(t, p.Position, p.Transform)

	// standing still settles on the floor and stays there
	grounded := 0
	for i := 0; i < 120; i++ {
		sys.Step(p, InputState{}, testDT)

		require.GreaterOrEqual(t, p.Bottom(), -4.0, "step %d sank into the floor", i)
		if p.Collisions.Bottom {
			grounded++
			assert.InDelta(t, -4.0+testEps, p.Bottom(), 1e-9, "step %d", i)
		}
		assert.InDelta(t, 2.5, p.Position.X, 1e-9)
		assert.False(t, p.OutOfWorld)
	}
	assert.Greater(t, grounded, 0)
}

func TestPhysics_GravityResumesWhenAirborne(t *testing.T) {
	sys := newTestPhysics(t)
	p := createTestEntity(entity.KindPlayer, 2.5, -2.5)

	sys.Step(p, InputState{}, testDT)

	assert.False(t, p.Collisions.Bottom)
	assert.Equal(t, -5.0, p.Acceleration.Y)
}

func TestPhysics_PenetrationCorrection(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		axis  func(*PhysicsSystem, *entity.Entity)
		check func(t *testing.T, e *entity.Entity)
	}{
		{
			name: "floor",
			x:    2.5, y: -3.7, // bottom 0.2 into the floor
			axis: (*PhysicsSystem).collideTileY,
			check: func(t *testing.T, e *entity.Entity) {
				assert.True(t, e.Collisions.Bottom)
				assert.InDelta(t, 0.2, e.Penetration.Y, 1e-9)
				assert.InDelta(t, -4.0+testEps, e.Bottom(), 1e-9)
			},
		},
		{
			name: "ceiling",
			x:    2.5, y: -1.4, // top 0.1 into the ceiling
			axis: (*PhysicsSystem).collideTileY,
			check: func(t *testing.T, e *entity.Entity) {
				assert.True(t, e.Collisions.Top)
				assert.False(t, e.Collisions.Bottom)
				assert.InDelta(t, 0.1, e.Penetration.Y, 1e-9)
				assert.InDelta(t, -1.0-testEps, e.Top(), 1e-9)
			},
		},
		{
			name: "left wall",
			x:    1.15, y: -2.5, // left edge 0.1 into the wall
			axis: (*PhysicsSystem).collideTileX,
			check: func(t *testing.T, e *entity.Entity) {
				assert.True(t, e.Collisions.Left)
				assert.InDelta(t, 0.1, e.Penetration.X, 1e-9)
				assert.InDelta(t, 1.0+testEps, e.Left(), 1e-9)
			},
		},
		{
			name: "right wall",
			x:    3.85, y: -2.5, // right edge 0.1 into the wall
			axis: (*PhysicsSystem).collideTileX,
			check: func(t *testing.T, e *entity.Entity) {
				assert.True(t, e.Collisions.Right)
				assert.InDelta(t, 0.1, e.Penetration.X, 1e-9)
				assert.InDelta(t, 4.0-testEps, e.Right(), 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newTestPhysics(t)
			e := createTestEntity(entity.KindPlayer, tt.x, tt.y)
			e.Velocity = entity.Vec2{X: 1, Y: 1}

			tt.axis(sys, e)

			tt.check(t, e)
		})
	}
}

func TestPhysics_GroundedGate(t *testing.T) {
	tests := []struct {
		name       string
		grounded   bool
		wantJumped bool
	}{
		{"grounded jumps", true, true},
		{"airborne cannot jump", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newTestPhysics(t)
			p := createTestEntity(entity.KindPlayer, 2.5, -3.5+testEps)
			p.Collisions.Bottom = tt.grounded

			jumped := sys.Step(p, InputState{Jump: true}, testDT)

			assert.Equal(t, tt.wantJumped, jumped)
			if tt.wantJumped {
				assert.InDelta(t, 4.8, p.Velocity.Y, 1e-9)
				assert.Greater(t, p.Bottom(), -4.0+testEps)
			} else {
				assert.LessOrEqual(t, p.Velocity.Y, 0.0)
			}
		})
	}
}

func TestPhysics_JumpIgnoredForNonPlayer(t *testing.T) {
	sys := newTestPhysics(t)
	e := createTestEntity(entity.KindEnemy, 2.5, -3.5+testEps)
	e.Collisions.Bottom = true

	jumped := sys.Step(e, InputState{Jump: true, Left: true}, testDT)

	assert.False(t, jumped)
	assert.Equal(t, 0.0, e.Acceleration.X)
}

func TestPhysics_AxisIndependence(t *testing.T) {
	sys := newTestPhysics(t)
	// Heading down and right into the floor/right-wall corner
	p := createTestEntity(entity.KindPlayer, 3.7, -3.45)
	p.Velocity = entity.Vec2{X: 6, Y: -6}

	sys.Step(p, InputState{}, testDT)

	assert.True(t, p.Collisions.Bottom)
	assert.True(t, p.Collisions.Right)
	assert.False(t, p.Collisions.Top)
	assert.False(t, p.Collisions.Left)
	assert.InDelta(t, -4.0+testEps, p.Bottom(), 1e-9)
	assert.InDelta(t, 4.0-testEps, p.Right(), 1e-9)
	assert.Equal(t, 0.0, p.Velocity.X)
	assert.Equal(t, 0.0, p.Velocity.Y)
}

func TestPhysics_PlayerInput(t *testing.T) {
	tests := []struct {
		name   string
		input  InputState
		startV float64
		wantA  float64
		wantV  func(t *testing.T, v float64)
	}{
		{"left", InputState{Left: true}, 0, -3.5, func(t *testing.T, v float64) { assert.Less(t, v, 0.0) }},
		{"right", InputState{Right: true}, 0, 3.5, func(t *testing.T, v float64) { assert.Greater(t, v, 0.0) }},
		{"left wins over right", InputState{Left: true, Right: true}, 0, -3.5, nil},
		{"nothing held", InputState{}, 1, 0, func(t *testing.T, v float64) { assert.InDelta(t, 1-testDT, v, 1e-9) }},
		{"release stops", InputState{HorizontalReleased: true}, 1, 0, func(t *testing.T, v float64) { assert.Equal(t, 0.0, v) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newTestPhysics(t)
			p := createTestEntity(entity.KindPlayer, 2.5, -2.5)
			p.Velocity.X = tt.startV

			sys.Step(p, tt.input, testDT)

			assert.Equal(t, tt.wantA, p.Acceleration.X)
			if tt.wantV != nil {
				tt.wantV(t, p.Velocity.X)
			}
		})
	}
}

func TestPhysics_MaxSpeedClampsBothWays(t *testing.T) {
	cfg := createTestPhysicsConfig()
	cfg.Movement.MaxSpeedX = 2
	sys := NewPhysicsSystem(cfg, createTestBounce(), createTestGrid(t))

	fast := createTestEntity(entity.KindEnemy, 2.5, -2.5)
	fast.Velocity.X = 10
	sys.Step(fast, InputState{}, 0.01)
	assert.Equal(t, 2.0, fast.Velocity.X)

	back := createTestEntity(entity.KindEnemy, 2.5, -2.5)
	back.Velocity.X = -10
	sys.Step(back, InputState{}, 0.01)
	assert.Equal(t, -2.0, back.Velocity.X)
}

func TestPhysics_EnemyBouncesOffWalls(t *testing.T) {
	sys := newTestPhysics(t)

	right := createTestEntity(entity.KindEnemy, 3.7, -2.5)
	right.Velocity.X = 10
	right.Acceleration.X = 2.5
	sys.Step(right, InputState{}, testDT)
	assert.True(t, right.Collisions.Right)
	assert.Equal(t, -1.0, right.Velocity.X)
	assert.Equal(t, -2.5, right.Acceleration.X)

	left := createTestEntity(entity.KindEnemy, 1.3, -2.5)
	left.Velocity.X = -10
	left.Acceleration.X = -2.5
	sys.Step(left, InputState{}, testDT)
	assert.True(t, left.Collisions.Left)
	assert.Equal(t, 1.0, left.Velocity.X)
	assert.Equal(t, 2.5, left.Acceleration.X)
}

func TestPhysics_OutsideGridIsEmpty(t *testing.T) {
	sys := newTestPhysics(t)
	e := createTestEntity(entity.KindCollectible, 2.5, 3.0)

	assert.NotPanics(t, func() { sys.Step(e, InputState{}, testDT) })
	assert.True(t, e.OutOfWorld)
	assert.False(t, e.Collisions.Any())
	assert.Equal(t, -5.0, e.Acceleration.Y)
}

func TestPhysics_SetGrid(t *testing.T) {
	sys := newTestPhysics(t)
	open, err := entity.NewTileGrid([][]int{{0, 0}, {0, 0}}, 1, []int{1})
	require.NoError(t, err)

	sys.SetGrid(open)

	assert.Equal(t, open, sys.grid)
}

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, 5.0, lerp(10, 0, 0.5))
	assert.Equal(t, 10.0, lerp(10, 0, 0))
	assert.Equal(t, 1.0, clamp(5, -1, 1))
	assert.Equal(t, -1.0, clamp(-5, -1, 1))
	assert.Equal(t, 0.5, clamp(0.5, -1, 1))
	assert.Equal(t, -1.0, sign(-0.1))
	assert.Equal(t, 1.0, sign(0))
}
