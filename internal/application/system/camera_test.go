package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/spaceboy/internal/domain/entity"
)

func TestCamera_Follow(t *testing.T) {
	tests := []struct {
		name       string
		target     entity.Vec2
		worldWidth float64
		wantX      float64
		wantY      float64
	}{
		{"clamped left", entity.Vec2{X: 3, Y: -21}, 90, 10, -19},
		{"follows in middle", entity.Vec2{X: 45.5, Y: -10}, 90, 45.5, -8},
		{"clamped right", entity.Vec2{X: 88, Y: -21}, 90, 80, -19},
		{"narrow world is centred", entity.Vec2{X: 2, Y: 0}, 12, 6, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(10, 2)

			cam.Follow(tt.target, tt.worldWidth)

			assert.Equal(t, tt.wantX, cam.X)
			assert.Equal(t, tt.wantY, cam.Y)
		})
	}
}

func TestCamera_ToScreen(t *testing.T) {
	cam := NewCamera(10, 2)
	cam.X, cam.Y = 10, -19

	sx, sy := cam.ToScreen(entity.Vec2{X: 10, Y: -19}, 16, 320, 240)
	assert.Equal(t, 160.0, sx)
	assert.Equal(t, 120.0, sy)

	sx, sy = cam.ToScreen(entity.Vec2{X: 11, Y: -20}, 16, 320, 240)
	assert.Equal(t, 176.0, sx)
	assert.Equal(t, 136.0, sy, "lower in the world is further down the screen")
}
