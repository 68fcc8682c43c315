package system

import "github.com/younwookim/spaceboy/internal/domain/entity"

// Camera follows a target horizontally within the level bounds and sits a
// fixed distance above it
type Camera struct {
	X, Y float64

	halfWidth float64
	offsetY   float64
}

// NewCamera creates a camera whose view is 2*halfWidth world units wide
func NewCamera(halfWidth, offsetY float64) *Camera {
	return &Camera{halfWidth: halfWidth, offsetY: offsetY}
}

// Follow centres the camera on target, clamped so the view never shows
// past either side of a world worldWidth units wide
func (c *Camera) Follow(target entity.Vec2, worldWidth float64) {
	lo, hi := c.halfWidth, worldWidth-c.halfWidth
	switch {
	case lo > hi:
		c.X = worldWidth / 2
	default:
		c.X = clamp(target.X, lo, hi)
	}
	c.Y = target.Y + c.offsetY
}

// ToScreen converts a world position to screen pixels
func (c *Camera) ToScreen(p entity.Vec2, pixelsPerUnit float64, screenW, screenH int) (float64, float64) {
	sx := (p.X-c.X)*pixelsPerUnit + float64(screenW)/2
	sy := (c.Y-p.Y)*pixelsPerUnit + float64(screenH)/2
	return sx, sy
}
