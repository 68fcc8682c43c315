package entity

// Entity is a simulated object: the player, an enemy, a goal or a coin.
// Position is the centre of the bounding box; world Y grows upward.
type Entity struct {
	Kind Kind

	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2
	Friction     Vec2

	Width  float64
	Height float64

	// Collisions and Penetration describe the last fixed step only
	Collisions  Collisions
	Penetration Vec2

	// Transform is the render position, refreshed after each step
	Transform Vec2

	Active     bool
	Alert      bool // enemy is chasing the player
	OutOfWorld bool // a collision sample left the grid
}

// Left returns the X of the left edge
func (e *Entity) Left() float64 {
	return e.Position.X - e.Width/2
}

// Right returns the X of the right edge
func (e *Entity) Right() float64 {
	return e.Position.X + e.Width/2
}

// Top returns the Y of the top edge
func (e *Entity) Top() float64 {
	return e.Position.Y + e.Height/2
}

// Bottom returns the Y of the bottom edge
func (e *Entity) Bottom() float64 {
	return e.Position.Y - e.Height/2
}

// CollidesWith is the loose overlap test used for entity contacts.
// Horizontally one of e's edges must lie within other's span; vertically
// only e.Bottom <= other.Top is required, so an e entirely below other
// still counts as a hit.
func (e *Entity) CollidesWith(other *Entity) bool {
	l, r := other.Left(), other.Right()
	right := e.Right()
	left := e.Left()
	horizontal := (right >= l && right <= r) || (left >= l && left <= r)
	return horizontal && e.Bottom() <= other.Top()
}
