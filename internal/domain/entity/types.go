package entity

import (
	"errors"
	"fmt"
	"strings"
)

// EntityID is the arena slot index of an entity
type EntityID uint32

// Kind tags the behaviour an entity gets from the systems
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindGoal
	KindCollectible
)

// ErrUnknownKind is returned by ParseKind for names it does not recognise
var ErrUnknownKind = errors.New("unknown entity kind")

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindGoal:
		return "Goal"
	case KindCollectible:
		return "Collectible"
	default:
		return "Unknown"
	}
}

// ParseKind maps a level object type name to a Kind.
// Matching is case-insensitive and "coin" is accepted for collectibles.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "player":
		return KindPlayer, nil
	case "enemy":
		return KindEnemy, nil
	case "goal":
		return KindGoal, nil
	case "coin", "collectible":
		return KindCollectible, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Collisions holds the tile contacts found during the current step
type Collisions struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// Any reports whether any side touched a solid tile
func (c Collisions) Any() bool {
	return c.Top || c.Bottom || c.Left || c.Right
}
