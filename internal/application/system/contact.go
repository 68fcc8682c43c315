package system

import "github.com/younwookim/spaceboy/internal/domain/entity"

// EntityStore is the view of the entity arena the systems need
type EntityStore interface {
	Get(id entity.EntityID) (*entity.Entity, bool)
	Each(fn func(id entity.EntityID, e *entity.Entity))
}

// Contact is a player overlap found during a step
type Contact struct {
	ID   entity.EntityID
	Kind entity.Kind
}

// ContactSystem finds the entities the player is touching
type ContactSystem struct {
	found []Contact
}

// NewContactSystem creates a new contact system
func NewContactSystem() *ContactSystem {
	return &ContactSystem{found: make([]Contact, 0, 8)}
}

// Resolve returns the active entities the player collides with, in arena
// order. The returned slice is reused by the next call.
func (s *ContactSystem) Resolve(playerID entity.EntityID, store EntityStore) []Contact {
	s.found = s.found[:0]

	player, ok := store.Get(playerID)
	if !ok || !player.Active {
		return s.found
	}

	store.Each(func(id entity.EntityID, e *entity.Entity) {
		if id == playerID || !e.Active {
			return
		}
		if player.CollidesWith(e) {
			s.found = append(s.found, Contact{ID: id, Kind: e.Kind})
		}
	})
	return s.found
}
