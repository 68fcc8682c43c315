// Package ecs stores simulated entities in a slot arena addressed by stable IDs.
package ecs

import "github.com/younwookim/spaceboy/internal/domain/entity"

// Arena holds entities in contiguous slots. Released slots go on a free
// list and are handed out again by Spawn, most recently released first.
// Pointers returned by Get stay valid until the next Spawn.
type Arena struct {
	slots []entity.Entity
	live  []bool
	free  []entity.EntityID
	count int
}

// NewArena creates an empty arena with room for capacity entities
func NewArena(capacity int) *Arena {
	return &Arena{
		slots: make([]entity.Entity, 0, capacity),
		live:  make([]bool, 0, capacity),
	}
}

// Spawn stores e and returns its ID
func (a *Arena) Spawn(e entity.Entity) entity.EntityID {
	a.count++
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[id] = e
		a.live[id] = true
		return id
	}

	id := entity.EntityID(len(a.slots))
	a.slots = append(a.slots, e)
	a.live = append(a.live, true)
	return id
}

// Release frees the slot. Returns false if the ID was not live.
func (a *Arena) Release(id entity.EntityID) bool {
	if !a.Alive(id) {
		return false
	}
	a.live[id] = false
	a.slots[id] = entity.Entity{}
	a.free = append(a.free, id)
	a.count--
	return true
}

// Alive reports whether id refers to a live slot
func (a *Arena) Alive(id entity.EntityID) bool {
	return int(id) < len(a.live) && a.live[id]
}

// Get returns the entity stored under id
func (a *Arena) Get(id entity.EntityID) (*entity.Entity, bool) {
	if !a.Alive(id) {
		return nil, false
	}
	return &a.slots[id], true
}

// Each calls fn for every live entity in ascending ID order.
// fn may release the entity it is given but must not spawn.
func (a *Arena) Each(fn func(id entity.EntityID, e *entity.Entity)) {
	for i := range a.slots {
		if a.live[i] {
			fn(entity.EntityID(i), &a.slots[i])
		}
	}
}

// Len returns the number of live entities
func (a *Arena) Len() int {
	return a.count
}

// Cap returns the number of slots, live or free
func (a *Arena) Cap() int {
	return len(a.slots)
}

// Reset drops every entity and slot
func (a *Arena) Reset() {
	a.slots = a.slots[:0]
	a.live = a.live[:0]
	a.free = a.free[:0]
	a.count = 0
}
