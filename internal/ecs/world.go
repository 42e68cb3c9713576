// Package ecs is a small entity arena for the game objects on the grid.
//
// Entities are generational ids: the low 32 bits index a slot, the high
// 32 bits count how many times that slot has been reused. A stale id of a
// destroyed object never aliases the object that later reuses its slot.
// Components live in typed Stores registered with the World, so destroying
// an entity removes all of its components at once.
//
// The World is not safe for concurrent use; the game drives it from a
// single goroutine.
package ecs

import "fmt"

// Entity is a generational handle to a game object.
type Entity uint64

// Nil is never returned by Spawn.
const Nil Entity = 0

func makeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index of the entity.
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns how many times the slot had been recycled when e was issued.
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.Index(), e.Generation())
}

// remover is implemented by every Store so the World can drop components of
// destroyed entities.
type remover interface {
	Remove(e Entity)
}

// World owns entity allocation and the registered component stores.
type World struct {
	generations []uint32 // current generation per slot
	alive       []bool
	free        []uint32 // recycled slot indexes, LIFO
	live        int
	stores      []remover
}

// NewWorld creates an empty world. Slot 0 is reserved so that Nil is never alive.
func NewWorld() *World {
	return &World{
		generations: []uint32{0},
		alive:       []bool{false},
	}
}

// Spawn allocates a new entity.
func (w *World) Spawn() Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[idx] = true
	w.live++
	return makeEntity(idx, w.generations[idx])
}

// Despawn destroys e and all of its components.
// Returns false if e was already dead or never existed.
func (w *World) Despawn(e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	idx := e.Index()
	w.alive[idx] = false
	w.generations[idx]++
	w.free = append(w.free, idx)
	w.live--
	return true
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == e.Generation()
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.live
}

func (w *World) register(s remover) {
	w.stores = append(w.stores, s)
}
