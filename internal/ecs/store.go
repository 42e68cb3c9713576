package ecs

import "fmt"

// Store is a container for one component type.
// Iteration follows insertion order so simulations stay deterministic.
type Store[T any] struct {
	world      *World
	components map[Entity]T
	entities   []Entity
}

// NewStore creates a component store and registers it with w.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{
		world:      w,
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 64),
	}
	w.register(s)
	return s
}

// Set inserts or updates the component of e.
// Panics if e is not alive.
func (s *Store[T]) Set(e Entity, val T) {
	if !s.world.Alive(e) {
		panic(fmt.Sprintf("ecs: set component on dead entity %v", e))
	}
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component of e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// MustGet retrieves the component of e and panics if it is missing.
func (s *Store[T]) MustGet(e Entity) T {
	val, ok := s.Get(e)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %v has no %T component", e, val))
	}
	return val
}

// Has checks if e has this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component of e, if any.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, other := range s.entities {
		if other == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities returns a copy of all entities with this component, in insertion order.
func (s *Store[T]) Entities() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len returns the number of entities with this component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}
