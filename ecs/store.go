package ecs

// Store holds every live instance of one component kind. Components are kept
// as pointers so systems mutate them in place, and iteration follows insertion
// order so that systems walking a store behave the same on every run.
type Store[T any] struct {
	name     string
	index    map[Entity]int
	entities []Entity
	values   []*T
}

func newStore[T any](name string) *Store[T] {
	return &Store[T]{
		name:  name,
		index: make(map[Entity]int),
	}
}

// Name returns the registered component name
func (s *Store[T]) Name() string {
	return s.name
}

// Set inserts or overwrites the component for an entity and returns it
func (s *Store[T]) Set(e Entity, v *T) *T {
	if !e.Valid() || v == nil {
		return v
	}
	if idx, ok := s.index[e]; ok {
		s.values[idx] = v
		return v
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
	return v
}

// Get returns the component for an entity
func (s *Store[T]) Get(e Entity) (*T, bool) {
	idx, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

// Has reports whether the entity has this component
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove deletes the component for an entity, keeping the order of the rest.
func (s *Store[T]) Remove(e Entity) bool {
	idx, ok := s.index[e]
	if !ok {
		return false
	}
	copy(s.entities[idx:], s.entities[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	last := len(s.entities) - 1
	s.values[last] = nil
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
	for i := idx; i < len(s.entities); i++ {
		s.index[s.entities[i]] = i
	}
	return true
}

// Len returns the number of live components
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Entities returns a copy of the entity list in insertion order
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each visits every component in insertion order. It walks a snapshot, so the
// callback may add or remove components of this kind.
func (s *Store[T]) Each(fn func(e Entity, v *T)) {
	if len(s.entities) == 0 {
		return
	}
	ents := s.Entities()
	vals := make([]*T, len(s.values))
	copy(vals, s.values)
	for i, e := range ents {
		fn(e, vals[i])
	}
}

// First returns the earliest inserted component, if any
func (s *Store[T]) First() (Entity, *T, bool) {
	if len(s.entities) == 0 {
		return NilEntity, nil, false
	}
	return s.entities[0], s.values[0], true
}
