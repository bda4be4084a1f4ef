package ecs

import (
	"sync"
)

// ComponentID is a unique identifier for component types
type ComponentID uint32

// storage is the type-erased view the World keeps of every typed store.
type storage interface {
	Name() string
	Has(e Entity) bool
	Remove(e Entity) bool
	Len() int
	Entities() []Entity
}

var (
	registryMu sync.Mutex
	nextID     ComponentID
)

// ComponentType is the typed handle for one component kind. Handles are
// declared once as package variables and used to reach the kind's store in
// any World.
type ComponentType[T any] struct {
	id   ComponentID
	name string
}

// NewComponentType registers a component kind under a display name
func NewComponentType[T any](name string) ComponentType[T] {
	registryMu.Lock()
	defer registryMu.Unlock()
	nextID++
	return ComponentType[T]{id: nextID, name: name}
}

// ID returns the component kind identifier
func (c ComponentType[T]) ID() ComponentID {
	return c.id
}

// Name returns the registered display name
func (c ComponentType[T]) Name() string {
	return c.name
}

// Store returns the live store for this kind, creating it on first request
func (c ComponentType[T]) Store(w *World) *Store[T] {
	if s, ok := w.stores[c.id]; ok {
		return s.(*Store[T])
	}
	s := newStore[T](c.name)
	w.stores[c.id] = s
	return s
}

// Add attaches (or overwrites) the component on an entity
func (c ComponentType[T]) Add(w *World, e Entity, v *T) *T {
	return c.Store(w).Set(e, v)
}

// Get returns the entity's component
func (c ComponentType[T]) Get(w *World, e Entity) (*T, bool) {
	s, ok := w.stores[c.id]
	if !ok {
		return nil, false
	}
	return s.(*Store[T]).Get(e)
}

// Has reports whether the entity has the component
func (c ComponentType[T]) Has(w *World, e Entity) bool {
	s, ok := w.stores[c.id]
	return ok && s.Has(e)
}

// Remove detaches the component from an entity
func (c ComponentType[T]) Remove(w *World, e Entity) bool {
	s, ok := w.stores[c.id]
	return ok && s.Remove(e)
}
