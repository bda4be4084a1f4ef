package ecs

import "reflect"

// World manages all entities, components, resources and systems
type World struct {
	entities entityStore
	// One typed store per component kind
	stores map[ComponentID]storage
	// Singletons keyed by their Go type
	resources map[reflect.Type]any
	// Systems run in registration order; the order is part of the game rules
	systems []System
	events  EventQueue
	frame   uint64
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		stores:    make(map[ComponentID]storage),
		resources: make(map[reflect.Type]any),
		systems:   make([]System, 0),
	}
}

// CreateEntity allocates a new entity handle
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of the entity and retires the handle.
// It returns false for handles that are not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still valid
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.entities.alive
}

// EntitiesWith returns the entities that have every listed component, in the
// insertion order of the first kind's store.
func (w *World) EntitiesWith(ids ...ComponentID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	first, ok := w.stores[ids[0]]
	if !ok || first.Len() == 0 {
		return nil
	}
	ents := first.Entities()
	out := ents[:0]
	for _, e := range ents {
		if w.hasAll(e, ids[1:]) {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) hasAll(e Entity, ids []ComponentID) bool {
	for _, id := range ids {
		s, ok := w.stores[id]
		if !ok || !s.Has(e) {
			return false
		}
	}
	return true
}

// HasComponent checks if an entity has a component by id
func (w *World) HasComponent(e Entity, id ComponentID) bool {
	s, ok := w.stores[id]
	return ok && s.Has(e)
}

// AddSystem appends a system to the update order
func (w *World) AddSystem(system System) {
	if system == nil {
		return
	}
	w.systems = append(w.systems, system)
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// Update runs every system once, in registration order, then swaps the
// event buffers for the next frame.
func (w *World) Update(dt float64) {
	w.events.begin()
	for _, system := range w.systems {
		system.Update(w, dt)
	}
	w.events.end()
	w.frame++
}

// Frame returns the number of completed Update calls
func (w *World) Frame() uint64 {
	return w.frame
}

// Events returns the world event queue
func (w *World) Events() *EventQueue {
	return &w.events
}

// Emit queues an event; during Update it becomes visible next frame
func (w *World) Emit(event Event) {
	w.events.Push(event)
}

// EmitNow hands an event to the systems that still run in this frame
func (w *World) EmitNow(event Event) {
	w.events.PushNow(event)
}
