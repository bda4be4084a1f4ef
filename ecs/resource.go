package ecs

import "reflect"

// Resources are world-wide singletons (turn state, grid geometry, spatial
// indexes). Each type has exactly one slot per World, so there is never a
// second instance to pick between.

// SetResource installs (or replaces) the resource of type T
func SetResource[T any](w *World, v *T) *T {
	if v == nil {
		delete(w.resources, reflect.TypeFor[T]())
		return nil
	}
	w.resources[reflect.TypeFor[T]()] = v
	return v
}

// GetResource returns the resource of type T if one is installed
func GetResource[T any](w *World) (*T, bool) {
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// EnsureResource returns the resource of type T, installing init() first if
// none exists yet.
func EnsureResource[T any](w *World, init func() *T) *T {
	if v, ok := GetResource[T](w); ok {
		return v
	}
	return SetResource(w, init())
}

// RemoveResource drops the resource of type T
func RemoveResource[T any](w *World) {
	delete(w.resources, reflect.TypeFor[T]())
}
