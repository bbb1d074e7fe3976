package ecs

import "github.com/milk9111/orbitcam/ecs/component"

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], value *T) error {
	if w == nil || value == nil {
		return component.ErrNilComponent
	}
	if !h.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.storage(h.Kind().ID()).Set(e.id(), value)
	return nil
}

// Get returns the entity's component, or false if absent. The pointer
// aliases storage; mutations through it are visible to later reads.
func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.storages[h.Kind().ID()].Get(e.id()).(*T)
	return v, ok
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, h)
	return ok
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.storages[h.Kind().ID()].Remove(e.id())
}

// ForEach calls fn for every entity carrying the component. Adding or
// removing values of the same kind from inside fn is not supported.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	st := w.storages[h.Kind().ID()]
	if st == nil {
		return
	}
	for i, id := range st.denseIDs {
		if v, ok := st.denseValues[i].(*T); ok {
			fn(w.entities.entityFor(id), v)
		}
	}
}

// First returns an arbitrary entity carrying the component, if any exists.
func First[T any](w *World, h component.ComponentHandle[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	st := w.storages[h.Kind().ID()]
	if st == nil || st.Len() == 0 {
		return 0, nil, false
	}
	v, ok := st.denseValues[0].(*T)
	if !ok {
		return 0, nil, false
	}
	return w.entities.entityFor(st.denseIDs[0]), v, true
}
