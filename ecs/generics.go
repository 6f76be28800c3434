package ecs

import "github.com/milk9111/cityfolio/ecs/component"

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(h.ID(), true).Set(int(e.id()), value)
	return nil
}

// Remove detaches a component. Returns false when the entity had none.
func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(h.ID(), false).Remove(int(e.id()))
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(h.ID(), false).Has(int(e.id()))
}

// Get returns the entity's component, or (nil, false).
func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v := w.store(h.ID(), false).Get(int(e.id()))
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// First returns any single entity carrying the component. Useful for
// singletons like the city or the calendar.
func First[T any](w *World, h component.ComponentHandle[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	s := w.store(h.ID(), false)
	for _, id := range s.Entities() {
		e, ok := liveEntity(w, id)
		if !ok {
			continue
		}
		if v, ok := s.Get(id).(*T); ok {
			return e, v, true
		}
	}
	return 0, nil, false
}

// liveEntity rebuilds the full handle for a stored id, rejecting ids that
// no longer name a live entity.
func liveEntity(w *World, id int) (Entity, bool) {
	if id <= 0 || id > len(w.entities.gens) {
		return 0, false
	}
	e := makeEntity(entityID(id), w.entities.gens[id-1])
	if !w.entities.isAlive(e) {
		return 0, false
	}
	return e, true
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(h.ID(), false)
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e, ok := liveEntity(w, id)
		if !ok {
			continue
		}
		if v, ok := s.Get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ha.ID(), false)
	sb := w.store(hb.ID(), false)
	if sa.Len() > sb.Len() {
		ForEach2(w, hb, ha, func(e Entity, b *B, a *A) { fn(e, a, b) })
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		e, ok := liveEntity(w, id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
