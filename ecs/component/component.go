// Package component defines the component kinds attached to entities. Each
// component lives in its own file with a package-level handle, e.g.
// component.TransformComponent.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// ComponentID identifies a component kind at runtime.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentHandle is the typed handle systems use to read and write one
// component kind.
type ComponentHandle[T any] struct {
	id ComponentID
}

// NewComponent registers a new component kind.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

// ID returns the runtime id of the handle's kind.
func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

// Valid reports whether the handle was created through NewComponent.
func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}
