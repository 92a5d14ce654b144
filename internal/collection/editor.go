// Package collection implements the in-memory record store shared by the
// schedule, notes, files and delivery screens. One generic editor replaces
// the per-screen array handling, with a pluggable validator per record type.
package collection

import (
	"github.com/google/uuid"
)

// Placement controls where Add puts a new record. Lists sorted by recency
// (files, delivery) prepend; chronological lists (schedule, notes) append.
type Placement int

const (
	Append Placement = iota
	Prepend
)

// Editor holds records of type T with stable string ids. All operations are
// synchronous and run on the caller's goroutine; an editor is owned by a
// single screen and is not safe for concurrent use.
type Editor[T any] struct {
	placement Placement
	idOf      func(T) string
	setID     func(*T, string)
	validate  func(*T) error
	newID     func() string

	items []T
}

// New returns an empty editor. idOf and setID expose the record's id field;
// validate may be nil for record types accepted as-is. validate receives a
// pointer so it can also normalize the draft in place.
func New[T any](placement Placement, idOf func(T) string, setID func(*T, string), validate func(*T) error) *Editor[T] {
	return &Editor[T]{
		placement: placement,
		idOf:      idOf,
		setID:     setID,
		validate:  validate,
		newID:     uuid.NewString,
	}
}

// Seed loads records as-is, keeping their ids and the given order.
// Used for the session's initial mock data.
func (e *Editor[T]) Seed(items []T) {
	e.items = append(e.items[:0:0], items...)
}

// Add validates the draft, assigns a fresh id and places the record per the
// editor's placement rule. The stored record is returned.
func (e *Editor[T]) Add(draft T) (T, error) {
	if e.validate != nil {
		if err := e.validate(&draft); err != nil {
			var zero T
			return zero, err
		}
	}
	e.setID(&draft, e.newID())

	if e.placement == Prepend {
		e.items = append([]T{draft}, e.items...)
	} else {
		e.items = append(e.items, draft)
	}
	return draft, nil
}

// Update applies patch to the record with the given id, keeping its
// position. A missing id is a silent no-op so double-invocations from the
// UI are tolerated.
func (e *Editor[T]) Update(id string, patch func(*T)) {
	for i := range e.items {
		if e.idOf(e.items[i]) == id {
			patch(&e.items[i])
			return
		}
	}
}

// Remove deletes the record with the given id. Missing ids are a no-op.
func (e *Editor[T]) Remove(id string) {
	for i := range e.items {
		if e.idOf(e.items[i]) == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}

// Get returns the record with the given id.
func (e *Editor[T]) Get(id string) (T, bool) {
	for i := range e.items {
		if e.idOf(e.items[i]) == id {
			return e.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the records matching pred, in collection order. The
// underlying collection is never mutated; each call produces a fresh slice,
// so independent views can coexist.
func (e *Editor[T]) Filter(pred func(T) bool) []T {
	result := make([]T, 0, len(e.items))
	for _, item := range e.items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// All returns a copy of the collection in its current order.
func (e *Editor[T]) All() []T {
	return append(e.items[:0:0], e.items...)
}

// Len reports the number of records.
func (e *Editor[T]) Len() int {
	return len(e.items)
}

// View is a named, restartable filtered view over an editor. Items
// recomputes against the live collection on every call.
type View[T any] struct {
	editor *Editor[T]
	pred   func(T) bool
}

// NewView binds pred to the editor without evaluating it.
func NewView[T any](e *Editor[T], pred func(T) bool) *View[T] {
	return &View[T]{editor: e, pred: pred}
}

// Items returns the current matches.
func (v *View[T]) Items() []T {
	return v.editor.Filter(v.pred)
}
