package events

import "reflect"

// Registry is the ordered collection of observer handles behind a Manager.
// Implementations must preserve insertion order, keep duplicates, and remove
// by first identity match. The Manager does all locking, so implementations
// need none of their own.
type Registry interface {
	// Append adds an observer at the end of the order
	Append(observer any)

	// Remove deletes the first entry identical to observer and reports
	// whether one was found
	Remove(observer any) bool

	// Len returns the number of registered observers
	Len() int

	// Range calls fn for each observer in order until fn returns false
	Range(fn func(observer any) bool)

	// Clear removes all observers
	Clear()
}

// sliceRegistry is the default Registry
type sliceRegistry struct {
	observers []any
}

func newSliceRegistry() *sliceRegistry {
	return &sliceRegistry{}
}

func (r *sliceRegistry) Append(observer any) {
	r.observers = append(r.observers, observer)
}

func (r *sliceRegistry) Remove(observer any) bool {
	for i, existing := range r.observers {
		if !identical(existing, observer) {
			continue
		}
		// Splice out to keep the remaining order intact
		r.observers = append(r.observers[:i], r.observers[i+1:]...)
		return true
	}
	return false
}

func (r *sliceRegistry) Len() int {
	return len(r.observers)
}

func (r *sliceRegistry) Range(fn func(observer any) bool) {
	for _, observer := range r.observers {
		if !fn(observer) {
			return
		}
	}
}

func (r *sliceRegistry) Clear() {
	r.observers = nil
}

// identical reports whether two handles hold the same observer. Handles whose
// values do not support == never match anything; comparing those directly
// would panic. The check is per value, not per type: a comparable struct type
// can still carry a func or slice in an interface field.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
