package events

// Handler is implemented by observers that receive events of type E.
//
// It is the capability declaration for the common case of an observer
// watching a single event type. Observers watching several types declare one
// Handle-prefixed method per type instead, as described in the package
// documentation. Both forms are probed by Dispatch; a type may freely mix
// them as long as no event type ends up with two handler methods.
type Handler[E any] interface {
	HandleEvent(event E)
}

// Supports reports whether observer would receive events of type E if it
// were subscribed. It runs the same capability probe Dispatch runs per
// registry entry: an interface assertion against Handler[E] first, then a
// lookup in the observer type's handler method table.
func Supports[E any](observer any) bool {
	if _, ok := observer.(Handler[E]); ok {
		return true
	}
	return methodFor(observer, staticType[E]()) >= 0
}
