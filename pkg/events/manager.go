package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// ManagerConfig carries the optional knobs for NewManagerWithConfig. The
// zero value of every field selects the default described on it.
type ManagerConfig struct {
	// Locker guards the registry. Defaults to a new sync.Mutex. NopLocker
	// disables locking for single threaded use.
	Locker sync.Locker

	// Registry is the observer container. Defaults to a slice.
	Registry Registry

	// SnapshotDispatch makes Dispatch copy the registry and release the
	// lock before invoking handlers. Handlers may then call back into the
	// manager; a pass delivers to the observers registered when it began.
	SnapshotDispatch bool

	// Logger receives debug and trace records for subscribe, unsubscribe,
	// and dispatch. The zero value logs nothing.
	Logger zerolog.Logger
}

// Manager owns an ordered registry of observers and delivers dispatched
// events to the ones that can handle them. Create one with NewManager,
// NewSingleThreadedManager, or NewManagerWithConfig; the zero value is not
// usable.
type Manager struct {
	mu       sync.Locker
	registry Registry
	snapshot bool
	log      zerolog.Logger
}

// NewManager creates an empty manager with the default mutex and registry
func NewManager() *Manager {
	return NewManagerWithConfig(nil)
}

// NewSingleThreadedManager creates an empty manager with locking disabled.
// Every use of it must happen on one goroutine.
func NewSingleThreadedManager() *Manager {
	return NewManagerWithConfig(&ManagerConfig{Locker: NopLocker{}})
}

// NewManagerWithConfig creates an empty manager from cfg. A nil cfg is
// equivalent to the zero ManagerConfig.
func NewManagerWithConfig(cfg *ManagerConfig) *Manager {
	if cfg == nil {
		cfg = &ManagerConfig{}
	}

	m := &Manager{
		mu:       cfg.Locker,
		registry: cfg.Registry,
		snapshot: cfg.SnapshotDispatch,
		log:      cfg.Logger,
	}
	if m.mu == nil {
		m.mu = &sync.Mutex{}
	}
	if m.registry == nil {
		m.registry = newSliceRegistry()
	}
	return m
}

// Subscribe appends observer to the registry. Nothing is validated:
// subscribing twice means receiving events twice, and an observer with no
// capabilities simply never receives anything.
func (m *Manager) Subscribe(observer any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registry.Append(observer)
	m.log.Debug().Type("observer", observer).Int("observers", m.registry.Len()).Msg("subscribed observer")
}

// Unsubscribe removes the first registered observer identical to the
// argument. Unsubscribing an observer that is not registered does nothing.
func (m *Manager) Unsubscribe(observer any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.registry.Remove(observer) {
		return
	}
	m.log.Debug().Type("observer", observer).Int("observers", m.registry.Len()).Msg("unsubscribed observer")
}

// Len returns the number of registered observers, duplicates included
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registry.Len()
}

// Clear removes all observers
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registry.Clear()
	m.log.Debug().Msg("cleared all observers")
}

// Dispatch delivers event to every registered observer that handles values
// of type E, in subscription order, synchronously on the calling goroutine.
// Dispatching an event no observer handles does nothing. E is normally
// inferred from the argument; see the package documentation for how
// interface-typed events are matched. Dispatch is a free function rather
// than a method because Go methods cannot introduce type parameters.
//
// Under the default configuration the manager's lock is held for the whole
// pass. A handler panic propagates to the caller and releases the lock on
// the way out.
func Dispatch[E any](m *Manager, event E) {
	if m.snapshot {
		dispatchSnapshot(m, event)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delivered := 0
	m.registry.Range(func(observer any) bool {
		if handle, ok := handlerFor[E](observer); ok {
			delivered++
			handle(event)
		}
		return true
	})
	m.log.Trace().Stringer("event", staticType[E]()).Int("delivered", delivered).Msg("dispatched event")
}

// dispatchSnapshot copies the registry under the lock and probes the copy
// after releasing it, so handlers are free to call back into the manager.
func dispatchSnapshot[E any](m *Manager, event E) {
	m.mu.Lock()
	observers := make([]any, 0, m.registry.Len())
	m.registry.Range(func(observer any) bool {
		observers = append(observers, observer)
		return true
	})
	m.mu.Unlock()

	delivered := 0
	for _, observer := range observers {
		if handle, ok := handlerFor[E](observer); ok {
			delivered++
			handle(event)
		}
	}
	m.log.Trace().Stringer("event", staticType[E]()).Int("delivered", delivered).Msg("dispatched event")
}
