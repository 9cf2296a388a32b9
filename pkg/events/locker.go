package events

//go:generate mockgen -destination=mock/mock_locker.go -package=mockevents sync Locker

// NopLocker is a sync.Locker that does nothing. Installing it through
// ManagerConfig removes all synchronization from a Manager, which is only
// safe when every use of the manager happens on a single goroutine.
// NewSingleThreadedManager is shorthand for exactly that.
type NopLocker struct{}

func (NopLocker) Lock()   {}
func (NopLocker) Unlock() {}
