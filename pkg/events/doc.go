/*
Package events implements a typed in-process observer dispatcher.

Observers register once on a Manager and declare, through their method set,
which event types they want to receive. Publishers call Dispatch with a plain
event value. The manager walks its registry in subscription order, probes each
observer for a handler matching the event's type, and invokes the matches
synchronously on the caller's goroutine. Events are ordinary Go values. They
need no base type, no registration step, and the manager never retains or
mutates them.

# Declaring Capabilities

An observer that handles a single event type implements the Handler interface
for it:

	type Greeter struct{}

	func (Greeter) HandleEvent(e UserJoined) {
		fmt.Println("welcome,", e.Name)
	}

Go methods cannot be overloaded, so an observer that handles several event
types declares one exported method per type. Any method whose name starts with
Handle, takes exactly one non-variadic parameter, and returns nothing marks a
capability for its parameter type:

	type Scoreboard struct{ wins map[string]int }

	func (s *Scoreboard) HandleAttackLanded(e AttackLanded)   { ... }
	func (s *Scoreboard) HandleFighterDowned(e FighterDowned) { ... }

Methods that do not fit the shape are ignored. Declaring two handler methods
for the same event type is a programming error and panics the first time the
dispatcher builds the type's method table. An observer that answers a dispatch
through the Handler interface is not inspected further, so the conflict
surfaces only once some other event type reaches the observer. Supports
reports whether a given observer would receive a given event type.

Observers with pointer receivers must be subscribed as pointers, both so their
handler methods are visible and so Unsubscribe can match them by identity.

# Dispatching

Dispatch selects handlers by the static type of its event argument, which is
normally inferred:

	events.Dispatch(m, AttackLanded{Attacker: "lyra", Damage: 7})

When the argument is an interface value, handlers are matched against the
interface type itself, not the dynamic type inside it. Dispatching a value of
interface type Shape reaches HandleEvent(Shape), never HandleEvent(Circle).
Instantiate explicitly, as in Dispatch[Shape](m, v), when inference would pick
the wrong type. To route on dynamic types, dispatch the concrete value
instead.

A dispatch that matches no observer does nothing. Duplicate subscriptions
receive the event once per registration, in order.

# Concurrency

A Manager is safe for concurrent use. One lock serializes Subscribe,
Unsubscribe, and Dispatch, and it is held for the whole dispatch pass,
handler invocations included. Two consequences follow:

  - A handler must not call back into its own manager. Subscribe, Unsubscribe,
    or Dispatch from inside a handler deadlocks on the default lock.
  - A slow handler delays every other caller of the manager.

Both constraints can be lifted with ManagerConfig.SnapshotDispatch, which
copies the registry, releases the lock, and then invokes handlers. A pass in
this mode sees the registry as it was when the pass began, and re-entrant
calls are allowed.

Handler panics are not recovered. A panic unwinds out of Dispatch to the
publisher, skips the rest of the pass, and releases the lock on the way out,
so the manager stays usable.

Code that is strictly single threaded can opt out of locking entirely with
NewSingleThreadedManager. Nothing is synchronized in that mode.

# Lifetime

The manager holds plain references and never owns observers. Unsubscribe an
observer before discarding it. There is no finalizer and no automatic cleanup.
*/
package events
