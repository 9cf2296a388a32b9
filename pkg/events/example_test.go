package events_test

import (
	"fmt"

	"github.com/parley-go/parley/pkg/events"
)

// Three event types, observed selectively below.
type MatchStarted struct{ Number int }
type MatchPaused struct{ Number int }
type MatchEnded struct {
	Number int
	Winner string
}

// announcer watches two of the three match event types.
type announcer struct{}

func (announcer) HandleMatchStarted(e MatchStarted) {
	fmt.Printf("match %d started\n", e.Number)
}

func (announcer) HandleMatchEnded(e MatchEnded) {
	fmt.Printf("match %d won by %s\n", e.Number, e.Winner)
}

// pauseWatcher watches a single event type through the Handler interface.
type pauseWatcher struct{}

var _ events.Handler[MatchPaused] = pauseWatcher{}

func (pauseWatcher) HandleEvent(e MatchPaused) {
	fmt.Printf("match %d paused\n", e.Number)
}

func Example() {
	m := events.NewManager()

	a := &announcer{}
	m.Subscribe(a)

	events.Dispatch(m, MatchStarted{Number: 1})
	events.Dispatch(m, MatchPaused{Number: 1}) // nobody watches this one
	events.Dispatch(m, MatchEnded{Number: 1, Winner: "rosa"})

	m.Unsubscribe(a)
	events.Dispatch(m, MatchStarted{Number: 2})

	// Output:
	// match 1 started
	// match 1 won by rosa
}

func ExampleHandler() {
	m := events.NewManager()
	m.Subscribe(&pauseWatcher{})

	events.Dispatch(m, MatchPaused{Number: 3})

	// Output:
	// match 3 paused
}

func ExampleSupports() {
	a := &announcer{}

	fmt.Println(events.Supports[MatchStarted](a))
	fmt.Println(events.Supports[MatchPaused](a))

	// Output:
	// true
	// false
}
