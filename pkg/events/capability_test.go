package events_test

import (
	"testing"

	"github.com/parley-go/parley/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupports_HandlerInterface(t *testing.T) {
	assert.True(t, events.Supports[ping](&pingRecorder{}))
	assert.False(t, events.Supports[pong](&pingRecorder{}))
}

func TestSupports_HandleMethods(t *testing.T) {
	d := &dualRecorder{}

	assert.True(t, events.Supports[ping](d))
	assert.True(t, events.Supports[pong](d))
	assert.False(t, events.Supports[quiet](d))
}

func TestSupports_NoCapabilities(t *testing.T) {
	assert.False(t, events.Supports[ping](struct{}{}))
	assert.False(t, events.Supports[ping](nil))
	assert.False(t, events.Supports[ping](42))
}

func TestSupports_IgnoresOtherMethodShapes(t *testing.T) {
	o := &shapelyObserver{}

	// Only Handle-prefixed methods with one non-variadic parameter and no
	// results count
	assert.True(t, events.Supports[ping](o))
	assert.False(t, events.Supports[pong](o))
	assert.False(t, events.Supports[quiet](o))
	assert.False(t, events.Supports[[]ping](o))
}

func TestDispatch_MultiCapabilityObserver(t *testing.T) {
	m := events.NewManager()

	d := &dualRecorder{}
	m.Subscribe(d)

	events.Dispatch(m, ping{n: 1})
	events.Dispatch(m, pong{n: 2})
	events.Dispatch(m, quiet{})

	require.Len(t, d.pings, 1)
	require.Len(t, d.pongs, 1)
	assert.Equal(t, 1, d.pings[0].n)
	assert.Equal(t, 2, d.pongs[0].n)
}

func TestDispatch_MixedDeclarations(t *testing.T) {
	m := events.NewManager()

	r := &mixedRecorder{}
	m.Subscribe(r)

	events.Dispatch(m, ping{n: 1})
	events.Dispatch(m, ping{n: 2})
	events.Dispatch(m, pong{n: 3})

	// The interface fast path and the method table must not double deliver
	assert.Len(t, r.pings, 2)
	assert.Len(t, r.pongs, 1)
}

func TestDispatch_AmbiguousCapabilityPanics(t *testing.T) {
	m := events.NewManager()
	m.Subscribe(&ambiguousObserver{})

	assert.Panics(t, func() {
		events.Dispatch(m, quiet{})
	})
}

func TestDispatch_AmbiguityDetectedOnTableBuild(t *testing.T) {
	m := events.NewManager()

	r := &facetShadowObserver{}
	m.Subscribe(r)

	// HandleEvent answers ping dispatches before any method table exists,
	// so the conflicting HandlePing stays invisible and nothing doubles up
	assert.NotPanics(t, func() {
		events.Dispatch(m, ping{n: 1})
	})
	assert.Equal(t, 1, r.pings)

	// The first dispatch that needs the method table finds the conflict
	assert.Panics(t, func() {
		events.Dispatch(m, pong{n: 2})
	})
}

func TestDispatch_VariadicMethodIgnored(t *testing.T) {
	m := events.NewManager()

	lookalike := &shapelyObserver{}
	batches := &batchRecorder{}
	m.Subscribe(lookalike)
	m.Subscribe(batches)

	// HandleMany takes ...ping, not []ping; it must not receive the slice
	assert.NotPanics(t, func() {
		events.Dispatch(m, []ping{{n: 1}, {n: 2}})
	})
	require.Len(t, batches.received, 1)
	assert.Len(t, batches.received[0], 2)
}

func TestDispatch_StaticInterfaceType(t *testing.T) {
	m := events.NewManager()

	bySignal := &signalRecorder{}
	byKlaxon := &klaxonRecorder{}
	m.Subscribe(bySignal)
	m.Subscribe(byKlaxon)

	// Explicit instantiation dispatches on the interface type itself
	events.Dispatch[signal](m, klaxon{v: 11})

	require.Len(t, bySignal.received, 1)
	assert.Equal(t, 11, bySignal.received[0].Volume())
	assert.Empty(t, byKlaxon.received)

	// Inferred concrete dispatch reaches the concrete handler instead
	events.Dispatch(m, klaxon{v: 3})
	assert.Len(t, bySignal.received, 1)
	assert.Len(t, byKlaxon.received, 1)
}

func TestDispatch_NilInterfaceEvent(t *testing.T) {
	m := events.NewManager()

	r := &signalCounter{}
	m.Subscribe(r)

	assert.NotPanics(t, func() {
		events.Dispatch[signal](m, nil)
	})
	assert.Equal(t, 1, r.calls)
}

// Test events
type quiet struct{}

type signal interface{ Volume() int }

type klaxon struct{ v int }

func (k klaxon) Volume() int { return k.v }

// Test helper: two capabilities declared through named handler methods
type dualRecorder struct {
	pings []ping
	pongs []pong
}

func (r *dualRecorder) HandlePing(e ping) { r.pings = append(r.pings, e) }
func (r *dualRecorder) HandlePong(e pong) { r.pongs = append(r.pongs, e) }

// Test helper: mixes the Handler interface with a named handler method
type mixedRecorder struct {
	pings []ping
	pongs []pong
}

func (r *mixedRecorder) HandleEvent(e ping) { r.pings = append(r.pings, e) }
func (r *mixedRecorder) HandlePong(e pong)  { r.pongs = append(r.pongs, e) }

// Test helper: only HandlePing has the shape of a handler method
type shapelyObserver struct{}

func (*shapelyObserver) HandlePing(ping)        {}
func (*shapelyObserver) HandlePong(pong) error  { return nil }
func (*shapelyObserver) HandleBoth(ping, quiet) {}
func (*shapelyObserver) HandleMany(...ping)     {}
func (*shapelyObserver) Handle()                {}
func (*shapelyObserver) OnQuiet(quiet)          {}

// Test helper: receives slices of pings as single event values
type batchRecorder struct {
	received [][]ping
}

func (r *batchRecorder) HandleEvent(e []ping) { r.received = append(r.received, e) }

// Test helper: illegal observer with two handlers for one event type
type ambiguousObserver struct{}

func (*ambiguousObserver) HandleHush(quiet)    {}
func (*ambiguousObserver) HandleSilence(quiet) {}

// Test helper: the Handler interface and a named method both claim ping
type facetShadowObserver struct{ pings int }

func (r *facetShadowObserver) HandleEvent(ping) { r.pings++ }
func (r *facetShadowObserver) HandlePing(ping)  { r.pings++ }

// Test helper: handles the signal interface type itself
type signalRecorder struct {
	received []signal
}

func (r *signalRecorder) HandleEvent(e signal) { r.received = append(r.received, e) }

// Test helper: records concrete klaxon events
type klaxonRecorder struct {
	received []klaxon
}

func (r *klaxonRecorder) HandleEvent(e klaxon) { r.received = append(r.received, e) }

// Test helper: interface capability declared through a named handler method
type signalCounter struct{ calls int }

func (r *signalCounter) HandleSignal(signal) { r.calls++ }
