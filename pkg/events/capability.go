package events

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Handler methods are discovered by name and shape: exported, name prefixed
// with Handle, one non-variadic parameter, no results.
const handlerPrefix = "Handle"

// capabilityCache maps an observer's concrete type to its handler method
// table. Building a table walks the full method set once; every later probe
// of the same type is a map lookup.
var capabilityCache sync.Map // reflect.Type -> map[reflect.Type]int

// staticType returns the reflect.Type of the type parameter E itself. When E
// is an interface type this is the interface type, not the dynamic type of
// any value inside it.
func staticType[E any]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// handlerFor probes a single registry entry for a handler accepting E. The
// fast path is a plain interface assertion and involves no reflection; the
// fallback serves observers that declare their capabilities as Handle-prefixed
// methods.
func handlerFor[E any](observer any) (func(E), bool) {
	if h, ok := observer.(Handler[E]); ok {
		return h.HandleEvent, true
	}
	idx := methodFor(observer, staticType[E]())
	if idx < 0 {
		return nil, false
	}
	method := reflect.ValueOf(observer).Method(idx)
	return func(event E) {
		// Going through the address keeps the argument typed as E even when
		// E is an interface type holding nil.
		method.Call([]reflect.Value{reflect.ValueOf(&event).Elem()})
	}, true
}

// methodFor returns the index of observer's handler method for eventType, or
// -1 if its type declares none.
func methodFor(observer any, eventType reflect.Type) int {
	t := reflect.TypeOf(observer)
	if t == nil {
		return -1
	}
	idx, ok := capabilityTable(t)[eventType]
	if !ok {
		return -1
	}
	return idx
}

// capabilityTable returns the handler method table for an observer type,
// building and caching it on first use. It panics if the type declares two
// handler methods for the same event type, since delivery would otherwise
// depend on method name order.
func capabilityTable(t reflect.Type) map[reflect.Type]int {
	if cached, ok := capabilityCache.Load(t); ok {
		return cached.(map[reflect.Type]int)
	}

	table := make(map[reflect.Type]int)
	names := make(map[reflect.Type]string)
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !strings.HasPrefix(m.Name, handlerPrefix) {
			continue
		}
		// The method type carries the receiver as the first input. Variadic
		// methods are excluded; reflect.Call would reject the slice argument.
		if m.Type.IsVariadic() || m.Type.NumIn() != 2 || m.Type.NumOut() != 0 {
			continue
		}
		eventType := m.Type.In(1)
		if prev, ok := names[eventType]; ok {
			panic(fmt.Sprintf("events: %s declares both %s and %s for event type %s", t, prev, m.Name, eventType))
		}
		names[eventType] = m.Name
		table[eventType] = m.Index
	}

	cached, _ := capabilityCache.LoadOrStore(t, table)
	return cached.(map[reflect.Type]int)
}
