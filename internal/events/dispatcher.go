package events

import (
	"log"
)

// Listener processes one event
type Listener func(Event)

// Dispatcher delivers events to registered listeners synchronously and in
// registration order. A panicking listener is isolated so later listeners
// still run and the triggering mutation is never aborted.
type Dispatcher struct {
	listeners []Listener
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register appends a listener. Listeners cannot be removed; containers own
// their dispatcher and are disposed together with it.
func (d *Dispatcher) Register(listener Listener) {
	if listener == nil {
		return
	}
	d.listeners = append(d.listeners, listener)
}

// Emit delivers the event to every listener in registration order
func (d *Dispatcher) Emit(event Event) {
	for i, listener := range d.listeners {
		d.dispatch(i, listener, event)
	}
}

func (d *Dispatcher) dispatch(index int, listener Listener, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("events: listener %d panicked handling %s: %v", index, event.Type, r)
		}
	}()

	listener(event)
}
