// internal/event/event.go
package event

import "sync"

// EventType is the kind of an event.
type EventType string

// Event carries a type and optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans events out to listeners subscribed by type.
// It is safe for concurrent use; listeners run on the dispatching goroutine.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
// Listeners are compared with ==, so pointer receivers are expected.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			// Новый срез, чтобы не портить копию у идущего Dispatch.
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			next = append(next, listeners[i+1:]...)
			if len(next) == 0 {
				delete(d.listeners, eventType)
			} else {
				d.listeners[eventType] = next
			}
			return
		}
	}
}

// Dispatch delivers event to every listener subscribed to its type,
// in subscription order.
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	listeners := d.listeners[event.Type]
	d.mu.RUnlock()

	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}

// Count returns the number of listeners subscribed to eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[eventType])
}
