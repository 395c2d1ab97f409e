package sse

import (
	"sync"
)

// Event is a server-sent event delivered to every open stream of an employee.
// Other tabs of the same user receive the same event, which is how stale
// views re-synchronize after a leave request changes status.
type Event struct {
	EmployeeID string
	Name       string
	Data       interface{}
}

// Hub manages per-employee event streams.
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new stream for an employee and returns the event
// channel plus a cleanup function the caller must invoke when the stream ends.
func (h *Hub) Subscribe(employeeID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.streams[employeeID] == nil {
		h.streams[employeeID] = make(map[chan Event]struct{})
	}
	h.streams[employeeID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.streams[employeeID], ch)
		close(ch)
		if len(h.streams[employeeID]) == 0 {
			delete(h.streams, employeeID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all open streams of one employee.
// Slow consumers are skipped rather than blocking the publisher.
func (h *Hub) Publish(employeeID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.streams[employeeID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// PublishToMany fans an event out to several employees.
func (h *Hub) PublishToMany(employeeIDs []string, event Event) {
	for _, id := range employeeIDs {
		eventCopy := event
		eventCopy.EmployeeID = id
		h.Publish(id, eventCopy)
	}
}

// StreamCount returns the number of open streams for an employee.
func (h *Hub) StreamCount(employeeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.streams[employeeID]; ok {
		return len(subs)
	}
	return 0
}
