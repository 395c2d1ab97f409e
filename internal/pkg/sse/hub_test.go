package sse

import "testing"

func TestHubPublishReachesAllStreams(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("emp-1")
	defer cleanup2()
	other, cleanupOther := hub.Subscribe("emp-2")
	defer cleanupOther()

	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Name: "leave_request.updated", Data: "x"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			if event.Name != "leave_request.updated" {
				t.Errorf("event name = %q", event.Name)
			}
		default:
			t.Error("stream did not receive the event")
		}
	}

	select {
	case <-other:
		t.Error("event leaked to another employee's stream")
	default:
	}
}

func TestHubCleanupRemovesStream(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	if hub.StreamCount("emp-1") != 1 {
		t.Fatalf("StreamCount = %d, want 1", hub.StreamCount("emp-1"))
	}

	cleanup()
	if hub.StreamCount("emp-1") != 0 {
		t.Errorf("StreamCount = %d after cleanup, want 0", hub.StreamCount("emp-1"))
	}

	// Publishing to a fully unsubscribed employee must not panic.
	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Name: "ping"})
}

func TestHubSkipsSlowConsumers(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	// Fill the buffer past capacity; the publisher must never block.
	for i := 0; i < 20; i++ {
		hub.Publish("emp-1", Event{EmployeeID: "emp-1", Name: "burst"})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("buffered events = %d, want full buffer %d", got, cap(ch))
	}
}
