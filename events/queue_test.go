package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/chromebar/constants"
)

// TestQueueFIFOOrder verifies events come out in push order
func TestQueueFIFOOrder(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(Event{Type: EventScroll, Payload: &ScrollPayload{Offset: 1}})
	eq.Push(Event{Type: EventScroll, Payload: &ScrollPayload{Offset: 2}})
	eq.Push(Event{Type: EventPointerMove, Payload: &PointerMovePayload{Y: 5}})

	got := eq.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	if got[0].Payload.(*ScrollPayload).Offset != 1 {
		t.Error("Expected first pushed event first")
	}
	if got[2].Type != EventPointerMove {
		t.Errorf("Expected PointerMove last, got %v", got[2].Type)
	}
}

// TestQueueConsumeEmpty verifies consuming an empty queue returns nil
func TestQueueConsumeEmpty(t *testing.T) {
	eq := NewEventQueue()
	if got := eq.Consume(); got != nil {
		t.Errorf("Expected nil from empty queue, got %d events", len(got))
	}

	eq.Push(Event{Type: EventBarShown})
	eq.Consume()
	if got := eq.Consume(); got != nil {
		t.Errorf("Expected nil after drain, got %d events", len(got))
	}
}

// TestQueueOverflowDropsOldest verifies the ring overwrites the oldest
// events when producers outrun the consumer
func TestQueueOverflowDropsOldest(t *testing.T) {
	eq := NewEventQueue()

	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		eq.Push(Event{Type: EventScroll, Payload: &ScrollPayload{Offset: i}})
	}

	got := eq.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", constants.EventQueueSize, len(got))
	}
	first := got[0].Payload.(*ScrollPayload).Offset
	if first != 10 {
		t.Errorf("Expected oldest surviving event to be offset 10, got %d", first)
	}
	last := got[len(got)-1].Payload.(*ScrollPayload).Offset
	if last != total-1 {
		t.Errorf("Expected newest event offset %d, got %d", total-1, last)
	}
}

// TestQueueConcurrentProducers verifies no events are lost under concurrent
// pushes that stay within capacity
func TestQueueConcurrentProducers(t *testing.T) {
	eq := NewEventQueue()

	const producers = 8
	const perProducer = 16 // 128 total, within capacity

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				eq.Push(Event{Type: EventScroll})
			}
		}()
	}
	wg.Wait()

	got := eq.Consume()
	if len(got) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(got))
	}
}
