package server

import (
	"encoding/json"
	"sync"
)

// AttemptEvent is pushed to listeners of an attempt after every change.
type AttemptEvent struct {
	Type    string       `json:"type"`
	Attempt *AttemptView `json:"attempt,omitempty"`
}

const (
	eventUpdated   = "updated"
	eventDiscarded = "discarded"
)

// Broker is an in-process pub/sub for attempt events, keyed by attempt ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the attempt.
func (b *Broker) Subscribe(attemptID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[attemptID] == nil {
		b.subs[attemptID] = make(map[chan []byte]struct{})
	}
	b.subs[attemptID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(attemptID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[attemptID], ch)
	if len(b.subs[attemptID]) == 0 {
		delete(b.subs, attemptID)
	}
	b.mu.Unlock()
}

// Publish sends event to every subscriber of the attempt. Slow subscribers
// miss events rather than block the publisher.
func (b *Broker) Publish(attemptID string, event AttemptEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[attemptID] {
		select {
		case ch <- data:
		default:
		}
	}
	b.mu.RUnlock()
}
