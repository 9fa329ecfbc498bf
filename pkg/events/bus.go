// Package events is a small typed publish/subscribe bus. It replaces
// ambient broadcast signalling between application regions with explicit
// message passing: publishers emit typed payloads on named topics,
// subscribers receive them synchronously in subscription order.
package events

import "sync"

// Topic names for the application's cross-component signals
const (
	TopicHubSelected   = "hub.selected"
	TopicDatasetLoaded = "dataset.loaded"
)

// HubSelected is published when a hub becomes the active origin
type HubSelected struct {
	HubID int64
}

// DatasetLoaded is published after a dataset ingest completes
type DatasetLoaded struct {
	DatasetID string
	RowCount  int
}

// Handler receives published payloads for one topic
type Handler func(payload interface{})

// Bus dispatches typed payloads to topic subscribers. Dispatch is
// synchronous: Publish returns after every subscriber has run. Safe for
// concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic and returns an unsubscribe
// function
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], h)
	idx := len(b.handlers[topic]) - 1

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		hs := b.handlers[topic]
		if idx < len(hs) && hs[idx] != nil {
			hs[idx] = nil
		}
	}
}

// Publish delivers payload to every live subscriber of topic, in
// subscription order
func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[topic]))
	copy(hs, b.handlers[topic])
	b.mu.RUnlock()

	for _, h := range hs {
		if h != nil {
			h(payload)
		}
	}
}
