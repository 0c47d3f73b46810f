// Package events carries the refresh broadcast signals that tell active
// viewers to re-fetch after a mutation.
package events

import "sync"

// Kind identifies which site document changed.
type Kind string

const (
	KindContentUpdated Kind = "content_updated"
	KindGalleryUpdated Kind = "gallery_updated"
)

// Event is one broadcast signal. Only the kind is carried; subscribers
// re-fetch the full document from the API.
type Event struct {
	Kind Kind `json:"kind"`
}

// Bus is an in-process fan-out with explicit subscriber registration.
// Each subscriber gets its own buffered channel; Publish never blocks and
// drops events to subscribers whose buffer is full.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	next   int
	buffer int
}

// NewBus creates a bus with the given per-subscriber buffer size.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 1
	}
	return &Bus{subs: make(map[int]chan Event), buffer: buffer}
}

// Subscribe registers a new subscriber and returns its channel along with a
// cancel function. Cancel closes the channel and must be called exactly once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan Event, b.buffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers evt to every subscriber without blocking and returns the
// number of subscribers that received it.
func (b *Bus) Publish(evt Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	delivered := 0
	for _, ch := range b.subs {
		select {
		case ch <- evt:
			delivered++
		default:
		}
	}
	return delivered
}

// SubscriberCount reports the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
