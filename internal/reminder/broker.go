package reminder

import (
	"sync"

	"smart-todo/internal/model"
)

const defaultSubscriberBuffer = 16

// Broker fans notifications out to per-user subscribers. Slow subscribers
// miss events instead of blocking the publisher.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[chan model.Notification]struct{}
	buffer int
}

// NewBroker creates a Broker whose subscriber channels hold buffer events.
func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Broker{
		subs:   make(map[string]map[chan model.Notification]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a subscriber for userID. The returned func removes it
// and closes the channel; it is safe to call more than once.
func (b *Broker) Subscribe(userID string) (<-chan model.Notification, func()) {
	ch := make(chan model.Notification, b.buffer)

	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[chan model.Notification]struct{})
	}
	b.subs[userID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[userID], ch)
			if len(b.subs[userID]) == 0 {
				delete(b.subs, userID)
			}
			close(ch)
		})
	}
}

// Publish delivers n to the owner's subscribers and returns how many received it.
func (b *Broker) Publish(n model.Notification) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for ch := range b.subs[n.UserID] {
		select {
		case ch <- n:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribers returns the number of active subscribers for userID.
func (b *Broker) Subscribers(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}
