package stream

import (
	"sync"

	"github.com/google/uuid"
)

// Subscriber is one registered output queue, alive for the lifetime of one
// client connection. The channel is never closed; consumers stop reading
// when their connection context ends and then call Registry.Remove.
type Subscriber struct {
	id string
	ch chan Event
}

// ID returns the subscriber's unique identity.
func (s *Subscriber) ID() string { return s.id }

// Events returns the subscriber's output queue.
func (s *Subscriber) Events() <-chan Event { return s.ch }

// Registry is the live set of subscribers. Add and Remove may run
// concurrently with broker drains; each drain iterates over a snapshot so
// registration churn never races the fan-out.
type Registry struct {
	mu   sync.RWMutex
	subs []*Subscriber
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a new subscriber with the given queue capacity.
func (r *Registry) Add(capacity int) *Subscriber {
	if capacity <= 0 {
		capacity = 1
	}
	sub := &Subscriber{
		id: uuid.NewString(),
		ch: make(chan Event, capacity),
	}
	r.mu.Lock()
	subs := make([]*Subscriber, len(r.subs), len(r.subs)+1)
	copy(subs, r.subs)
	r.subs = append(subs, sub)
	r.mu.Unlock()
	subscriberGauge.Inc()
	return sub
}

// Remove deregisters sub. Removing a subscriber that is not registered is a
// no-op, so Remove is safe to call more than once.
func (r *Registry) Remove(sub *Subscriber) {
	if sub == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.subs {
		if s == sub {
			subs := make([]*Subscriber, 0, len(r.subs)-1)
			subs = append(subs, r.subs[:i]...)
			subs = append(subs, r.subs[i+1:]...)
			r.subs = subs
			subscriberGauge.Dec()
			return
		}
	}
}

// Snapshot returns the current subscriber list. The returned slice is never
// mutated afterwards (copy-on-write), so callers may iterate without a lock.
func (r *Registry) Snapshot() []*Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.subs
}

// Len returns the number of registered subscribers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
