package stream

import (
	"context"

	"go.uber.org/zap"
)

// DefaultIngestCapacity bounds the shared ingestion queue.
const DefaultIngestCapacity = 1000

// DefaultSubscriberCapacity bounds each subscriber's output queue.
const DefaultSubscriberCapacity = 100

// Broker owns the ingestion queue and the fan-out loop. Producers publish
// into the ingestion queue in publish order; a single drain goroutine copies
// each event to every subscriber with a non-blocking send.
type Broker struct {
	in       chan Event
	registry *Registry
	subCap   int
	log      *zap.Logger
}

// NewBroker returns a broker with the given queue capacities; values <= 0
// fall back to the defaults.
func NewBroker(ingestCapacity, subscriberCapacity int, log *zap.Logger) *Broker {
	if ingestCapacity <= 0 {
		ingestCapacity = DefaultIngestCapacity
	}
	if subscriberCapacity <= 0 {
		subscriberCapacity = DefaultSubscriberCapacity
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Broker{
		in:       make(chan Event, ingestCapacity),
		registry: NewRegistry(),
		subCap:   subscriberCapacity,
		log:      log,
	}
}

// Registry returns the subscriber registry.
func (b *Broker) Registry() *Registry { return b.registry }

// Subscribe registers a new subscriber queue.
func (b *Broker) Subscribe() *Subscriber {
	return b.registry.Add(b.subCap)
}

// Unsubscribe deregisters sub. Idempotent.
func (b *Broker) Unsubscribe(sub *Subscriber) {
	b.registry.Remove(sub)
}

// Publish enqueues ev on the ingestion queue, blocking while the queue is
// full. Returns ctx.Err() when the context ends first.
func (b *Broker) Publish(ctx context.Context, ev Event) error {
	select {
	case b.in <- ev:
		publishedCounter.WithLabelValues(ev.Type).Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the ingestion queue until ctx ends, copying each event to every
// registered subscriber. A full subscriber queue drops the event for that
// subscriber only; the drop is counted, never surfaced to the publisher.
func (b *Broker) Run(ctx context.Context) error {
	b.log.Info("broker running")
	for {
		select {
		case <-ctx.Done():
			b.log.Info("broker stopping")
			return ctx.Err()
		case ev := <-b.in:
			b.dispatch(ev)
		}
	}
}

func (b *Broker) dispatch(ev Event) {
	for _, sub := range b.registry.Snapshot() {
		select {
		case sub.ch <- ev:
		default:
			droppedCounter.WithLabelValues(ev.Type).Inc()
		}
	}
}
