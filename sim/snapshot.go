package sim

import (
	"context"

	"github.com/benbjohnson/clock"

	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

// SnapshotPublisher periodically serializes the current fleet state into a
// buses event. Read-only over the store.
type SnapshotPublisher struct {
	store  *transit.Store
	broker *stream.Broker
	clock  clock.Clock
}

// NewSnapshotPublisher returns a publisher over the given collaborators.
func NewSnapshotPublisher(store *transit.Store, b *stream.Broker, clk clock.Clock) *SnapshotPublisher {
	return &SnapshotPublisher{store: store, broker: b, clock: clk}
}

// Tick publishes one fleet snapshot.
func (p *SnapshotPublisher) Tick(ctx context.Context) {
	payload := stream.BusesPayload{
		TS:    transit.EpochSeconds(p.clock.Now()),
		Buses: p.store.BusSnapshots(),
	}
	_ = p.broker.Publish(ctx, stream.Event{Type: stream.EventBuses, Data: payload})
}
