package sim

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

func TestSnapshotPublisher_Tick(t *testing.T) {
	store := transit.NewStore()
	transit.Bootstrap(store, transit.BootstrapParams{}, time.Unix(1_700_000_000, 0))
	broker := stream.NewBroker(16, 16, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = broker.Run(ctx) }()
	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	mock := clock.NewMock()
	mock.Set(time.Unix(1_700_000_000, 0))
	NewSnapshotPublisher(store, broker, mock).Tick(ctx)

	ev := recvEvent(t, sub)
	require.Equal(t, stream.EventBuses, ev.Type)
	payload, ok := ev.Data.(stream.BusesPayload)
	require.True(t, ok, "payload should be a stream.BusesPayload")

	assert.InDelta(t, transit.EpochSeconds(mock.Now()), payload.TS, 1e-6)
	require.Len(t, payload.Buses, 2)
	assert.Equal(t, "B1", payload.Buses[0].ID)
	assert.Equal(t, "B2", payload.Buses[1].ID)
	for _, b := range payload.Buses {
		assert.NotNil(t, b.NextStopID)
		assert.NotNil(t, b.ETANextStopS)
	}
}
