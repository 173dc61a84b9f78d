package sim

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/smartbus/config"
	"github.com/theoremus-urban-solutions/smartbus/forecast"
	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

func TestEngine_RunProducesAllEventTypes(t *testing.T) {
	store := transit.NewStore()
	transit.Bootstrap(store, transit.BootstrapParams{}, time.Unix(1_700_000_000, 0))
	f := forecast.New(0.3)
	broker := stream.NewBroker(1000, 100, nil)

	mock := clock.NewMock()
	mock.Set(time.Unix(1_700_000_000, 0))
	cfg := config.SimConfig{
		MotionIntervalMS:   1000,
		TicketIntervalMS:   2000,
		OptimizeIntervalMS: 5000,
		SnapshotIntervalMS: 1000,
	}
	engine := NewEngine(store, f, broker, mock, rand.New(rand.NewSource(7)), nil, cfg)

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	// Let the loops park on their tickers before driving the clock.
	time.Sleep(50 * time.Millisecond)
	seen := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for i := 0; i < 10 && len(seen) < 3; i++ {
		mock.Add(1 * time.Second)
	drain:
		for {
			select {
			case ev := <-sub.Events():
				seen[ev.Type] = true
			case <-deadline:
				t.Fatalf("timed out; saw %v", seen)
			case <-time.After(100 * time.Millisecond):
				break drain
			}
		}
	}

	assert.True(t, seen[stream.EventBuses], "expected a buses event")
	assert.True(t, seen[stream.EventTicket], "expected a ticket event")
	assert.True(t, seen[stream.EventScheduleOpt], "expected a schedule_opt event")

	// The motion loop must have moved B1 off its seed position.
	b, _ := store.Bus("B1")
	s0, _ := store.Stop("S0")
	assert.False(t, b.Lat == s0.Lat && b.Lon == s0.Lon, "bus should have moved")

	cancel()
	select {
	case err := <-done:
		require.True(t, errors.Is(err, context.Canceled), "engine should stop with context.Canceled, got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop after cancellation")
	}
}
