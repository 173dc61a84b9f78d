package sim

import (
	"context"
	"math/rand"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/smartbus/forecast"
	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

// TicketGenerator synthesizes ridership observations with a time-of-day
// dependent level, feeds them to the forecaster and publishes them as
// ticket events.
type TicketGenerator struct {
	store      *transit.Store
	forecaster *forecast.Forecaster
	broker     *stream.Broker
	clock      clock.Clock
	rng        *rand.Rand
	log        *zap.Logger
}

// NewTicketGenerator returns a generator over the given collaborators.
func NewTicketGenerator(store *transit.Store, f *forecast.Forecaster, b *stream.Broker, clk clock.Clock, rng *rand.Rand, log *zap.Logger) *TicketGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &TicketGenerator{store: store, forecaster: f, broker: b, clock: clk, rng: rng, log: log}
}

// baseDemandForHour maps an hour of day (UTC) to a mean demand level:
// quiet before 06:00, elevated during the 07:00-09:00 and 16:00-18:00 peak
// windows, moderate otherwise.
func baseDemandForHour(hour int) float64 {
	switch {
	case hour < 6:
		return 6
	case (hour >= 7 && hour <= 9) || (hour >= 16 && hour <= 18):
		return 16
	default:
		return 10
	}
}

// Tick draws one observation: a uniform random stop on a uniform random
// route, with a count sampled from Normal(base, 3) truncated to a
// non-negative integer.
func (g *TicketGenerator) Tick(ctx context.Context) {
	routes := g.store.Routes()
	if len(routes) == 0 {
		return
	}
	route := routes[g.rng.Intn(len(routes))]
	if len(route.Stops) == 0 {
		return
	}
	stopID := route.Stops[g.rng.Intn(len(route.Stops))]

	now := g.clock.Now()
	base := baseDemandForHour(now.UTC().Hour())
	count := int(g.rng.NormFloat64()*3 + base)
	if count < 0 {
		count = 0
	}

	key := forecast.Key(route.ID, stopID)
	smoothed := g.forecaster.Update(key, float64(count))

	ev := transit.TicketEvent{
		TS:      transit.EpochSeconds(now),
		RouteID: route.ID,
		StopID:  stopID,
		Count:   count,
	}
	if err := g.broker.Publish(ctx, stream.Event{Type: stream.EventTicket, Data: ev}); err != nil {
		return
	}
	g.log.Debug("ticket event",
		zap.String("key", key),
		zap.Int("count", count),
		zap.Float64("smoothed", smoothed))
}
