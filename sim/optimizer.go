package sim

import (
	"context"
	"math"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/smartbus/forecast"
	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

const (
	// defaultForecast stands in for keys with no observations yet.
	defaultForecast = 8.0
	// highDemandThreshold triggers serving a stop earlier.
	highDemandThreshold = 15.0
	// lowDemandThreshold triggers a small smoothing delay.
	lowDemandThreshold = 5.0
	// advanceSeconds is the maximum a visit is pulled forward.
	advanceSeconds = 180.0
	// delaySeconds is the push-back applied at low demand.
	delaySeconds = 60.0
)

// ScheduleOptimizer recomputes the optimized time of every schedule entry
// from the current forecast. It is the sole writer of OptimizedTime.
type ScheduleOptimizer struct {
	store      *transit.Store
	forecaster *forecast.Forecaster
	broker     *stream.Broker
	clock      clock.Clock
	log        *zap.Logger
}

// NewScheduleOptimizer returns an optimizer over the given collaborators.
func NewScheduleOptimizer(store *transit.Store, f *forecast.Forecaster, b *stream.Broker, clk clock.Clock, log *zap.Logger) *ScheduleOptimizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleOptimizer{store: store, forecaster: f, broker: b, clock: clk, log: log}
}

// OptimizeEntry applies the adjustment rule to a single entry: high demand
// pulls the visit up to three minutes earlier but never into the past, low
// demand delays it by a minute, anything in between keeps the plan.
func OptimizeEntry(e *transit.ScheduleEntry, forecastValue, now float64) {
	var t float64
	switch {
	case forecastValue > highDemandThreshold:
		t = math.Max(now, e.PlannedTime-advanceSeconds)
	case forecastValue < lowDemandThreshold:
		t = e.PlannedTime + delaySeconds
	default:
		t = e.PlannedTime
	}
	e.OptimizedTime = &t
}

// Tick runs one optimization pass over the full schedule, then publishes a
// schedule_opt event carrying the mean forecast across observed keys.
func (o *ScheduleOptimizer) Tick(ctx context.Context) {
	now := transit.EpochSeconds(o.clock.Now())
	o.store.ForEachScheduleEntry(func(e *transit.ScheduleEntry) {
		f := o.forecaster.Get(forecast.Key(e.RouteID, e.StopID), defaultForecast)
		OptimizeEntry(e, f, now)
	})

	avg := o.forecaster.Mean()
	payload := stream.SchedulePayload{TS: now, AvgForecast: avg}
	if err := o.broker.Publish(ctx, stream.Event{Type: stream.EventScheduleOpt, Data: payload}); err != nil {
		return
	}
	o.log.Debug("schedule optimized",
		zap.Int("entries", o.store.ScheduleLen()),
		zap.Float64("avg_forecast", avg))
}
