package sim

import (
	"context"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/smartbus/config"
	"github.com/theoremus-urban-solutions/smartbus/forecast"
	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

// Engine wires the four periodic processes and the broker drain into one
// task group. All shared state is injected; the engine owns no data of its
// own beyond the loop scheduling.
type Engine struct {
	store      *transit.Store
	forecaster *forecast.Forecaster
	broker     *stream.Broker
	clock      clock.Clock
	log        *zap.Logger
	cfg        config.SimConfig

	motion    *MotionSimulator
	tickets   *TicketGenerator
	optimizer *ScheduleOptimizer
	snapshots *SnapshotPublisher
}

// NewEngine builds an engine over a bootstrapped store. A nil clock means
// the wall clock; a nil rng seeds from the clock.
func NewEngine(store *transit.Store, f *forecast.Forecaster, b *stream.Broker, clk clock.Clock, rng *rand.Rand, log *zap.Logger, cfg config.SimConfig) *Engine {
	if clk == nil {
		clk = clock.New()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clk.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		store:      store,
		forecaster: f,
		broker:     b,
		clock:      clk,
		log:        log,
		cfg:        cfg,
		motion:     NewMotionSimulator(store),
		tickets:    NewTicketGenerator(store, f, b, clk, rng, log),
		optimizer:  NewScheduleOptimizer(store, f, b, clk, log),
		snapshots:  NewSnapshotPublisher(store, b, clk),
	}
}

// Run starts the broker drain and the four loops, blocking until ctx ends.
// Returns the context error on shutdown; the loops themselves never fail.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Info("engine starting",
		zap.Duration("motion", e.cfg.MotionInterval()),
		zap.Duration("tickets", e.cfg.TicketInterval()),
		zap.Duration("optimize", e.cfg.OptimizeInterval()),
		zap.Duration("snapshot", e.cfg.SnapshotInterval()))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.broker.Run(ctx) })
	g.Go(func() error {
		return e.runEvery(ctx, e.cfg.MotionInterval(), func(context.Context) { e.motion.Tick() })
	})
	g.Go(func() error { return e.runEvery(ctx, e.cfg.TicketInterval(), e.tickets.Tick) })
	g.Go(func() error { return e.runEvery(ctx, e.cfg.OptimizeInterval(), e.optimizer.Tick) })
	g.Go(func() error { return e.runEvery(ctx, e.cfg.SnapshotInterval(), e.snapshots.Tick) })
	err := g.Wait()
	e.log.Info("engine stopped")
	return err
}

// runEvery ticks fn on the engine clock until ctx ends. Intervals <= 0 fall
// back to one second.
func (e *Engine) runEvery(ctx context.Context, interval time.Duration, fn func(context.Context)) error {
	if interval <= 0 {
		interval = time.Second
	}
	t := e.clock.Ticker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			fn(ctx)
		}
	}
}
