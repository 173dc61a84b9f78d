package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/smartbus"
	"github.com/theoremus-urban-solutions/smartbus/config"
	"github.com/theoremus-urban-solutions/smartbus/forecast"
	"github.com/theoremus-urban-solutions/smartbus/sim"
	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config.yml")
	port := flag.Int("port", 0, "server port (overrides config)")
	seed := flag.Int64("seed", 0, "demand RNG seed (0 = time-based)")
	flag.Parse()

	log := smartbus.InitLogging()
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	store := transit.NewStore()
	transit.Bootstrap(store, transit.BootstrapParams{
		CenterLat:        cfg.Network.CenterLat,
		CenterLon:        cfg.Network.CenterLon,
		RadiusDeg:        cfg.Network.RadiusDeg,
		StopCount:        cfg.Network.StopCount,
		ScheduleVisits:   cfg.Network.ScheduleVisits,
		ScheduleInterval: time.Duration(cfg.Network.ScheduleIntervalS) * time.Second,
	}, time.Now())
	log.Info("network bootstrapped",
		zap.Int("stops", len(store.Stops())),
		zap.Int("routes", len(store.Routes())),
		zap.Int("buses", len(store.BusIDs())),
		zap.Int("schedule_entries", store.ScheduleLen()))

	forecaster := forecast.New(cfg.Forecast.Alpha)
	broker := stream.NewBroker(cfg.Stream.IngestCapacity, cfg.Stream.SubscriberCapacity, log)

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	engine := sim.NewEngine(store, forecaster, broker, clock.New(), rng, log, cfg.Sim)
	server := smartbus.NewServer(cfg, store, forecaster, broker, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return engine.Run(ctx) })
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("exited with error", zap.Error(err))
	}
	log.Info("shut down cleanly")
}
