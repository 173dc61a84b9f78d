// Package smartbus is the HTTP surface of the transit simulator: static
// snapshot and health endpoints, the live event stream (SSE and WebSocket),
// and read-only GTFS-Realtime and SIRI-VM renditions of the fleet.
package smartbus

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/smartbus/config"
	"github.com/theoremus-urban-solutions/smartbus/forecast"
	"github.com/theoremus-urban-solutions/smartbus/stream"
	"github.com/theoremus-urban-solutions/smartbus/transit"
)

// Server serves the external surface over one injected world state. It does
// not own the simulation; the engine runs independently and communicates
// through the store and the broker.
type Server struct {
	cfg        config.AppConfig
	store      *transit.Store
	forecaster *forecast.Forecaster
	broker     *stream.Broker
	log        *zap.Logger
	started    time.Time
	httpServer *http.Server
}

// NewServer wires the handlers onto a mux and returns the server.
func NewServer(cfg config.AppConfig, store *transit.Store, f *forecast.Forecaster, b *stream.Broker, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:        cfg,
		store:      store,
		forecaster: f,
		broker:     b,
		log:        log,
		started:    time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/static", s.handleStatic)
	mux.HandleFunc("/api/stream", s.handleStreamSSE)
	mux.HandleFunc("/api/stream/ws", s.handleStreamWS)
	mux.HandleFunc("/api/gtfsrt/vehicle-positions", s.handleVehiclePositions)
	mux.HandleFunc("/api/siri/vehicle-monitoring.json", s.handleVehicleMonitoringJSON)
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
		// No WriteTimeout: /api/stream holds its response open for the
		// lifetime of the subscription.
	}
	return s
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed after
// a Shutdown is mapped to nil.
func (s *Server) ListenAndServe() error {
	s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}
