package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartbus",
		Subsystem: "stream",
		Name:      "events_published_total",
		Help:      "Events accepted into the ingestion queue, by event type.",
	}, []string{"type"})

	droppedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartbus",
		Subsystem: "stream",
		Name:      "events_dropped_total",
		Help:      "Per-subscriber deliveries dropped due to a full queue, by event type.",
	}, []string{"type"})

	subscriberGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "smartbus",
		Subsystem: "stream",
		Name:      "subscribers",
		Help:      "Currently registered stream subscribers.",
	})
)
