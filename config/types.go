package config

import "time"

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// SimConfig contains the periods of the four simulation loops.
type SimConfig struct {
	MotionIntervalMS   int `yaml:"motionIntervalMS" validate:"gt=0"`
	TicketIntervalMS   int `yaml:"ticketIntervalMS" validate:"gt=0"`
	OptimizeIntervalMS int `yaml:"optimizeIntervalMS" validate:"gt=0"`
	SnapshotIntervalMS int `yaml:"snapshotIntervalMS" validate:"gt=0"`
}

// MotionInterval returns the bus motion tick period.
func (c SimConfig) MotionInterval() time.Duration {
	return time.Duration(c.MotionIntervalMS) * time.Millisecond
}

// TicketInterval returns the ticket generator tick period.
func (c SimConfig) TicketInterval() time.Duration {
	return time.Duration(c.TicketIntervalMS) * time.Millisecond
}

// OptimizeInterval returns the schedule optimizer tick period.
func (c SimConfig) OptimizeInterval() time.Duration {
	return time.Duration(c.OptimizeIntervalMS) * time.Millisecond
}

// SnapshotInterval returns the fleet snapshot tick period.
func (c SimConfig) SnapshotInterval() time.Duration {
	return time.Duration(c.SnapshotIntervalMS) * time.Millisecond
}

// StreamConfig contains event queue capacities.
type StreamConfig struct {
	IngestCapacity     int `yaml:"ingestCapacity" validate:"gt=0"`
	SubscriberCapacity int `yaml:"subscriberCapacity" validate:"gt=0"`
}

// NetworkConfig shapes the bootstrapped synthetic network and the agency
// identity used on the GTFS-RT and SIRI surfaces.
type NetworkConfig struct {
	CenterLat         float64 `yaml:"centerLat"`
	CenterLon         float64 `yaml:"centerLon"`
	RadiusDeg         float64 `yaml:"radiusDeg" validate:"gte=0"`
	StopCount         int     `yaml:"stopCount" validate:"gte=0"`
	ScheduleVisits    int     `yaml:"scheduleVisits" validate:"gte=0"`
	ScheduleIntervalS int     `yaml:"scheduleIntervalS" validate:"gte=0"`
	AgencyID          string  `yaml:"agency_id"`
}

// ForecastConfig contains the demand forecaster parameters.
type ForecastConfig struct {
	Alpha float64 `yaml:"alpha" validate:"gt=0,lte=1"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Sim      SimConfig      `yaml:"sim"`
	Stream   StreamConfig   `yaml:"stream"`
	Network  NetworkConfig  `yaml:"network"`
	Forecast ForecastConfig `yaml:"forecast"`
}
