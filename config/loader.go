package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration: the reference network and the
// loop periods of the simulation (motion/snapshot 1s, tickets 2s,
// optimization 5s).
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 16180},
		Sim: SimConfig{
			MotionIntervalMS:   1000,
			TicketIntervalMS:   2000,
			OptimizeIntervalMS: 5000,
			SnapshotIntervalMS: 1000,
		},
		Stream: StreamConfig{
			IngestCapacity:     1000,
			SubscriberCapacity: 100,
		},
		Network: NetworkConfig{
			CenterLat:         37.7749,
			CenterLon:         -122.4194,
			RadiusDeg:         0.03,
			StopCount:         8,
			ScheduleVisits:    12,
			ScheduleIntervalS: 600,
			AgencyID:          "SMARTBUS",
		},
		Forecast: ForecastConfig{Alpha: 0.3},
	}
}

// LoadAppConfig loads the configuration from the first readable path,
// overlaying the built-in defaults. A missing file is not an error; a file
// that fails to parse or validate is.
func LoadAppConfig(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	cfg := Default()
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
