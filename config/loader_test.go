package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAppConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAppConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "server:\n  port: 9999\nsim:\n  ticketIntervalMS: 250\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Sim.TicketInterval() != 250*time.Millisecond {
		t.Errorf("expected 250ms ticket interval, got %v", cfg.Sim.TicketInterval())
	}
	// Untouched keys keep their defaults.
	if cfg.Sim.MotionIntervalMS != 1000 {
		t.Errorf("expected default motion interval, got %d", cfg.Sim.MotionIntervalMS)
	}
	if cfg.Stream.IngestCapacity != 1000 {
		t.Errorf("expected default ingest capacity, got %d", cfg.Stream.IngestCapacity)
	}
}

func TestLoadAppConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad port", yaml: "server:\n  port: -1\n"},
		{name: "bad alpha", yaml: "forecast:\n  alpha: 2.0\n"},
		{name: "bad interval", yaml: "sim:\n  motionIntervalMS: 0\n"},
		{name: "malformed yaml", yaml: "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadAppConfig(path); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestDefault_IntervalAccessors(t *testing.T) {
	cfg := Default()
	if cfg.Sim.MotionInterval() != time.Second {
		t.Errorf("motion interval: got %v", cfg.Sim.MotionInterval())
	}
	if cfg.Sim.TicketInterval() != 2*time.Second {
		t.Errorf("ticket interval: got %v", cfg.Sim.TicketInterval())
	}
	if cfg.Sim.OptimizeInterval() != 5*time.Second {
		t.Errorf("optimize interval: got %v", cfg.Sim.OptimizeInterval())
	}
	if cfg.Sim.SnapshotInterval() != time.Second {
		t.Errorf("snapshot interval: got %v", cfg.Sim.SnapshotInterval())
	}
}
