package transit

import (
	"math"
	"testing"
	"time"
)

func TestBootstrap_RingLayout(t *testing.T) {
	s := NewStore()
	now := time.Unix(1_700_000_000, 0)
	Bootstrap(s, BootstrapParams{}, now)

	stops := s.Stops()
	if len(stops) != 8 {
		t.Fatalf("expected 8 stops, got %d", len(stops))
	}
	for _, st := range stops {
		dLat := st.Lat - 37.7749
		dLon := st.Lon - (-122.4194)
		r := math.Hypot(dLat, dLon)
		if math.Abs(r-0.03) > 1e-9 {
			t.Errorf("stop %s not on the ring: radius %v", st.ID, r)
		}
	}
}

func TestBootstrap_RoutesAreMirrored(t *testing.T) {
	s := NewStore()
	Bootstrap(s, BootstrapParams{}, time.Now())

	r1, _ := s.Route("R1")
	r2, _ := s.Route("R2")
	if len(r1.Stops) != len(r2.Stops) {
		t.Fatalf("route lengths differ: %d vs %d", len(r1.Stops), len(r2.Stops))
	}
	n := len(r1.Stops)
	for i := 0; i < n; i++ {
		if r1.Stops[i] != r2.Stops[n-1-i] {
			t.Errorf("R2 is not the reverse of R1 at index %d", i)
		}
	}
}

func TestBootstrap_BusInvariant(t *testing.T) {
	// A bus's next stop must be a member of its route's stop sequence.
	s := NewStore()
	Bootstrap(s, BootstrapParams{}, time.Now())

	for _, id := range s.BusIDs() {
		b, _ := s.Bus(id)
		if b.NextStopID == nil {
			t.Fatalf("bus %s has no next stop", id)
		}
		route, ok := s.Route(b.RouteID)
		if !ok {
			t.Fatalf("bus %s references unknown route %s", id, b.RouteID)
		}
		found := false
		for _, sid := range route.Stops {
			if sid == *b.NextStopID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("bus %s next stop %s not on route %s", id, *b.NextStopID, b.RouteID)
		}
		if b.ETANextStopS == nil || *b.ETANextStopS != 60 {
			t.Errorf("bus %s should start with a 60s ETA", id)
		}
	}
}

func TestBootstrap_RollingSchedule(t *testing.T) {
	s := NewStore()
	now := time.Unix(1_700_000_000, 0)
	Bootstrap(s, BootstrapParams{ScheduleVisits: 3, ScheduleInterval: 600 * time.Second}, now)

	if got := s.ScheduleLen(); got != 2*8*3 {
		t.Fatalf("expected 48 schedule entries, got %d", got)
	}

	base := EpochSeconds(now)
	entries := s.ScheduleSnapshot(3)
	// First three entries belong to R1's first stop: offsets 0, 600, 1200.
	for k, e := range entries {
		if e.RouteID != "R1" {
			t.Fatalf("expected R1 first in schedule, got %s", e.RouteID)
		}
		want := base + float64(k)*600
		if math.Abs(e.PlannedTime-want) > 1e-6 {
			t.Errorf("entry %d: expected planned time %v, got %v", k, want, e.PlannedTime)
		}
		if e.OptimizedTime != nil {
			t.Errorf("entry %d: optimized time should be nil at bootstrap", k)
		}
	}
}

func TestEpochSeconds(t *testing.T) {
	ts := time.Unix(1_700_000_000, 500_000_000)
	if got := EpochSeconds(ts); math.Abs(got-1_700_000_000.5) > 1e-6 {
		t.Errorf("expected 1700000000.5, got %v", got)
	}
}
