package transit

import (
	"fmt"
	"math"
	"time"
)

// BootstrapParams shapes the synthetic network. Zero values fall back to the
// defaults of the reference network: 8 stops on a ring around downtown
// San Francisco, two mirrored routes, two buses.
type BootstrapParams struct {
	CenterLat        float64
	CenterLon        float64
	RadiusDeg        float64
	StopCount        int
	ScheduleVisits   int
	ScheduleInterval time.Duration
}

func (p BootstrapParams) withDefaults() BootstrapParams {
	if p.CenterLat == 0 && p.CenterLon == 0 {
		p.CenterLat, p.CenterLon = 37.7749, -122.4194
	}
	if p.RadiusDeg <= 0 {
		p.RadiusDeg = 0.03
	}
	if p.StopCount < 2 {
		p.StopCount = 8
	}
	if p.ScheduleVisits <= 0 {
		p.ScheduleVisits = 12
	}
	if p.ScheduleInterval <= 0 {
		p.ScheduleInterval = 10 * time.Minute
	}
	return p
}

// stopSpacing is the planned headway between consecutive stops on a route.
const stopSpacing = 2 * time.Minute

// EpochSeconds converts a time to fractional epoch seconds, the wire unit
// used for every timestamp in events and schedule entries.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Bootstrap seeds the store with the synthetic ring network: StopCount stops
// evenly spaced on a circle, route R1 traversing them forward and R2 in
// reverse, two buses on opposite sides, and a rolling schedule of
// ScheduleVisits future visits per (route, stop). Run once before the
// simulation loops start.
func Bootstrap(s *Store, p BootstrapParams, now time.Time) {
	p = p.withDefaults()
	n := p.StopCount

	stopIDs := make([]string, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		id := fmt.Sprintf("S%d", i)
		stopIDs[i] = id
		s.AddStop(Stop{
			ID:   id,
			Name: fmt.Sprintf("Stop %d", i),
			Lat:  p.CenterLat + p.RadiusDeg*math.Sin(theta),
			Lon:  p.CenterLon + p.RadiusDeg*math.Cos(theta),
		})
	}

	forward := make([]string, n)
	reverse := make([]string, n)
	for i := 0; i < n; i++ {
		forward[i] = stopIDs[i]
		reverse[i] = stopIDs[n-1-i]
	}
	s.AddRoute(Route{ID: "R1", Name: "Route 1", Stops: forward})
	s.AddRoute(Route{ID: "R2", Name: "Route 2", Stops: reverse})

	seedBus(s, "B1", "R1", stopIDs[0], stopIDs[1], 25.0)
	mid := n / 2
	seedBus(s, "B2", "R2", stopIDs[mid], stopIDs[mid-1], 22.0)

	base := EpochSeconds(now)
	for _, r := range s.Routes() {
		for idx, stopID := range r.Stops {
			first := base + float64(idx)*stopSpacing.Seconds()
			for k := 0; k < p.ScheduleVisits; k++ {
				s.AppendScheduleEntry(ScheduleEntry{
					RouteID:     r.ID,
					StopID:      stopID,
					PlannedTime: first + float64(k)*p.ScheduleInterval.Seconds(),
				})
			}
		}
	}
}

func seedBus(s *Store, id, routeID, atStopID, nextStopID string, speedKMH float64) {
	at, ok := s.Stop(atStopID)
	if !ok {
		return
	}
	next := nextStopID
	eta := 60
	s.AddBus(BusState{
		ID:           id,
		RouteID:      routeID,
		Lat:          at.Lat,
		Lon:          at.Lon,
		SpeedKMH:     speedKMH,
		NextStopID:   &next,
		ETANextStopS: &eta,
	})
}
