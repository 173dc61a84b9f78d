package sim

import (
	"math"

	"github.com/theoremus-urban-solutions/smartbus/transit"
)

const (
	// moveFraction is the share of remaining distance covered per tick.
	// Linear interpolation, not great-circle accurate; fine at this scale.
	moveFraction = 0.2
	// arrivalEpsilonDeg is the per-axis snap threshold.
	arrivalEpsilonDeg = 1e-4
	// etaDecay shrinks the arrival estimate geometrically each tick.
	etaDecay = 0.85
	// etaFloorS is the minimum estimate while in transit.
	etaFloorS = 5
	// etaResetS is the estimate for a freshly started leg.
	etaResetS = 60
)

// MotionSimulator advances every bus toward its next stop and cycles it to
// the following stop on arrival, producing perpetual looped travel around
// each route. It is the sole writer of bus position and ETA fields.
type MotionSimulator struct {
	store *transit.Store
}

// NewMotionSimulator returns a simulator over the given store.
func NewMotionSimulator(store *transit.Store) *MotionSimulator {
	return &MotionSimulator{store: store}
}

// Tick advances every bus by one step.
func (m *MotionSimulator) Tick() {
	for _, id := range m.store.BusIDs() {
		m.stepBus(id)
	}
}

func (m *MotionSimulator) stepBus(id string) {
	bus, ok := m.store.Bus(id)
	if !ok {
		return
	}
	route, ok := m.store.Route(bus.RouteID)
	if !ok || len(route.Stops) == 0 {
		return
	}

	// A next-stop ID missing from the route is defensively treated as the
	// first stop rather than raised.
	targetIdx := 0
	if bus.NextStopID != nil {
		for i, sid := range route.Stops {
			if sid == *bus.NextStopID {
				targetIdx = i
				break
			}
		}
	}
	target, ok := m.store.Stop(route.Stops[targetIdx])
	if !ok {
		return
	}

	lat := bus.Lat + (target.Lat-bus.Lat)*moveFraction
	lon := bus.Lon + (target.Lon-bus.Lon)*moveFraction

	eta := etaResetS
	if bus.ETANextStopS != nil {
		eta = *bus.ETANextStopS
	}
	eta = int(math.Floor(float64(eta) * etaDecay))
	if eta < etaFloorS {
		eta = etaFloorS
	}

	nextStopID := route.Stops[targetIdx]
	arrived := math.Abs(lat-target.Lat) < arrivalEpsilonDeg &&
		math.Abs(lon-target.Lon) < arrivalEpsilonDeg
	if arrived {
		lat, lon = target.Lat, target.Lon
		nextStopID = route.Stops[(targetIdx+1)%len(route.Stops)]
		eta = etaResetS
	}

	m.store.UpdateBus(id, func(b *transit.BusState) {
		b.Lat = lat
		b.Lon = lon
		b.NextStopID = &nextStopID
		b.ETANextStopS = &eta
	})
}
