package transit

// Stop is a named point on the network. Immutable after bootstrap.
type Stop struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Route is an ordered, cyclically traversed sequence of stop IDs.
// Immutable after bootstrap.
type Route struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Stops []string `json:"stops"`
}

// BusState is the live state of one vehicle. NextStopID, when set, must be
// a member of the owning route's stop sequence.
type BusState struct {
	ID           string  `json:"id"`
	RouteID      string  `json:"route_id"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	SpeedKMH     float64 `json:"speed_kmh"`
	NextStopID   *string `json:"next_stop_id"`
	ETANextStopS *int    `json:"eta_next_stop_s"`
}

// Clone returns a deep copy so snapshots never alias live pointer fields.
func (b BusState) Clone() BusState {
	c := b
	if b.NextStopID != nil {
		v := *b.NextStopID
		c.NextStopID = &v
	}
	if b.ETANextStopS != nil {
		v := *b.ETANextStopS
		c.ETANextStopS = &v
	}
	return c
}

// TicketEvent is one synthesized ridership observation. Ephemeral: created,
// published, never stored.
type TicketEvent struct {
	TS      float64 `json:"ts"`
	RouteID string  `json:"route_id"`
	StopID  string  `json:"stop_id"`
	Count   int     `json:"count"`
}

// ScheduleEntry is one planned stop visit. PlannedTime and OptimizedTime are
// epoch seconds; OptimizedTime is nil until the first optimization pass.
type ScheduleEntry struct {
	RouteID       string   `json:"route_id"`
	StopID        string   `json:"stop_id"`
	PlannedTime   float64  `json:"planned_time"`
	OptimizedTime *float64 `json:"optimized_time"`
}

// Clone returns a deep copy of the entry.
func (e ScheduleEntry) Clone() ScheduleEntry {
	c := e
	if e.OptimizedTime != nil {
		v := *e.OptimizedTime
		c.OptimizedTime = &v
	}
	return c
}
