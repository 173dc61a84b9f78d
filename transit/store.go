package transit

import (
	"sort"
	"sync"
)

// Store is the shared world state. It is constructed once at process start,
// populated by Bootstrap, and injected into the simulation loops and the
// HTTP layer. All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	stops    map[string]Stop
	routes   map[string]Route
	buses    map[string]*BusState
	schedule []*ScheduleEntry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		stops:  map[string]Stop{},
		routes: map[string]Route{},
		buses:  map[string]*BusState{},
	}
}

// AddStop registers a stop. Bootstrap only.
func (s *Store) AddStop(st Stop) {
	s.mu.Lock()
	s.stops[st.ID] = st
	s.mu.Unlock()
}

// AddRoute registers a route. Bootstrap only.
func (s *Store) AddRoute(r Route) {
	s.mu.Lock()
	s.routes[r.ID] = r
	s.mu.Unlock()
}

// AddBus registers a bus. Bootstrap only.
func (s *Store) AddBus(b BusState) {
	s.mu.Lock()
	bc := b.Clone()
	s.buses[b.ID] = &bc
	s.mu.Unlock()
}

// AppendScheduleEntry adds one planned visit. Bootstrap only.
func (s *Store) AppendScheduleEntry(e ScheduleEntry) {
	s.mu.Lock()
	ec := e.Clone()
	s.schedule = append(s.schedule, &ec)
	s.mu.Unlock()
}

// Stop returns the stop with the given ID.
func (s *Store) Stop(id string) (Stop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stops[id]
	return st, ok
}

// Route returns the route with the given ID.
func (s *Store) Route(id string) (Route, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.routes[id]
	return r, ok
}

// Bus returns a copy of the bus with the given ID.
func (s *Store) Bus(id string) (BusState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buses[id]
	if !ok {
		return BusState{}, false
	}
	return b.Clone(), true
}

// Stops returns all stops ordered by ID.
func (s *Store) Stops() []Stop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Stop, 0, len(s.stops))
	for _, st := range s.stops {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Routes returns all routes ordered by ID.
func (s *Store) Routes() []Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Route, 0, len(s.routes))
	for _, r := range s.routes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BusIDs returns all bus IDs in stable order.
func (s *Store) BusIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.buses))
	for id := range s.buses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// UpdateBus applies fn to the bus with the given ID while holding the write
// lock. No-op when the bus does not exist. The motion simulator is the only
// caller during steady state.
func (s *Store) UpdateBus(id string, fn func(*BusState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.buses[id]; ok {
		fn(b)
	}
}

// BusSnapshots returns deep copies of every bus, ordered by ID.
func (s *Store) BusSnapshots() []BusState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BusState, 0, len(s.buses))
	for _, b := range s.buses {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ForEachScheduleEntry applies fn to every schedule entry in insertion order
// while holding the write lock. The schedule optimizer is the only caller
// during steady state.
func (s *Store) ForEachScheduleEntry(fn func(*ScheduleEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.schedule {
		fn(e)
	}
}

// ScheduleSnapshot returns deep copies of the first limit schedule entries
// in insertion order; limit <= 0 means all.
func (s *Store) ScheduleSnapshot(limit int) []ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.schedule)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ScheduleEntry, 0, n)
	for _, e := range s.schedule[:n] {
		out = append(out, e.Clone())
	}
	return out
}

// ScheduleLen returns the number of schedule entries.
func (s *Store) ScheduleLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schedule)
}
