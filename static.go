package smartbus

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/smartbus/transit"
)

// staticScheduleLimit caps the one-shot schedule listing; the live stream
// carries the optimized times anyway.
const staticScheduleLimit = 200

type staticResponse struct {
	Stops    []transit.Stop          `json:"stops"`
	Routes   []transit.Route         `json:"routes"`
	Schedule []transit.ScheduleEntry `json:"schedule"`
}

// handleStatic serves the one-shot network snapshot: all stops and routes
// plus the first 200 schedule entries.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := staticResponse{
		Stops:    s.store.Stops(),
		Routes:   s.store.Routes(),
		Schedule: s.store.ScheduleSnapshot(staticScheduleLimit),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
