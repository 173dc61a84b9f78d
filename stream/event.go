package stream

import "github.com/theoremus-urban-solutions/smartbus/transit"

// Event types carried on the stream.
const (
	EventTicket      = "ticket"
	EventScheduleOpt = "schedule_opt"
	EventBuses       = "buses"
)

// Event is one item on the stream. Data is the type-specific payload:
// transit.TicketEvent, SchedulePayload, or BusesPayload.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// SchedulePayload is the aggregate published after each optimization pass.
type SchedulePayload struct {
	TS          float64 `json:"ts"`
	AvgForecast float64 `json:"avg_forecast"`
}

// BusesPayload is the periodic fleet position snapshot.
type BusesPayload struct {
	TS    float64            `json:"ts"`
	Buses []transit.BusState `json:"buses"`
}
