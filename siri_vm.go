package smartbus

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/smartbus/transit"
)

// Minimal SIRI-VM delivery shapes for the fleet. Field set follows the
// SIRI-VM service delivery: LineRef/VehicleRef identity, VehicleLocation,
// and a MonitoredCall for the next stop.

type siriResponse struct {
	Siri siriServiceDelivery `json:"Siri"`
}

type siriServiceDelivery struct {
	ServiceDelivery serviceDelivery `json:"ServiceDelivery"`
}

type serviceDelivery struct {
	ResponseTimestamp         string              `json:"ResponseTimestamp"`
	ProducerRef               string              `json:"ProducerRef,omitempty"`
	VehicleMonitoringDelivery []vehicleMonitoring `json:"VehicleMonitoringDelivery"`
}

type vehicleMonitoring struct {
	ResponseTimestamp string                 `json:"ResponseTimestamp"`
	VehicleActivity   []vehicleActivityEntry `json:"VehicleActivity"`
}

type vehicleActivityEntry struct {
	RecordedAtTime          string                  `json:"RecordedAtTime"`
	MonitoredVehicleJourney monitoredVehicleJourney `json:"MonitoredVehicleJourney"`
}

type monitoredVehicleJourney struct {
	LineRef           string          `json:"LineRef"`
	PublishedLineName string          `json:"PublishedLineName,omitempty"`
	OperatorRef       string          `json:"OperatorRef,omitempty"`
	Monitored         bool            `json:"Monitored"`
	DataSource        string          `json:"DataSource"`
	VehicleLocation   vehicleLocation `json:"VehicleLocation"`
	VehicleRef        string          `json:"VehicleRef"`
	MonitoredCall     *monitoredCall  `json:"MonitoredCall,omitempty"`
}

type vehicleLocation struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

type monitoredCall struct {
	StopPointRef        string `json:"StopPointRef"`
	StopPointName       string `json:"StopPointName,omitempty"`
	ExpectedArrivalTime string `json:"ExpectedArrivalTime,omitempty"`
}

// buildVehicleMonitoring renders the fleet as a SIRI-VM service delivery.
func (s *Server) buildVehicleMonitoring(now time.Time) siriResponse {
	ts := iso8601FromUnixSeconds(now.Unix())
	agency := s.cfg.Network.AgencyID

	activity := make([]vehicleActivityEntry, 0)
	for _, b := range s.store.BusSnapshots() {
		mvj := monitoredVehicleJourney{
			LineRef:    agency + ":Line:" + b.RouteID,
			Monitored:  true,
			DataSource: agency,
			VehicleLocation: vehicleLocation{
				Latitude:  b.Lat,
				Longitude: b.Lon,
			},
			VehicleRef: agency + ":VehicleRef:" + b.ID,
		}
		if route, ok := s.store.Route(b.RouteID); ok {
			mvj.PublishedLineName = route.Name
		}
		mvj.MonitoredCall = s.buildMonitoredCall(b, now)
		activity = append(activity, vehicleActivityEntry{
			RecordedAtTime:          ts,
			MonitoredVehicleJourney: mvj,
		})
	}

	return siriResponse{Siri: siriServiceDelivery{ServiceDelivery: serviceDelivery{
		ResponseTimestamp: ts,
		ProducerRef:       agency,
		VehicleMonitoringDelivery: []vehicleMonitoring{{
			ResponseTimestamp: ts,
			VehicleActivity:   activity,
		}},
	}}}
}

func (s *Server) buildMonitoredCall(b transit.BusState, now time.Time) *monitoredCall {
	if b.NextStopID == nil {
		return nil
	}
	call := &monitoredCall{StopPointRef: s.cfg.Network.AgencyID + ":Quay:" + *b.NextStopID}
	if stop, ok := s.store.Stop(*b.NextStopID); ok {
		call.StopPointName = stop.Name
	}
	if b.ETANextStopS != nil {
		call.ExpectedArrivalTime = iso8601FromUnixSeconds(now.Unix() + int64(*b.ETANextStopS))
	}
	return call
}

// handleVehicleMonitoringJSON serves the SIRI-VM rendition of the fleet.
func (s *Server) handleVehicleMonitoringJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.buildVehicleMonitoring(time.Now()))
}
