package smartbus

import (
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// buildVehiclePositionsFeed renders the current fleet as a GTFS-Realtime
// FeedMessage with one VehiclePosition entity per bus. RouteID doubles as
// the trip reference: the simulator has no trip granularity below a route.
func (s *Server) buildVehiclePositionsFeed(now time.Time) *gtfsrtpb.FeedMessage {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Incrementality:      gtfsrtpb.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
	}
	for _, b := range s.store.BusSnapshots() {
		vp := &gtfsrtpb.VehiclePosition{
			Trip: &gtfsrtpb.TripDescriptor{
				TripId:  proto.String(b.RouteID + "_" + b.ID),
				RouteId: proto.String(b.RouteID),
			},
			Vehicle: &gtfsrtpb.VehicleDescriptor{
				Id:    proto.String(b.ID),
				Label: proto.String(b.ID),
			},
			Position: &gtfsrtpb.Position{
				Latitude:  proto.Float32(float32(b.Lat)),
				Longitude: proto.Float32(float32(b.Lon)),
				// speed_kmh is cosmetic in the simulation; the feed wants m/s.
				Speed: proto.Float32(float32(b.SpeedKMH / 3.6)),
			},
			Timestamp: proto.Uint64(uint64(now.Unix())),
		}
		if b.NextStopID != nil {
			vp.StopId = proto.String(*b.NextStopID)
			vp.CurrentStatus = gtfsrtpb.VehiclePosition_IN_TRANSIT_TO.Enum()
		}
		fm.Entity = append(fm.Entity, &gtfsrtpb.FeedEntity{
			Id:      proto.String(b.ID),
			Vehicle: vp,
		})
	}
	return fm
}

// handleVehiclePositions serves the fleet as a binary GTFS-RT feed.
func (s *Server) handleVehiclePositions(w http.ResponseWriter, r *http.Request) {
	fm := s.buildVehiclePositionsFeed(time.Now())
	buf, err := proto.Marshal(fm)
	if err != nil {
		s.log.Error("marshal vehicle positions feed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/x-protobuf")
	_, _ = w.Write(buf)
}
