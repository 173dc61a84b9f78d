package smartbus

import (
	"encoding/json"
	"net/http"
	"time"
)

type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_s"`
	Subscribers   int     `json:"subscribers"`
	ForecastKeys  int     `json:"forecast_keys"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(s.started).Seconds(),
		Subscribers:   s.broker.Registry().Len(),
		ForecastKeys:  s.forecaster.Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
