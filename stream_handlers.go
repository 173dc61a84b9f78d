package smartbus

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// handleStreamSSE serves the live event stream as Server-Sent Events. One
// subscriber queue is registered for the lifetime of the request and
// deregistered when the client goes away; events the queue cannot hold are
// dropped by the broker, not buffered here.
func (s *Server) handleStreamSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := s.broker.Subscribe()
	defer s.broker.Unsubscribe(sub)
	s.log.Info("stream subscriber connected", zap.String("subscriber", sub.ID()))
	defer s.log.Info("stream subscriber disconnected", zap.String("subscriber", sub.ID()))

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-sub.Events():
			buf, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", buf); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

var upgrader = websocket.Upgrader{
	// The stream is read-only broadcast data; any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleStreamWS serves the same event stream over a WebSocket, one JSON
// message per event.
func (s *Server) handleStreamWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := s.broker.Subscribe()
	defer s.broker.Unsubscribe(sub)
	s.log.Info("websocket subscriber connected", zap.String("subscriber", sub.ID()))
	defer s.log.Info("websocket subscriber disconnected", zap.String("subscriber", sub.ID()))

	// Drain the read side only to learn about the peer closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case ev := <-sub.Events():
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}
