package api

import (
	"fmt"
	"net/http"

	"github.com/lionetto/portfolio-server/internal/api/respond"
	"github.com/lionetto/portfolio-server/internal/events"
)

// EventsHandler streams refresh broadcast signals over Server-Sent Events so
// open pages re-fetch content without a manual reload.
type EventsHandler struct {
	bus *events.Bus
}

func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

// Stream GET /api/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respond.WriteInternalError(w, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch, cancel := h.bus.Subscribe()
	defer cancel()

	// Open the stream immediately so clients know they are connected.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: {\"kind\":%q}\n\n", evt.Kind, evt.Kind)
			flusher.Flush()
		}
	}
}
