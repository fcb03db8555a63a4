package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Events streams player snapshots as server-sent events (GET /api/events).
// The current state is sent first; slow clients only see the latest change.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for snap := range h.player.Watch(r.Context(), 1) {
		data, err := json.Marshal(snap)
		if err != nil {
			h.logger.Error("Failed to encode snapshot", zap.Error(err))
			return
		}
		if _, err := fmt.Fprintf(w, "id: %d\nevent: state\ndata: %s\n\n", snap.Seq, data); err != nil {
			return
		}
		flusher.Flush()
	}
}
