package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trm/internal/rate"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const streamKeepAlive = 15 * time.Second

// Stream godoc
// @Summary Stream TRM state
// @Description Server-Sent Events: one "state" event per published snapshot, starting with the current one
// @Tags TRM
// @Produce text/event-stream
// @Success 200 {object} StateResponse "event data"
// @Router /trm/stream [get]
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	states, unsubscribe := h.service.Subscribe()
	defer unsubscribe()

	log := logrus.WithFields(logrus.Fields{"handler": "Stream", "client_id": uuid.NewString()})
	log.Debug("stream client connected")
	defer log.Debug("stream client disconnected")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case st, ok := <-states:
			if !ok {
				return
			}
			payload, err := json.Marshal(newStateResponse(rate.SnapshotOf(st)))
			if err != nil {
				log.WithError(err).Error("failed to encode state event")
				continue
			}
			if _, err = fmt.Fprintf(w, "id: %d\nevent: state\ndata: %s\n\n", st.Generation, payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
