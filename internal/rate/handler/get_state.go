package handler

import (
	"errors"
	"net/http"

	"trm/internal/domain"
	"trm/internal/rate"

	"github.com/sirupsen/logrus"
)

// GetState godoc
// @Summary Get current TRM
// @Description Current rate, its change against the previous business day and the refresh status
// @Tags TRM
// @Produce json
// @Success 200 {object} StateResponse
// @Router /trm [get]
func (h *Handler) GetState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newStateResponse(h.service.Snapshot()))
}

// Refresh godoc
// @Summary Refresh TRM
// @Description Fetch the latest rate and the recent series from the source
// @Tags TRM
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 409 {object} errorResponse "a newer refresh replaced this one"
// @Failure 502 {object} StateResponse "source unavailable, stale state kept"
// @Router /trm/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Refresh(r.Context())
	switch {
	case errors.Is(err, rate.ErrRefreshSuperseded):
		writeError(w, http.StatusConflict, rate.ErrRefreshSuperseded.Error())
	case err != nil:
		entry := logrus.WithError(err).WithField("handler", "Refresh")
		if domain.IsTransient(err) {
			entry.Warn("refresh failed")
		} else {
			entry.Error("refresh failed")
		}
		writeJSON(w, http.StatusBadGateway, newStateResponse(snap))
	default:
		writeJSON(w, http.StatusOK, newStateResponse(snap))
	}
}
