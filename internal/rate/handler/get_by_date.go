package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetByDateResponse struct {
	Record        RecordResponse  `json:"record"`
	Words         string          `json:"words,omitempty" example:"Cuatro Mil Cien Pesos"`
	Current       *RecordResponse `json:"current,omitempty"`
	VersusCurrent *ChangeResponse `json:"versus_current,omitempty"`
}

// GetByDate godoc
// @Summary Get TRM by date
// @Description Rate in force on the given date, compared with the current rate
// @Tags TRM
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} GetByDateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "no rate published for that day"
// @Failure 502 {object} errorResponse
// @Router /trm/date/{date} [get]
func (h *Handler) GetByDate(w http.ResponseWriter, r *http.Request) {
	rawDate := strings.TrimSpace(chi.URLParam(r, "date"))
	date, err := h.validator.ParseDate(rawDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lookup, found, err := h.service.LookupDate(r.Context(), date)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByDate", "date": date}).Error("date lookup failed")
		writeError(w, http.StatusBadGateway, msgLookupFailed)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgNoDataForDay)
		return
	}

	res := GetByDateResponse{
		Record: newRecordResponse(lookup.Record),
		Words:  spell(lookup.Record.Value),
	}
	if lookup.CurrentRecord != nil {
		cur := newRecordResponse(*lookup.CurrentRecord)
		res.Current = &cur
	}
	if lookup.VersusCurrent != nil {
		change := newChangeResponse(*lookup.VersusCurrent)
		res.VersusCurrent = &change
	}
	writeJSON(w, http.StatusOK, res)
}
