package handler

import (
	"errors"
	"net/http"

	"trm/internal/domain"

	"github.com/sirupsen/logrus"
)

type TrendPointResponse struct {
	Record RecordResponse `json:"record"`
	Change ChangeResponse `json:"change"`
}

type HistoryResponse struct {
	Points []TrendPointResponse `json:"points"`
}

type RangeResponse struct {
	Start   string           `json:"start" example:"2024-01-01"`
	End     string           `json:"end" example:"2024-01-31"`
	Count   int              `json:"count" example:"21"`
	Records []RecordResponse `json:"records"`
}

// GetHistory godoc
// @Summary Recent TRM trend
// @Description Most recent rates, each compared with the business day before it
// @Tags TRM
// @Produce json
// @Param limit query int false "Rows to return (1-60)" default(14)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} errorResponse
// @Router /trm/history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := h.validator.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := h.service.Trend(limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := HistoryResponse{Points: make([]TrendPointResponse, 0, len(points))}
	for _, p := range points {
		res.Points = append(res.Points, TrendPointResponse{
			Record: newRecordResponse(p.Record),
			Change: newChangeResponse(p.Change),
		})
	}
	writeJSON(w, http.StatusOK, res)
}

// GetRange godoc
// @Summary TRM for a date range
// @Description Rates published between start and end, oldest first
// @Tags TRM
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} RangeResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /trm/range [get]
func (h *Handler) GetRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end, err := h.validator.ParseRange(q.Get("start"), q.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	series, err := h.service.Range(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRange", "start": start, "end": end}).Error("range lookup failed")
		writeError(w, http.StatusBadGateway, msgLookupFailed)
		return
	}

	res := RangeResponse{
		Start:   start.String(),
		End:     end.String(),
		Count:   len(series),
		Records: make([]RecordResponse, 0, len(series)),
	}
	for _, rec := range series {
		res.Records = append(res.Records, newRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, res)
}
