package handler

import (
	"errors"
	"net/http"

	"trm/internal/domain"
	"trm/internal/format"
	"trm/internal/rate"
	"trm/internal/ratecalc"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	Amount          string         `json:"amount" example:"100"`
	AmountFormatted string         `json:"amount_formatted" example:"100,00"`
	Result          string         `json:"result" example:"410050"`
	ResultFormatted string         `json:"result_formatted" example:"410.050,00"`
	From            string         `json:"from" example:"USD"`
	To              string         `json:"to" example:"COP"`
	Words           string         `json:"words,omitempty" example:"Cuatrocientos Diez Mil Cincuenta Pesos"`
	Rate            RecordResponse `json:"rate"`
}

type ConversionRowResponse struct {
	Amount          string `json:"amount" example:"10"`
	AmountFormatted string `json:"amount_formatted" example:"10,00"`
	Result          string `json:"result" example:"41005"`
	ResultFormatted string `json:"result_formatted" example:"41.005,00"`
}

type ConvertTableResponse struct {
	From string                  `json:"from" example:"USD"`
	To   string                  `json:"to" example:"COP"`
	Rate RecordResponse          `json:"rate"`
	Rows []ConversionRowResponse `json:"rows"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Convert between USD and COP at the current rate
// @Tags Convert
// @Produce json
// @Param amount query string true "Amount to convert"
// @Param direction query string false "usd-cop or cop-usd" default(usd-cop)
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse "no rate loaded yet"
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := h.validator.ParseAmount(q.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	direction, err := h.validator.ParseDirection(q.Get("direction"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv, err := h.service.Convert(amount, direction)
	if err != nil {
		h.writeConversionError(w, "Convert", err)
		return
	}

	from, to := units(direction)
	res := ConvertResponse{
		Amount:          conv.Amount.String(),
		AmountFormatted: format.FormatAmount(conv.Amount),
		Result:          roundResult(conv.Result),
		ResultFormatted: format.FormatAmount(conv.Result),
		From:            from,
		To:              to,
		Rate:            newRecordResponse(conv.Rate),
	}
	if to == domain.QuoteUnit {
		res.Words = spell(conv.Result)
	}
	writeJSON(w, http.StatusOK, res)
}

// ConvertTable godoc
// @Summary Conversion table
// @Description Reference amounts converted at the current rate
// @Tags Convert
// @Produce json
// @Param direction query string false "usd-cop or cop-usd" default(usd-cop)
// @Success 200 {object} ConvertTableResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse "no rate loaded yet"
// @Router /convert/table [get]
func (h *Handler) ConvertTable(w http.ResponseWriter, r *http.Request) {
	direction, err := h.validator.ParseDirection(r.URL.Query().Get("direction"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	table, err := h.service.ConversionTable(direction)
	if err != nil {
		h.writeConversionError(w, "ConvertTable", err)
		return
	}

	from, to := units(direction)
	res := ConvertTableResponse{
		From: from,
		To:   to,
		Rate: newRecordResponse(table.Rate),
		Rows: make([]ConversionRowResponse, 0, len(table.Rows)),
	}
	for _, row := range table.Rows {
		res.Rows = append(res.Rows, ConversionRowResponse{
			Amount:          row.Amount.String(),
			AmountFormatted: format.FormatAmount(row.Amount),
			Result:          roundResult(row.Result),
			ResultFormatted: format.FormatAmount(row.Result),
		})
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeConversionError(w http.ResponseWriter, handler string, err error) {
	switch {
	case errors.Is(err, rate.ErrNoCurrentRate):
		writeError(w, http.StatusServiceUnavailable, msgRateMissing)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		msg := "ups, couldn't convert this time"
		logrus.WithError(err).WithField("handler", handler).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func units(direction ratecalc.ConversionDirection) (from, to string) {
	if direction == ratecalc.FromQuote {
		return domain.QuoteUnit, domain.BaseUnit
	}
	return domain.BaseUnit, domain.QuoteUnit
}

func roundResult(v decimal.Decimal) string {
	return v.Round(6).String()
}
