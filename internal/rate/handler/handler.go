package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"trm/internal/domain"
	"trm/internal/rate"
	"trm/internal/ratecalc"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const (
	msgLookupFailed = "Error al consultar la TRM. Intente nuevamente."
	msgNoDataForDay = "No se encontró TRM para esta fecha. Es posible que sea un día no hábil."
	msgRateMissing  = "TRM no disponible todavía. Intente nuevamente."
)

type RateService interface {
	Snapshot() rate.Snapshot
	Refresh(ctx context.Context) (rate.Snapshot, error)
	Subscribe() (<-chan rate.State, func())
	Trend(limit int) ([]domain.TrendPoint, error)
	LookupDate(ctx context.Context, date civil.Date) (rate.DateLookup, bool, error)
	Range(ctx context.Context, start, end civil.Date) (domain.RateSeries, error)
	Convert(amount decimal.Decimal, direction ratecalc.ConversionDirection) (rate.Conversion, error)
	ConversionTable(direction ratecalc.ConversionDirection) (rate.ConversionTable, error)
}

type QueryValidator interface {
	ParseDate(raw string) (civil.Date, error)
	ParseRange(rawStart, rawEnd string) (civil.Date, civil.Date, error)
	ParseAmount(raw string) (decimal.Decimal, error)
	ParseDirection(raw string) (ratecalc.ConversionDirection, error)
	ParseLimit(raw string) (int, error)
}

type Handler struct {
	validator QueryValidator
	service   RateService
}

func NewRateHandler(validator QueryValidator, service RateService) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
