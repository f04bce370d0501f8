package handler

import (
	"time"

	"trm/internal/domain"
	"trm/internal/format"
	"trm/internal/rate"

	"github.com/shopspring/decimal"
)

type RecordResponse struct {
	Value     string `json:"value" example:"4100.5"`
	Formatted string `json:"formatted" example:"4.100,50"`
	Unit      string `json:"unit" example:"COP"`
	ValidFrom string `json:"valid_from" example:"2024-01-02"`
	ValidTo   string `json:"valid_to" example:"2024-01-02"`
	LongDate  string `json:"long_date" example:"martes, 2 de enero de 2024"`
	ShortDate string `json:"short_date" example:"02/01/2024"`
}

type ChangeResponse struct {
	Delta               string `json:"delta" example:"50.5"`
	DeltaFormatted      string `json:"delta_formatted" example:"50,50"`
	Percentage          string `json:"percentage" example:"1.2469"`
	PercentageFormatted string `json:"percentage_formatted" example:"1,25%"`
	Direction           string `json:"direction" example:"up" enums:"up,down,neutral"`
}

type StateResponse struct {
	Current   *RecordResponse `json:"current,omitempty"`
	Words     string          `json:"words,omitempty" example:"Cuatro Mil Cien Pesos Con Cincuenta Centavos"`
	Previous  *RecordResponse `json:"previous,omitempty"`
	Change    *ChangeResponse `json:"change,omitempty"`
	Records   int             `json:"records" example:"60"`
	Loading   bool            `json:"loading" example:"false"`
	Error     string          `json:"error,omitempty"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty" example:"2024-01-02T13:00:00Z"`
}

func newRecordResponse(rec domain.RateRecord) RecordResponse {
	return RecordResponse{
		Value:     rec.Value.String(),
		Formatted: format.FormatAmount(rec.Value),
		Unit:      rec.Unit,
		ValidFrom: rec.ValidFrom.String(),
		ValidTo:   rec.ValidTo.String(),
		LongDate:  format.FormatDate(rec.ValidFrom),
		ShortDate: format.FormatShortDate(rec.ValidFrom),
	}
}

func newChangeResponse(change domain.ChangeMetric) ChangeResponse {
	return ChangeResponse{
		Delta:               change.Delta.String(),
		DeltaFormatted:      format.FormatAmount(change.Delta),
		Percentage:          change.Percentage.Round(4).String(),
		PercentageFormatted: format.FormatPercent(change.Percentage),
		Direction:           string(change.Direction),
	}
}

func newStateResponse(snap rate.Snapshot) StateResponse {
	res := StateResponse{
		Records: snap.Records,
		Loading: snap.Loading,
		Error:   snap.Error,
	}
	if !snap.UpdatedAt.IsZero() {
		updatedAt := snap.UpdatedAt
		res.UpdatedAt = &updatedAt
	}
	if snap.Current != nil {
		cur := newRecordResponse(*snap.Current)
		res.Current = &cur
		res.Words = spell(snap.Current.Value)
	}
	if snap.Previous != nil {
		prev := newRecordResponse(*snap.Previous)
		res.Previous = &prev
	}
	if snap.Change != nil {
		change := newChangeResponse(*snap.Change)
		res.Change = &change
	}
	return res
}

// spell returns "" for amounts that have no word form.
func spell(value decimal.Decimal) string {
	words, err := format.NumberToWords(value)
	if err != nil {
		return ""
	}
	return words
}
