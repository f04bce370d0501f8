package httpclient

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"trm/internal/domain"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var errInvalidRecord = errors.New("invalid rate record")

// rawRecord is a row of the dataset. Socrata serializes every field as a
// string, including the rate.
type rawRecord struct {
	Valor         string `json:"valor"`
	Unidad        string `json:"unidad"`
	VigenciaDesde string `json:"vigenciadesde"`
	VigenciaHasta string `json:"vigenciahasta"`
}

func (r rawRecord) toRecord() (domain.RateRecord, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(r.Valor))
	if err != nil {
		return domain.RateRecord{}, fmt.Errorf("%w: value %q is not a decimal: %w", errInvalidRecord, r.Valor, err)
	}
	if !value.IsPositive() {
		return domain.RateRecord{}, fmt.Errorf("%w: value %s is not positive", errInvalidRecord, value)
	}

	from, err := parseDate(r.VigenciaDesde)
	if err != nil {
		return domain.RateRecord{}, fmt.Errorf("%w: vigenciadesde: %w", errInvalidRecord, err)
	}
	to, err := parseDate(r.VigenciaHasta)
	if err != nil {
		return domain.RateRecord{}, fmt.Errorf("%w: vigenciahasta: %w", errInvalidRecord, err)
	}
	if from.After(to) {
		return domain.RateRecord{}, fmt.Errorf("%w: valid from %s is after valid to %s", errInvalidRecord, from, to)
	}

	return domain.RateRecord{
		Value:     value,
		Unit:      strings.TrimSpace(r.Unidad),
		ValidFrom: from,
		ValidTo:   to,
	}, nil
}

// parseDate accepts plain ISO dates and Socrata floating timestamps
// ("2024-01-02T00:00:00.000").
func parseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 && s[10] == 'T' {
		s = s[:10]
	}
	return civil.ParseDate(s)
}

func compareValidFrom(a, b domain.RateRecord) int {
	switch {
	case a.ValidFrom.Before(b.ValidFrom):
		return -1
	case a.ValidFrom.After(b.ValidFrom):
		return 1
	default:
		return 0
	}
}

func sortAscending(series domain.RateSeries) domain.RateSeries {
	slices.SortStableFunc(series, compareValidFrom)
	return series
}

func sortDescending(series domain.RateSeries) domain.RateSeries {
	slices.SortStableFunc(series, func(a, b domain.RateRecord) int { return compareValidFrom(b, a) })
	return series
}

// dedupe keeps the first record of every run sharing a ValidFrom. series
// must already be sorted.
func dedupe(op string, series domain.RateSeries) domain.RateSeries {
	if len(series) < 2 {
		return series
	}
	out := series[:1]
	for _, rec := range series[1:] {
		if rec.ValidFrom == out[len(out)-1].ValidFrom {
			dropRecord(op, fmt.Errorf("%w: duplicate valid from %s", errInvalidRecord, rec.ValidFrom), nil)
			continue
		}
		out = append(out, rec)
	}
	return out
}
