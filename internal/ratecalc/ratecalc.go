// Package ratecalc derives conversions and change metrics from rate values.
// Every function is pure.
package ratecalc

import (
	"fmt"

	"trm/internal/domain"

	"github.com/shopspring/decimal"
)

type ConversionDirection string

const (
	// ToQuote converts base units into quote units (USD -> COP).
	ToQuote ConversionDirection = "usd-cop"
	// FromQuote converts quote units into base units (COP -> USD).
	FromQuote ConversionDirection = "cop-usd"
)

var hundred = decimal.NewFromInt(100)

var (
	DefaultUSDAmounts = amounts(1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000)
	DefaultCOPAmounts = amounts(1000, 2000, 5000, 10000, 20000, 50000, 100000, 200000, 500000, 1000000, 5000000)
)

func ParseConversionDirection(s string) (ConversionDirection, error) {
	switch d := ConversionDirection(s); d {
	case ToQuote, FromQuote:
		return d, nil
	default:
		return "", fmt.Errorf("unknown conversion direction %q: %w", s, domain.ErrInvalidInput)
	}
}

// Convert multiplies by rate for ToQuote and divides by it for FromQuote.
func Convert(amount, rate decimal.Decimal, direction ConversionDirection) (decimal.Decimal, error) {
	if rate.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("rate %s must be positive: %w", rate, domain.ErrInvalidRate)
	}
	switch direction {
	case ToQuote:
		return amount.Mul(rate), nil
	case FromQuote:
		return amount.Div(rate), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown conversion direction %q: %w", direction, domain.ErrInvalidInput)
	}
}

// ComputeChange compares current against previous. Only exact equality is neutral.
func ComputeChange(current, previous decimal.Decimal) domain.ChangeMetric {
	delta := current.Sub(previous)

	percentage := decimal.Zero
	if !previous.IsZero() {
		percentage = delta.Div(previous).Mul(hundred)
	}

	direction := domain.DirectionNeutral
	switch delta.Sign() {
	case 1:
		direction = domain.DirectionUp
	case -1:
		direction = domain.DirectionDown
	}

	return domain.ChangeMetric{Delta: delta, Percentage: percentage, Direction: direction}
}

// ComputeTrendSeries compares each record of a newest-first series with the
// one right after it. The oldest record has nothing to compare against and
// gets a neutral zero change.
func ComputeTrendSeries(series domain.RateSeries) []domain.TrendPoint {
	points := make([]domain.TrendPoint, len(series))
	for i, rec := range series {
		change := domain.ChangeMetric{Delta: decimal.Zero, Percentage: decimal.Zero, Direction: domain.DirectionNeutral}
		if i+1 < len(series) {
			change = ComputeChange(rec.Value, series[i+1].Value)
		}
		points[i] = domain.TrendPoint{Record: rec, Change: change}
	}
	return points
}

// ConversionTable converts every amount at the given rate.
func ConversionTable(amounts []decimal.Decimal, rate decimal.Decimal, direction ConversionDirection) ([]domain.ConversionRow, error) {
	rows := make([]domain.ConversionRow, 0, len(amounts))
	for _, a := range amounts {
		res, err := Convert(a, rate, direction)
		if err != nil {
			return nil, err
		}
		rows = append(rows, domain.ConversionRow{Amount: a, Result: res})
	}
	return rows, nil
}

func amounts(vals ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}
