package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const (
	BaseUnit  = "USD"
	QuoteUnit = "COP"
)

// RateRecord is one business day's published rate and the calendar interval
// during which it is authoritative.
type RateRecord struct {
	Value     decimal.Decimal
	Unit      string
	ValidFrom civil.Date
	ValidTo   civil.Date
}

// Contains reports whether date falls inside [ValidFrom, ValidTo].
func (r RateRecord) Contains(date civil.Date) bool {
	return !date.Before(r.ValidFrom) && !date.After(r.ValidTo)
}

// RateSeries is ordered newest first unless the producer says otherwise.
type RateSeries []RateRecord

func (s RateSeries) Clone() RateSeries {
	if s == nil {
		return nil
	}
	out := make(RateSeries, len(s))
	copy(out, s)
	return out
}

type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

type ChangeMetric struct {
	Delta      decimal.Decimal
	Percentage decimal.Decimal
	Direction  Direction
}

type TrendPoint struct {
	Record RateRecord
	Change ChangeMetric
}

type ConversionRow struct {
	Amount decimal.Decimal
	Result decimal.Decimal
}
