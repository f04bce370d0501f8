package rate

import (
	"time"

	"trm/internal/domain"
	"trm/internal/ratecalc"

	"github.com/shopspring/decimal"
)

// Snapshot is the state as presented to readers: the current rate and its
// change against the previous business day.
type Snapshot struct {
	Current   *domain.RateRecord
	Previous  *domain.RateRecord
	Change    *domain.ChangeMetric
	Loading   bool
	Error     string
	UpdatedAt time.Time
	Records   int
}

// DateLookup is a historical record compared against the current rate.
type DateLookup struct {
	Record        domain.RateRecord
	VersusCurrent *domain.ChangeMetric
	CurrentRecord *domain.RateRecord
}

type Conversion struct {
	Amount    decimal.Decimal
	Result    decimal.Decimal
	Direction ratecalc.ConversionDirection
	Rate      domain.RateRecord
}

type ConversionTable struct {
	Direction ratecalc.ConversionDirection
	Rate      domain.RateRecord
	Rows      []domain.ConversionRow
}
