package rate

import (
	"errors"
	"strconv"
	"time"

	"trm/internal/ratecalc"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const MaxTrendLimit = 60

const (
	// amounts are bounded before any arithmetic; decimal materializes every
	// digit of its exponent when rendered
	maxAmountExponent = 15
	minAmountExponent = -18
	maxAmountDecimals = 8
)

var maxAmount = decimal.New(1, maxAmountExponent)

var (
	ErrDateRequired     = errors.New("date is required")
	ErrDateMalformed    = errors.New("date must be formatted as YYYY-MM-DD")
	ErrDateOutOfBounds  = errors.New("date is outside the published range")
	ErrRangeInverted    = errors.New("range start must not be after end")
	ErrAmountRequired   = errors.New("amount is required")
	ErrAmountMalformed  = errors.New("amount must be a number")
	ErrAmountNegative   = errors.New("amount must not be negative")
	ErrDirectionInvalid = errors.New("direction must be usd-cop or cop-usd")
	ErrLimitMalformed   = errors.New("limit must be a positive integer")
)

// FirstPublished is the first day the rate series covers.
var FirstPublished = civil.Date{Year: 1991, Month: time.November, Day: 27}

// QueryValidator checks user supplied query values. Dates are bounded by the
// first published day and by today in Bogotá.
type QueryValidator struct {
	min      civil.Date
	location *time.Location
	now      func() time.Time
}

func (v *QueryValidator) ParseDate(raw string) (civil.Date, error) {
	if raw == "" {
		return civil.Date{}, ErrDateRequired
	}
	d, err := civil.ParseDate(raw)
	if err != nil || !d.IsValid() {
		return civil.Date{}, ErrDateMalformed
	}
	if d.Before(v.min) || d.After(v.Today()) {
		return civil.Date{}, ErrDateOutOfBounds
	}
	return d, nil
}

func (v *QueryValidator) ParseRange(rawStart, rawEnd string) (civil.Date, civil.Date, error) {
	start, err := v.ParseDate(rawStart)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	end, err := v.ParseDate(rawEnd)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	if start.After(end) {
		return civil.Date{}, civil.Date{}, ErrRangeInverted
	}
	return start, end, nil
}

func (v *QueryValidator) ParseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, ErrAmountRequired
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ErrAmountMalformed
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < minAmountExponent {
		return decimal.Decimal{}, ErrAmountMalformed
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, ErrAmountNegative
	}
	if amount.GreaterThan(maxAmount) || !amount.Equal(amount.Truncate(maxAmountDecimals)) {
		return decimal.Decimal{}, ErrAmountMalformed
	}
	return amount, nil
}

// ParseDirection defaults to usd-cop when raw is empty.
func (v *QueryValidator) ParseDirection(raw string) (ratecalc.ConversionDirection, error) {
	if raw == "" {
		return ratecalc.ToQuote, nil
	}
	dir, err := ratecalc.ParseConversionDirection(raw)
	if err != nil {
		return "", ErrDirectionInvalid
	}
	return dir, nil
}

// ParseLimit defaults to DefaultTrendLimit when raw is empty and caps the
// result at MaxTrendLimit.
func (v *QueryValidator) ParseLimit(raw string) (int, error) {
	if raw == "" {
		return DefaultTrendLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, ErrLimitMalformed
	}
	return min(n, MaxTrendLimit), nil
}

func (v *QueryValidator) Today() civil.Date {
	return civil.DateOf(v.now().In(v.location))
}

func NewValidator() *QueryValidator {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		// Colombia has kept UTC-5 without daylight saving since 1993
		loc = time.FixedZone("COT", -5*60*60)
	}
	return &QueryValidator{min: FirstPublished, location: loc, now: time.Now}
}
