package rate

import (
	"context"
	"errors"
	"fmt"

	"trm/internal/domain"
	"trm/internal/ratecalc"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const DefaultTrendLimit = 14

var ErrNoCurrentRate = errors.New("no current rate available yet")

type Service struct {
	store *Store
}

func (s *Service) Snapshot() Snapshot {
	return SnapshotOf(s.store.State())
}

func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	err := s.store.Refresh(ctx)
	return s.Snapshot(), err
}

// Subscribe streams state changes; convert them with SnapshotOf.
func (s *Service) Subscribe() (<-chan State, func()) {
	return s.store.Subscribe()
}

// Trend returns the limit most recent rows of the historical series, each
// compared with the business day before it.
func (s *Service) Trend(limit int) ([]domain.TrendPoint, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("trend limit must be positive, got %d: %w", limit, domain.ErrInvalidInput)
	}
	points := ratecalc.ComputeTrendSeries(s.store.State().Historical)
	if len(points) > limit {
		points = points[:limit]
	}
	return points, nil
}

// LookupDate returns the record covering date. found is false on days
// without a published rate.
func (s *Service) LookupDate(ctx context.Context, date civil.Date) (lookup DateLookup, found bool, err error) {
	rec, found, err := s.store.QueryByDate(ctx, date)
	if err != nil || !found {
		return DateLookup{}, found, err
	}

	lookup = DateLookup{Record: rec}
	if cur := s.store.State().Current; cur != nil {
		change := ratecalc.ComputeChange(rec.Value, cur.Value)
		lookup.VersusCurrent = &change
		lookup.CurrentRecord = cur
	}
	return lookup, true, nil
}

func (s *Service) Range(ctx context.Context, start, end civil.Date) (domain.RateSeries, error) {
	return s.store.QueryRange(ctx, start, end)
}

// Convert converts amount at the current rate.
func (s *Service) Convert(amount decimal.Decimal, direction ratecalc.ConversionDirection) (Conversion, error) {
	cur := s.store.State().Current
	if cur == nil {
		return Conversion{}, ErrNoCurrentRate
	}
	result, err := ratecalc.Convert(amount, cur.Value, direction)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Amount: amount, Result: result, Direction: direction, Rate: *cur}, nil
}

// ConversionTable converts the fixed reference amounts for direction at the
// current rate.
func (s *Service) ConversionTable(direction ratecalc.ConversionDirection) (ConversionTable, error) {
	cur := s.store.State().Current
	if cur == nil {
		return ConversionTable{}, ErrNoCurrentRate
	}
	amounts := ratecalc.DefaultUSDAmounts
	if direction == ratecalc.FromQuote {
		amounts = ratecalc.DefaultCOPAmounts
	}
	rows, err := ratecalc.ConversionTable(amounts, cur.Value, direction)
	if err != nil {
		return ConversionTable{}, err
	}
	return ConversionTable{Direction: direction, Rate: *cur, Rows: rows}, nil
}

// SnapshotOf derives the change against the previous business day. With no
// earlier day the current rate is compared with itself.
func SnapshotOf(st State) Snapshot {
	snap := Snapshot{
		Current:   st.Current,
		Loading:   st.Loading,
		Error:     st.Error,
		UpdatedAt: st.UpdatedAt,
		Records:   len(st.Historical),
	}
	if st.Current == nil {
		return snap
	}
	previous := *st.Current
	if prev, ok := st.Previous(); ok {
		previous = prev
		snap.Previous = &prev
	}
	change := ratecalc.ComputeChange(st.Current.Value, previous.Value)
	snap.Change = &change
	return snap
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}
