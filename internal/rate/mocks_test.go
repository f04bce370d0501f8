package rate

import (
	"context"
	"time"

	"trm/internal/domain"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) FetchLatest(ctx context.Context) (domain.RateRecord, error) {
	args := m.Called(ctx)
	rec, _ := args.Get(0).(domain.RateRecord)
	return rec, args.Error(1)
}

func (m *MockRateClient) FetchRecent(ctx context.Context, n int) (domain.RateSeries, error) {
	args := m.Called(ctx, n)
	series, _ := args.Get(0).(domain.RateSeries)
	return series, args.Error(1)
}

func (m *MockRateClient) FetchByDate(ctx context.Context, date civil.Date) (domain.RateRecord, bool, error) {
	args := m.Called(ctx, date)
	rec, _ := args.Get(0).(domain.RateRecord)
	return rec, args.Bool(1), args.Error(2)
}

func (m *MockRateClient) FetchRange(ctx context.Context, start, end civil.Date) (domain.RateSeries, error) {
	args := m.Called(ctx, start, end)
	series, _ := args.Get(0).(domain.RateSeries)
	return series, args.Error(1)
}

type MockLookupCache struct{ mock.Mock }

func (m *MockLookupCache) GetByDate(date civil.Date) (domain.RateRecord, bool) {
	args := m.Called(date)
	rec, _ := args.Get(0).(domain.RateRecord)
	return rec, args.Bool(1)
}

func (m *MockLookupCache) SetByDate(date civil.Date, rec domain.RateRecord) {
	m.Called(date, rec)
}

func (m *MockLookupCache) GetRange(start, end civil.Date) (domain.RateSeries, bool) {
	args := m.Called(start, end)
	series, _ := args.Get(0).(domain.RateSeries)
	return series, args.Bool(1)
}

func (m *MockLookupCache) SetRange(start, end civil.Date, series domain.RateSeries) {
	m.Called(start, end, series)
}

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- fixtures ---

func day(d int) civil.Date {
	return civil.Date{Year: 2024, Month: time.January, Day: d}
}

func record(d int, value string) domain.RateRecord {
	return domain.RateRecord{
		Value:     decimal.RequireFromString(value),
		Unit:      domain.QuoteUnit,
		ValidFrom: day(d),
		ValidTo:   day(d),
	}
}
