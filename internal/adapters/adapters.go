package adapters

import (
	"context"

	"trm/internal/domain"

	"cloud.google.com/go/civil"
)

type RateClient interface {
	FetchLatest(ctx context.Context) (domain.RateRecord, error)
	FetchRecent(ctx context.Context, n int) (domain.RateSeries, error)
	FetchByDate(ctx context.Context, date civil.Date) (domain.RateRecord, bool, error)
	FetchRange(ctx context.Context, start, end civil.Date) (domain.RateSeries, error)
}

type LookupCache interface {
	GetByDate(date civil.Date) (domain.RateRecord, bool)
	SetByDate(date civil.Date, rec domain.RateRecord)
	GetRange(start, end civil.Date) (domain.RateSeries, bool)
	SetRange(start, end civil.Date, series domain.RateSeries)
}
