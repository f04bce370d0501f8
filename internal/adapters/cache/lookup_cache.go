package cache

import (
	"fmt"
	"time"

	"trm/internal/domain"

	"cloud.google.com/go/civil"
	"github.com/dgraph-io/ristretto"
)

// RistrettoLookupCache keeps the results of historical lookups. Published
// rates never change, so entries only expire to bound staleness of absent
// data upstream. Capacity is counted in records: a cached range costs one
// per record it holds.
type RistrettoLookupCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewLookupCache(maxItems int64, ttl time.Duration) (*RistrettoLookupCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// costs are record counts only
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create lookup cache failed: %w", err)
	}
	return &RistrettoLookupCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoLookupCache) GetByDate(date civil.Date) (domain.RateRecord, bool) {
	if v, ok := c.cache.Get(dateKey(date)); ok {
		rec, ok := v.(domain.RateRecord)
		return rec, ok
	}
	return domain.RateRecord{}, false
}

func (c *RistrettoLookupCache) SetByDate(date civil.Date, rec domain.RateRecord) {
	c.cache.SetWithTTL(dateKey(date), rec, 1, c.ttl)
}

func (c *RistrettoLookupCache) GetRange(start, end civil.Date) (domain.RateSeries, bool) {
	if v, ok := c.cache.Get(rangeKey(start, end)); ok {
		series, ok := v.(domain.RateSeries)
		return series.Clone(), ok
	}
	return nil, false
}

func (c *RistrettoLookupCache) SetRange(start, end civil.Date, series domain.RateSeries) {
	c.cache.SetWithTTL(rangeKey(start, end), series.Clone(), int64(max(1, len(series))), c.ttl)
}

func (c *RistrettoLookupCache) Close() { c.cache.Close() }

func dateKey(d civil.Date) string { return "date:" + d.String() }

func rangeKey(start, end civil.Date) string { return "range:" + start.String() + ":" + end.String() }
