package rate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"trm/internal/adapters"
	"trm/internal/domain"
	"trm/internal/platform/metrics"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultHistorySize = 60

// ErrRefreshSuperseded is returned by Refresh when a refresh started later
// finished first or is still running; its result was discarded.
var ErrRefreshSuperseded = errors.New("refresh superseded by a newer one")

// State is a snapshot of the rolling series. Current equals Historical[0]
// once a refresh succeeded.
type State struct {
	Current    *domain.RateRecord
	Historical domain.RateSeries
	Loading    bool
	Error      string
	UpdatedAt  time.Time
	Generation uint64
}

// Previous returns the business day before Current.
func (s State) Previous() (domain.RateRecord, bool) {
	if len(s.Historical) < 2 {
		return domain.RateRecord{}, false
	}
	return s.Historical[1], true
}

func (s State) clone() State {
	out := s
	if s.Current != nil {
		cur := *s.Current
		out.Current = &cur
	}
	out.Historical = s.Historical.Clone()
	return out
}

// Store owns the single in-memory view of the series. Only Refresh writes it;
// readers get copies through State or Subscribe.
type Store struct {
	client      adapters.RateClient
	cache       adapters.LookupCache
	historySize int
	now         func() time.Time

	mu         sync.RWMutex
	state      State
	generation uint64

	subsMu  sync.Mutex
	subs    map[uint64]chan State
	nextSub uint64
}

// Refresh fetches the latest record and the recent series concurrently and
// publishes them together. On failure only Loading and Error change.
func (s *Store) Refresh(ctx context.Context) error {
	gen := s.begin()
	log := logrus.WithField("generation", gen)

	var (
		latest domain.RateRecord
		recent domain.RateSeries
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec, err := s.client.FetchLatest(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch latest rate: %w", err)
		}
		latest = rec
		return nil
	})
	g.Go(func() error {
		series, err := s.client.FetchRecent(gctx, s.historySize)
		if err != nil {
			return fmt.Errorf("failed to fetch recent rates: %w", err)
		}
		recent = series
		return nil
	})
	fetchErr := g.Wait()

	applied := s.complete(gen, func(st *State) {
		st.Loading = false
		if fetchErr != nil {
			st.Error = fetchErr.Error()
			return
		}
		current, historical := reconcile(latest, recent, s.historySize)
		st.Current = &current
		st.Historical = historical
		st.Error = ""
		st.UpdatedAt = s.now()
	})

	switch {
	case !applied:
		metrics.Refreshes.WithLabelValues(metrics.OutcomeSuperseded).Inc()
		log.Debug("discarding result of superseded refresh")
		if fetchErr != nil {
			return fmt.Errorf("%w: %w", ErrRefreshSuperseded, fetchErr)
		}
		return ErrRefreshSuperseded
	case fetchErr != nil:
		metrics.Refreshes.WithLabelValues(metrics.OutcomeError).Inc()
		return fetchErr
	default:
		metrics.Refreshes.WithLabelValues(metrics.OutcomeSuccess).Inc()
		st := s.State()
		metrics.CurrentRate.Set(st.Current.Value.InexactFloat64())
		log.WithFields(logrus.Fields{"valid_from": st.Current.ValidFrom, "records": len(st.Historical)}).Info("rate state refreshed")
		return nil
	}
}

// QueryByDate looks up the record covering date without touching the state.
// ok is false for days without a published rate.
func (s *Store) QueryByDate(ctx context.Context, date civil.Date) (domain.RateRecord, bool, error) {
	if s.cache != nil {
		if rec, ok := s.cache.GetByDate(date); ok {
			metrics.LookupCache.WithLabelValues("date", "hit").Inc()
			return rec, true, nil
		}
		metrics.LookupCache.WithLabelValues("date", "miss").Inc()
	}

	rec, ok, err := s.client.FetchByDate(ctx, date)
	if err != nil {
		return domain.RateRecord{}, false, fmt.Errorf("failed to query rate for %s: %w", date, err)
	}
	if ok && s.cache != nil {
		s.cache.SetByDate(date, rec)
	}
	return rec, ok, nil
}

// QueryRange returns the records published in [start, end], oldest first,
// without touching the state.
func (s *Store) QueryRange(ctx context.Context, start, end civil.Date) (domain.RateSeries, error) {
	if start.After(end) {
		return nil, fmt.Errorf("range start %s is after end %s: %w", start, end, domain.ErrInvalidInput)
	}

	cacheable := s.cache != nil && s.settledBefore(end)
	if cacheable {
		if series, ok := s.cache.GetRange(start, end); ok {
			metrics.LookupCache.WithLabelValues("range", "hit").Inc()
			return series, nil
		}
		metrics.LookupCache.WithLabelValues("range", "miss").Inc()
	}

	series, err := s.client.FetchRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates from %s to %s: %w", start, end, err)
	}
	if cacheable {
		s.cache.SetRange(start, end, series)
	}
	return series, nil
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe returns a channel receiving the current snapshot followed by every
// published one. A subscriber that falls behind only sees the latest
// snapshot. Call the returned func to unsubscribe.
func (s *Store) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	s.mu.RLock()
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.state.clone()
	s.subsMu.Unlock()
	s.mu.RUnlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subsMu.Unlock()
		})
	}
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state.Loading = true
	s.state.Error = ""
	s.publishLocked()
	return s.generation
}

// complete applies fn only if gen is still the latest issued generation.
func (s *Store) complete(gen uint64, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	fn(&s.state)
	s.state.Generation = gen
	s.publishLocked()
	return true
}

// publishLocked must be called with mu held so subscribers observe snapshots
// in order.
func (s *Store) publishLocked() {
	snap := s.state.clone()
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

// settledBefore reports whether every record up to end is already published,
// i.e. end precedes the current record.
func (s *Store) settledBefore(end civil.Date) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Current != nil && end.Before(s.state.Current.ValidFrom)
}

// reconcile makes the newer of the two fetches authoritative. A rate
// published between the two requests is prepended to the series.
func reconcile(latest domain.RateRecord, recent domain.RateSeries, size int) (domain.RateRecord, domain.RateSeries) {
	historical := recent.Clone()
	if len(historical) > 0 && !latest.ValidFrom.After(historical[0].ValidFrom) {
		return historical[0], historical
	}
	historical = append(domain.RateSeries{latest}, historical...)
	if size > 0 && len(historical) > size {
		historical = historical[:size]
	}
	return latest, historical
}

func NewStore(client adapters.RateClient, cache adapters.LookupCache, historySize int) *Store {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Store{
		client:      client,
		cache:       cache,
		historySize: historySize,
		now:         time.Now,
		state:       State{Loading: true},
		subs:        make(map[uint64]chan State),
	}
}
