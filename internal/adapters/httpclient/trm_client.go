package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trm/internal/domain"
	"trm/internal/platform/metrics"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"
)

const (
	opLatest = "latest"
	opRecent = "recent"
	opByDate = "by_date"
	opRange  = "range"
)

const defaultMaxRangeRows = 5000

// TRMClient queries the Socrata dataset publishing the daily TRM.
type TRMClient struct {
	http         *http.Client
	baseURL      string
	appToken     string
	maxRangeRows int
}

type Option func(*TRMClient)

// WithAppToken sends the Socrata application token with every request.
func WithAppToken(token string) Option {
	return func(c *TRMClient) { c.appToken = token }
}

// WithMaxRangeRows caps the rows requested by FetchRange.
func WithMaxRangeRows(n int) Option {
	return func(c *TRMClient) {
		if n > 0 {
			c.maxRangeRows = n
		}
	}
}

// FetchLatest returns the most recently published record.
func (c *TRMClient) FetchLatest(ctx context.Context) (domain.RateRecord, error) {
	params := url.Values{}
	params.Set("$order", "vigenciadesde DESC")
	params.Set("$limit", "1")

	series, err := c.fetch(ctx, opLatest, params)
	if err != nil {
		return domain.RateRecord{}, err
	}
	if len(series) == 0 {
		return domain.RateRecord{}, fmt.Errorf("failed to fetch latest rate: %w", domain.ErrEmptyResult)
	}
	return sortDescending(series)[0], nil
}

// FetchRecent returns up to n records, most recent first.
func (c *TRMClient) FetchRecent(ctx context.Context, n int) (domain.RateSeries, error) {
	if n <= 0 {
		return nil, fmt.Errorf("recent rates limit must be positive, got %d: %w", n, domain.ErrInvalidInput)
	}
	params := url.Values{}
	params.Set("$order", "vigenciadesde DESC")
	params.Set("$limit", strconv.Itoa(n))

	series, err := c.fetch(ctx, opRecent, params)
	if err != nil {
		return nil, err
	}
	return dedupe(opRecent, sortDescending(series)), nil
}

// FetchByDate returns the record whose validity interval contains date.
// ok is false when no record covers it, which is the normal outcome for days
// nothing was published for.
func (c *TRMClient) FetchByDate(ctx context.Context, date civil.Date) (rec domain.RateRecord, ok bool, err error) {
	d := date.String()
	params := url.Values{}
	params.Set("$where", fmt.Sprintf("vigenciadesde <= '%s' AND vigenciahasta >= '%s'", d, d))
	params.Set("$order", "vigenciadesde DESC")
	params.Set("$limit", "1")

	series, err := c.fetch(ctx, opByDate, params)
	if err != nil {
		return domain.RateRecord{}, false, err
	}
	for _, r := range series {
		if r.Contains(date) {
			return r, true, nil
		}
		dropRecord(opByDate, fmt.Errorf("record valid %s..%s does not cover %s", r.ValidFrom, r.ValidTo, d), nil)
	}
	return domain.RateRecord{}, false, nil
}

// FetchRange returns records published in [start, end], oldest first.
func (c *TRMClient) FetchRange(ctx context.Context, start, end civil.Date) (domain.RateSeries, error) {
	if start.After(end) {
		return nil, fmt.Errorf("range start %s is after end %s: %w", start, end, domain.ErrInvalidInput)
	}
	params := url.Values{}
	params.Set("$where", fmt.Sprintf("vigenciadesde >= '%s' AND vigenciadesde <= '%s'", start, end))
	params.Set("$order", "vigenciadesde ASC")
	params.Set("$limit", strconv.Itoa(c.maxRangeRows))

	series, err := c.fetch(ctx, opRange, params)
	if err != nil {
		return nil, err
	}
	return dedupe(opRange, sortAscending(series)), nil
}

func (c *TRMClient) fetch(ctx context.Context, op string, params url.Values) (series domain.RateSeries, err error) {
	started := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		} else if len(series) == 0 {
			outcome = metrics.OutcomeEmpty
		}
		metrics.GatewayRequestDuration.WithLabelValues(op, outcome).Observe(time.Since(started).Seconds())
	}()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute %s request: %w", domain.ErrNetwork, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d for %s request: %s", domain.ErrNetwork, resp.StatusCode, op, resp.Status)
	}

	var raws []rawRecord
	if err = json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %s response interrupted: %w", domain.ErrNetwork, op, ctxErr)
		}
		return nil, fmt.Errorf("%w: failed to decode %s response: %w", domain.ErrMalformedResponse, op, err)
	}
	if raws == nil {
		return nil, fmt.Errorf("%w: %s response is null", domain.ErrMalformedResponse, op)
	}

	series = make(domain.RateSeries, 0, len(raws))
	for _, raw := range raws {
		rec, parseErr := raw.toRecord()
		if parseErr != nil {
			dropRecord(op, parseErr, logrus.Fields{"valor": raw.Valor, "vigenciadesde": raw.VigenciaDesde, "vigenciahasta": raw.VigenciaHasta})
			continue
		}
		series = append(series, rec)
	}
	return series, nil
}

func dropRecord(op string, err error, fields logrus.Fields) {
	metrics.GatewayDroppedRecords.WithLabelValues(op).Inc()
	entry := logrus.WithError(err).WithField("operation", op)
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Warn("dropping invalid rate record")
}

func NewTRMClient(httpClient *http.Client, baseURL string, opts ...Option) *TRMClient {
	c := &TRMClient{http: httpClient, baseURL: baseURL, maxRangeRows: defaultMaxRangeRows}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
