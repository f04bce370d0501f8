package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trm/internal/domain"
	"trm/internal/rate"
	"trm/internal/ratecalc"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockValidator struct{ mock.Mock }

func (m *MockValidator) ParseDate(raw string) (civil.Date, error) {
	args := m.Called(raw)
	d, _ := args.Get(0).(civil.Date)
	return d, args.Error(1)
}

func (m *MockValidator) ParseRange(rawStart, rawEnd string) (civil.Date, civil.Date, error) {
	args := m.Called(rawStart, rawEnd)
	start, _ := args.Get(0).(civil.Date)
	end, _ := args.Get(1).(civil.Date)
	return start, end, args.Error(2)
}

func (m *MockValidator) ParseAmount(raw string) (decimal.Decimal, error) {
	args := m.Called(raw)
	amount, _ := args.Get(0).(decimal.Decimal)
	return amount, args.Error(1)
}

func (m *MockValidator) ParseDirection(raw string) (ratecalc.ConversionDirection, error) {
	args := m.Called(raw)
	dir, _ := args.Get(0).(ratecalc.ConversionDirection)
	return dir, args.Error(1)
}

func (m *MockValidator) ParseLimit(raw string) (int, error) {
	args := m.Called(raw)
	return args.Int(0), args.Error(1)
}

type MockService struct{ mock.Mock }

func (m *MockService) Snapshot() rate.Snapshot {
	args := m.Called()
	snap, _ := args.Get(0).(rate.Snapshot)
	return snap
}

func (m *MockService) Refresh(ctx context.Context) (rate.Snapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(rate.Snapshot)
	return snap, args.Error(1)
}

func (m *MockService) Subscribe() (<-chan rate.State, func()) {
	args := m.Called()
	ch, _ := args.Get(0).(chan rate.State)
	unsubscribe, _ := args.Get(1).(func())
	return ch, unsubscribe
}

func (m *MockService) Trend(limit int) ([]domain.TrendPoint, error) {
	args := m.Called(limit)
	points, _ := args.Get(0).([]domain.TrendPoint)
	return points, args.Error(1)
}

func (m *MockService) LookupDate(ctx context.Context, date civil.Date) (rate.DateLookup, bool, error) {
	args := m.Called(ctx, date)
	lookup, _ := args.Get(0).(rate.DateLookup)
	return lookup, args.Bool(1), args.Error(2)
}

func (m *MockService) Range(ctx context.Context, start, end civil.Date) (domain.RateSeries, error) {
	args := m.Called(ctx, start, end)
	series, _ := args.Get(0).(domain.RateSeries)
	return series, args.Error(1)
}

func (m *MockService) Convert(amount decimal.Decimal, direction ratecalc.ConversionDirection) (rate.Conversion, error) {
	args := m.Called(amount, direction)
	conv, _ := args.Get(0).(rate.Conversion)
	return conv, args.Error(1)
}

func (m *MockService) ConversionTable(direction ratecalc.ConversionDirection) (rate.ConversionTable, error) {
	args := m.Called(direction)
	table, _ := args.Get(0).(rate.ConversionTable)
	return table, args.Error(1)
}

type errorJSON struct {
	Error string `json:"error"`
}

func day(d int) civil.Date {
	return civil.Date{Year: 2024, Month: time.January, Day: d}
}

func record(d int, value string) domain.RateRecord {
	return domain.RateRecord{Value: decimal.RequireFromString(value), Unit: domain.QuoteUnit, ValidFrom: day(d), ValidTo: day(d)}
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func requireError(t *testing.T, rr *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, msg, ej.Error)
}

// --- GetState / Refresh ---

func loadedSnapshot() rate.Snapshot {
	cur, prev := record(2, "4100.5"), record(1, "4050")
	change := ratecalc.ComputeChange(cur.Value, prev.Value)
	return rate.Snapshot{
		Current:   &cur,
		Previous:  &prev,
		Change:    &change,
		Records:   2,
		UpdatedAt: time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
	}
}

func TestHandler_GetState_Loaded(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(new(MockValidator), mockService)
	mockService.On("Snapshot").Return(loadedSnapshot()).Once()

	rr := httptest.NewRecorder()
	h.GetState(rr, httptest.NewRequest(http.MethodGet, "/trm", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res StateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.False(t, res.Loading)
	require.Equal(t, "4.100,50", res.Current.Formatted)
	require.Equal(t, "martes, 2 de enero de 2024", res.Current.LongDate)
	require.Equal(t, "Cuatro Mil Cien Pesos Con Cincuenta Centavos", res.Words)
	require.Equal(t, "2024-01-01", res.Previous.ValidFrom)
	require.Equal(t, "up", res.Change.Direction)
	require.Equal(t, "50,50", res.Change.DeltaFormatted)
	require.Equal(t, 2, res.Records)
	mockService.AssertExpectations(t)
}

func TestHandler_GetState_Loading(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(new(MockValidator), mockService)
	mockService.On("Snapshot").Return(rate.Snapshot{Loading: true}).Once()

	rr := httptest.NewRecorder()
	h.GetState(rr, httptest.NewRequest(http.MethodGet, "/trm", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Equal(t, true, raw["loading"])
	require.NotContains(t, raw, "current")
	require.NotContains(t, raw, "updated_at")
}

func TestHandler_Refresh(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", err: nil, wantStatus: http.StatusOK},
		{name: "gateway failure", err: fmt.Errorf("failed to fetch latest rate: %w", domain.ErrNetwork), wantStatus: http.StatusBadGateway},
		{name: "malformed response", err: domain.ErrMalformedResponse, wantStatus: http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewRateHandler(new(MockValidator), mockService)
			snap := loadedSnapshot()
			if tc.err != nil {
				snap.Error = tc.err.Error()
			}
			mockService.On("Refresh", mock.Anything).Return(snap, tc.err).Once()

			rr := httptest.NewRecorder()
			h.Refresh(rr, httptest.NewRequest(http.MethodPost, "/trm/refresh", nil))

			require.Equal(t, tc.wantStatus, rr.Code)
			var res StateResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
			require.NotNil(t, res.Current)
			if tc.err != nil {
				require.Equal(t, tc.err.Error(), res.Error)
			} else {
				require.Empty(t, res.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Refresh_Superseded(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(new(MockValidator), mockService)
	mockService.On("Refresh", mock.Anything).Return(rate.Snapshot{Loading: true}, rate.ErrRefreshSuperseded).Once()

	rr := httptest.NewRecorder()
	h.Refresh(rr, httptest.NewRequest(http.MethodPost, "/trm/refresh", nil))

	requireError(t, rr, http.StatusConflict, rate.ErrRefreshSuperseded.Error())
}

// --- GetHistory ---

func TestHandler_GetHistory_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	points := ratecalc.ComputeTrendSeries(domain.RateSeries{record(3, "4100"), record(2, "4150")})
	mockValidator.On("ParseLimit", "2").Return(2, nil).Once()
	mockService.On("Trend", 2).Return(points, nil).Once()

	rr := httptest.NewRecorder()
	h.GetHistory(rr, httptest.NewRequest(http.MethodGet, "/trm/history?limit=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res HistoryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Points, 2)
	require.Equal(t, "down", res.Points[0].Change.Direction)
	require.Equal(t, "-50,00", res.Points[0].Change.DeltaFormatted)
	require.Equal(t, "neutral", res.Points[1].Change.Direction)
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestHandler_GetHistory_InvalidLimit(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)
	mockValidator.On("ParseLimit", "x").Return(0, rate.ErrLimitMalformed).Once()

	rr := httptest.NewRecorder()
	h.GetHistory(rr, httptest.NewRequest(http.MethodGet, "/trm/history?limit=x", nil))

	requireError(t, rr, http.StatusBadRequest, rate.ErrLimitMalformed.Error())
	mockService.AssertNotCalled(t, "Trend", mock.Anything)
}

// --- GetByDate ---

func TestHandler_GetByDate_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "malformed", err: rate.ErrDateMalformed},
		{name: "out of bounds", err: rate.ErrDateOutOfBounds},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockValidator := new(MockValidator)
			mockService := new(MockService)
			h := NewRateHandler(mockValidator, mockService)
			mockValidator.On("ParseDate", "2024-13-01").Return(civil.Date{}, tc.err).Once()

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/trm/date/2024-13-01", nil), "date", " 2024-13-01 ")
			rr := httptest.NewRecorder()
			h.GetByDate(rr, req)

			requireError(t, rr, http.StatusBadRequest, tc.err.Error())
			mockService.AssertNotCalled(t, "LookupDate", mock.Anything, mock.Anything)
			mockValidator.AssertExpectations(t)
		})
	}
}

func TestHandler_GetByDate_NonBusinessDay(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)
	mockValidator.On("ParseDate", "2024-01-06").Return(day(6), nil).Once()
	mockService.On("LookupDate", mock.Anything, day(6)).Return(rate.DateLookup{}, false, nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/trm/date/2024-01-06", nil), "date", "2024-01-06")
	rr := httptest.NewRecorder()
	h.GetByDate(rr, req)

	requireError(t, rr, http.StatusNotFound, "No se encontró TRM para esta fecha. Es posible que sea un día no hábil.")
	mockService.AssertExpectations(t)
}

func TestHandler_GetByDate_GatewayError(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)
	mockValidator.On("ParseDate", "2024-01-02").Return(day(2), nil).Once()
	mockService.On("LookupDate", mock.Anything, day(2)).Return(rate.DateLookup{}, false, domain.ErrNetwork).Once()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/trm/date/2024-01-02", nil), "date", "2024-01-02")
	rr := httptest.NewRecorder()
	h.GetByDate(rr, req)

	requireError(t, rr, http.StatusBadGateway, "Error al consultar la TRM. Intente nuevamente.")
}

func TestHandler_GetByDate_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	cur := record(3, "4100")
	change := ratecalc.ComputeChange(decimal.NewFromInt(4000), cur.Value)
	lookup := rate.DateLookup{Record: record(2, "4000"), VersusCurrent: &change, CurrentRecord: &cur}
	mockValidator.On("ParseDate", "2024-01-02").Return(day(2), nil).Once()
	mockService.On("LookupDate", mock.Anything, day(2)).Return(lookup, true, nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/trm/date/2024-01-02", nil), "date", "2024-01-02")
	rr := httptest.NewRecorder()
	h.GetByDate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetByDateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "4.000,00", res.Record.Formatted)
	require.Equal(t, "02/01/2024", res.Record.ShortDate)
	require.Equal(t, "Cuatro Mil Pesos", res.Words)
	require.Equal(t, "2024-01-03", res.Current.ValidFrom)
	require.Equal(t, "down", res.VersusCurrent.Direction)
	require.Equal(t, "-100,00", res.VersusCurrent.DeltaFormatted)
}

// --- GetRange ---

func TestHandler_GetRange_Inverted(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)
	mockValidator.On("ParseRange", "2024-01-05", "2024-01-02").Return(civil.Date{}, civil.Date{}, rate.ErrRangeInverted).Once()

	rr := httptest.NewRecorder()
	h.GetRange(rr, httptest.NewRequest(http.MethodGet, "/trm/range?start=2024-01-05&end=2024-01-02", nil))

	requireError(t, rr, http.StatusBadRequest, rate.ErrRangeInverted.Error())
	mockService.AssertNotCalled(t, "Range", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetRange_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)
	mockValidator.On("ParseRange", "2024-01-01", "2024-01-05").Return(day(1), day(5), nil).Once()
	mockService.On("Range", mock.Anything, day(1), day(5)).Return(domain.RateSeries{record(2, "4000"), record(3, "4010")}, nil).Once()

	rr := httptest.NewRecorder()
	h.GetRange(rr, httptest.NewRequest(http.MethodGet, "/trm/range?start=2024-01-01&end=2024-01-05", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res RangeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "2024-01-01", res.Start)
	require.Equal(t, 2, res.Count)
	require.Equal(t, "2024-01-02", res.Records[0].ValidFrom)
	require.Equal(t, "4.010,00", res.Records[1].Formatted)
}

func TestHandler_GetRange_GatewayError(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)
	mockValidator.On("ParseRange", "2024-01-01", "2024-01-05").Return(day(1), day(5), nil).Once()
	mockService.On("Range", mock.Anything, day(1), day(5)).Return(nil, errors.New("boom")).Once()

	rr := httptest.NewRecorder()
	h.GetRange(rr, httptest.NewRequest(http.MethodGet, "/trm/range?start=2024-01-01&end=2024-01-05", nil))

	requireError(t, rr, http.StatusBadGateway, "Error al consultar la TRM. Intente nuevamente.")
}

// --- Convert / ConvertTable ---

func TestHandler_Convert_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	amount := decimal.NewFromInt(100)
	conv := rate.Conversion{Amount: amount, Result: decimal.NewFromInt(410050), Direction: ratecalc.ToQuote, Rate: record(2, "4100.5")}
	mockValidator.On("ParseAmount", "100").Return(amount, nil).Once()
	mockValidator.On("ParseDirection", "").Return(ratecalc.ToQuote, nil).Once()
	mockService.On("Convert", amount, ratecalc.ToQuote).Return(conv, nil).Once()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodGet, "/convert?amount=100", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "USD", res.From)
	require.Equal(t, "COP", res.To)
	require.Equal(t, "410050", res.Result)
	require.Equal(t, "410.050,00", res.ResultFormatted)
	require.Equal(t, "Cuatrocientos Diez Mil Cincuenta Pesos", res.Words)
	mockService.AssertExpectations(t)
}

func TestHandler_Convert_ToUSDHasNoWords(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	amount := decimal.NewFromInt(8200)
	conv := rate.Conversion{Amount: amount, Result: decimal.NewFromInt(2), Direction: ratecalc.FromQuote, Rate: record(2, "4100")}
	mockValidator.On("ParseAmount", "8200").Return(amount, nil).Once()
	mockValidator.On("ParseDirection", "cop-usd").Return(ratecalc.FromQuote, nil).Once()
	mockService.On("Convert", amount, ratecalc.FromQuote).Return(conv, nil).Once()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodGet, "/convert?amount=8200&direction=cop-usd", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "COP", res.From)
	require.Equal(t, "USD", res.To)
	require.Equal(t, "2,00", res.ResultFormatted)
	require.Empty(t, res.Words)
}

func TestHandler_Convert_Errors(t *testing.T) {
	t.Run("bad amount", func(t *testing.T) {
		mockValidator := new(MockValidator)
		mockService := new(MockService)
		h := NewRateHandler(mockValidator, mockService)
		mockValidator.On("ParseAmount", "-1").Return(decimal.Decimal{}, rate.ErrAmountNegative).Once()

		rr := httptest.NewRecorder()
		h.Convert(rr, httptest.NewRequest(http.MethodGet, "/convert?amount=-1", nil))

		requireError(t, rr, http.StatusBadRequest, rate.ErrAmountNegative.Error())
		mockValidator.AssertNotCalled(t, "ParseDirection", mock.Anything)
	})

	t.Run("bad direction", func(t *testing.T) {
		mockValidator := new(MockValidator)
		mockService := new(MockService)
		h := NewRateHandler(mockValidator, mockService)
		mockValidator.On("ParseAmount", "1").Return(decimal.NewFromInt(1), nil).Once()
		mockValidator.On("ParseDirection", "eur").Return(ratecalc.ConversionDirection(""), rate.ErrDirectionInvalid).Once()

		rr := httptest.NewRecorder()
		h.Convert(rr, httptest.NewRequest(http.MethodGet, "/convert?amount=1&direction=eur", nil))

		requireError(t, rr, http.StatusBadRequest, rate.ErrDirectionInvalid.Error())
	})

	t.Run("no rate yet", func(t *testing.T) {
		mockValidator := new(MockValidator)
		mockService := new(MockService)
		h := NewRateHandler(mockValidator, mockService)
		mockValidator.On("ParseAmount", "1").Return(decimal.NewFromInt(1), nil).Once()
		mockValidator.On("ParseDirection", "").Return(ratecalc.ToQuote, nil).Once()
		mockService.On("Convert", decimal.NewFromInt(1), ratecalc.ToQuote).Return(rate.Conversion{}, rate.ErrNoCurrentRate).Once()

		rr := httptest.NewRecorder()
		h.Convert(rr, httptest.NewRequest(http.MethodGet, "/convert?amount=1", nil))

		requireError(t, rr, http.StatusServiceUnavailable, "TRM no disponible todavía. Intente nuevamente.")
	})

	t.Run("invalid rate", func(t *testing.T) {
		mockValidator := new(MockValidator)
		mockService := new(MockService)
		h := NewRateHandler(mockValidator, mockService)
		mockValidator.On("ParseAmount", "1").Return(decimal.NewFromInt(1), nil).Once()
		mockValidator.On("ParseDirection", "").Return(ratecalc.ToQuote, nil).Once()
		mockService.On("Convert", decimal.NewFromInt(1), ratecalc.ToQuote).Return(rate.Conversion{}, domain.ErrInvalidRate).Once()

		rr := httptest.NewRecorder()
		h.Convert(rr, httptest.NewRequest(http.MethodGet, "/convert?amount=1", nil))

		requireError(t, rr, http.StatusInternalServerError, "ups, couldn't convert this time")
	})
}

func TestHandler_ConvertTable_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	rows, err := ratecalc.ConversionTable(ratecalc.DefaultUSDAmounts, decimal.NewFromInt(4000), ratecalc.ToQuote)
	require.NoError(t, err)
	table := rate.ConversionTable{Direction: ratecalc.ToQuote, Rate: record(2, "4000"), Rows: rows}
	mockValidator.On("ParseDirection", "usd-cop").Return(ratecalc.ToQuote, nil).Once()
	mockService.On("ConversionTable", ratecalc.ToQuote).Return(table, nil).Once()

	rr := httptest.NewRecorder()
	h.ConvertTable(rr, httptest.NewRequest(http.MethodGet, "/convert/table?direction=usd-cop", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertTableResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Rows, len(ratecalc.DefaultUSDAmounts))
	require.Equal(t, "1", res.Rows[0].Amount)
	require.Equal(t, "4.000,00", res.Rows[0].ResultFormatted)
	require.Equal(t, "USD", res.From)
}

// --- Stream ---

func TestHandler_Stream_WritesStateEvents(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(new(MockValidator), mockService)

	cur := record(2, "4100")
	states := make(chan rate.State, 2)
	states <- rate.State{Loading: true}
	states <- rate.State{Current: &cur, Historical: domain.RateSeries{cur}, Generation: 1}
	close(states)

	unsubscribed := false
	mockService.On("Subscribe").Return(states, func() { unsubscribed = true }).Once()

	rr := httptest.NewRecorder()
	h.Stream(rr, httptest.NewRequest(http.MethodGet, "/trm/stream", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	require.Equal(t, 2, strings.Count(body, "event: state\n"))
	require.Contains(t, body, "id: 0\n")
	require.Contains(t, body, "id: 1\n")
	require.Contains(t, body, `"formatted":"4.100,00"`)
	require.True(t, unsubscribed)
}

func TestHandler_Stream_StopsOnClientDisconnect(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(new(MockValidator), mockService)

	states := make(chan rate.State)
	mockService.On("Subscribe").Return(states, func() {}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/trm/stream", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	h.Stream(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, rr.Body.String(), "event: state")
}
