package gateway_http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"strings"
	"testing"
	"time"

	"github.com/piresc/tripdash/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/tripdash/internal/pkg/http"
	"github.com/piresc/tripdash/internal/pkg/logger"
	"github.com/piresc/tripdash/internal/pkg/models"
	"github.com/piresc/tripdash/services/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(baseURL string, threshold uint32) *models.Config {
	return &models.Config{
		Backend: models.BackendConfig{URL: baseURL, TimeoutSeconds: 2},
		Breaker: models.BreakerConfig{FailureThreshold: threshold, OpenSeconds: 60},
	}
}

func newTestGateway(baseURL string, threshold uint32) *TripsGateway {
	return NewTripsGateway(newTestConfig(baseURL, threshold), logger.NewNopLogger())
}

func TestTripsGateway_FetchTrips_SendsAllParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, TripsEndpoint, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "query-1", r.Header.Get(httpclient.RequestIDHeader))

		q := r.URL.Query()
		assert.Equal(t, "5", q.Get("fare_min"))
		assert.Equal(t, "", q.Get("fare_max"))
		assert.Equal(t, "", q.Get("distance_min"))
		assert.Equal(t, "3", q.Get("distance_max"))
		assert.Equal(t, "", q.Get("time"))
		for _, key := range []string{"fare_min", "fare_max", "distance_min", "distance_max", "time"} {
			_, ok := q[key]
			assert.True(t, ok, "missing query parameter %s", key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"fare_amount": 12.5, "pickup_latitude": 40.7, "pickup_longitude": -73.9}]`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, 5)
	ctx := httpclient.WithRequestID(context.Background(), "query-1")

	trips, err := gw.FetchTrips(ctx, models.FilterCriteria{FareMin: "5", DistanceMax: "3"})

	require.NoError(t, err)
	require.Len(t, trips, 1)
	fare, ok := trips[0].FareAmount.Float64()
	assert.True(t, ok)
	assert.Equal(t, 12.5, fare)
}

func TestTripsGateway_FetchTrips_Decoding(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectLen   int
		expectError error
	}{
		{
			name:      "empty array",
			body:      `[]`,
			expectLen: 0,
		},
		{
			name:      "string and null values",
			body:      `[{"fare_amount": "7.25", "pickup_latitude": null}, {"fare_amount": null}]`,
			expectLen: 2,
		},
		{
			name:      "non-object elements are skipped",
			body:      `[1, "x", null, {"fare_amount": 9}, [2]]`,
			expectLen: 1,
		},
		{
			name:      "wrong field type keeps the record",
			body:      `[{"fare_amount": 9, "pickup_datetime": 42}]`,
			expectLen: 1,
		},
		{
			name:        "object body",
			body:        `{"trips": []}`,
			expectError: dashboard.ErrMalformedBody,
		},
		{
			name:        "null body",
			body:        `null`,
			expectError: dashboard.ErrMalformedBody,
		},
		{
			name:        "invalid json",
			body:        `[{"fare_amount": 1`,
			expectError: dashboard.ErrMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			trips, err := newTestGateway(server.URL, 5).FetchTrips(context.Background(), models.FilterCriteria{})

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, trips)
				return
			}
			require.NoError(t, err)
			assert.Len(t, trips, tt.expectLen)
		})
	}
}

func TestTripsGateway_FetchTrips_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("database unavailable\n"))
	}))
	defer server.Close()

	trips, err := newTestGateway(server.URL, 5).FetchTrips(context.Background(), models.FilterCriteria{})

	assert.Nil(t, trips)
	var httpErr *dashboard.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "database unavailable", httpErr.Body)
}

func TestTripsGateway_FetchTrips_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	trips, err := newTestGateway(server.URL, 5).FetchTrips(context.Background(), models.FilterCriteria{})

	assert.Error(t, err)
	assert.Nil(t, trips)
	assert.Contains(t, err.Error(), "failed to fetch trips")
}

func TestTripsGateway_BreakerOpensAfterThreshold(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := gw.FetchTrips(ctx, models.FilterCriteria{})
		assert.Error(t, err)
	}
	assert.False(t, gw.Ready())
	assert.Equal(t, "OPEN", gw.Stats().State)

	_, err := gw.FetchTrips(ctx, models.FilterCriteria{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTripsGateway_ClientErrorsDoNotOpenBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, 1)

	for i := 0; i < 3; i++ {
		_, err := gw.FetchTrips(context.Background(), models.FilterCriteria{FareMin: "abc"})
		var httpErr *dashboard.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	}
	assert.True(t, gw.Ready())
}

func TestTripsGateway_ReadyRecoversWithoutTraffic(t *testing.T) {
	var healthy atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL, 1)
	cfg.Breaker.OpenSeconds = 1
	gw := NewTripsGateway(cfg, logger.NewNopLogger())

	_, err := gw.FetchTrips(context.Background(), models.FilterCriteria{})
	require.Error(t, err)
	require.False(t, gw.Ready())

	healthy.Store(true)

	// readiness must flip once the open timeout passes, with no queries sent
	assert.Eventually(t, gw.Ready, 3*time.Second, 50*time.Millisecond)
	assert.Equal(t, "HALF_OPEN", gw.Stats().State)

	_, err = gw.FetchTrips(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", gw.Stats().State)
}

func TestTripsGateway_FetchTrips_BodyLimit(t *testing.T) {
	body := `[{"fare_amount": 12.5}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	t.Run("body that fits exactly", func(t *testing.T) {
		cfg := newTestConfig(server.URL, 5)
		cfg.Backend.MaxBodyBytes = int64(len(body))

		trips, err := NewTripsGateway(cfg, logger.NewNopLogger()).FetchTrips(context.Background(), models.FilterCriteria{})

		require.NoError(t, err)
		assert.Len(t, trips, 1)
	})

	t.Run("oversized body", func(t *testing.T) {
		cfg := newTestConfig(server.URL, 5)
		cfg.Backend.MaxBodyBytes = int64(len(body) - 1)

		trips, err := NewTripsGateway(cfg, logger.NewNopLogger()).FetchTrips(context.Background(), models.FilterCriteria{})

		assert.ErrorIs(t, err, dashboard.ErrMalformedBody)
		assert.Contains(t, err.Error(), "exceeds")
		assert.Nil(t, trips)
	})

	t.Run("unset limit uses default", func(t *testing.T) {
		gw := newTestGateway(server.URL, 5)
		assert.Equal(t, DefaultMaxBodyBytes, gw.maxBodySize)
	})
}

func TestTripsGateway_FetchTrips_StatusErrorBodyTruncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(strings.Repeat("x", 4*maxErrorBody)))
	}))
	defer server.Close()

	_, err := newTestGateway(server.URL, 5).FetchTrips(context.Background(), models.FilterCriteria{})

	var httpErr *dashboard.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Len(t, httpErr.Body, maxErrorBody)
}
