package gateway_http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/piresc/tripdash/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/tripdash/internal/pkg/http"
	"github.com/piresc/tripdash/internal/pkg/logger"
	"github.com/piresc/tripdash/internal/pkg/models"
	"github.com/piresc/tripdash/services/dashboard"
)

// TripsEndpoint is the Trips API path relative to the backend base URL
const TripsEndpoint = "/api/trips"

// maxErrorBody caps how much of a failed response is kept in HTTPError
const maxErrorBody = 512

// DefaultMaxBodyBytes bounds a trips response when the config leaves it unset
const DefaultMaxBodyBytes int64 = 32 << 20

// TripsGateway fetches trips from the Trips API behind a circuit breaker
type TripsGateway struct {
	client      *httpclient.Client
	breaker     *circuitbreaker.CircuitBreaker
	logger      *logger.ZapLogger
	maxBodySize int64
}

// NewTripsGateway creates a Trips API gateway from the backend and breaker config
func NewTripsGateway(cfg *models.Config, log *logger.ZapLogger) *TripsGateway {
	client := httpclient.NewClient(httpclient.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	})

	breakerCfg := circuitbreaker.DefaultConfig("trips-api")
	if cfg.Breaker.FailureThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.Breaker.FailureThreshold
	}
	if cfg.Breaker.OpenSeconds > 0 {
		breakerCfg.Timeout = time.Duration(cfg.Breaker.OpenSeconds) * time.Second
	}
	breakerCfg.IsFailure = isUpstreamFailure

	maxBodySize := cfg.Backend.MaxBodyBytes
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodyBytes
	}

	return &TripsGateway{
		client:      client,
		breaker:     circuitbreaker.New(breakerCfg, log),
		logger:      log,
		maxBodySize: maxBodySize,
	}
}

// isUpstreamFailure counts transport errors, 5xx and malformed bodies against
// the breaker. 4xx answers mean the upstream is alive.
func isUpstreamFailure(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *dashboard.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}

// FetchTrips sends GET /api/trips with all five filter parameters
func (g *TripsGateway) FetchTrips(ctx context.Context, filters models.FilterCriteria) ([]models.TripRecord, error) {
	query := url.Values{}
	for _, p := range filters.QueryParams() {
		query.Set(p[0], p[1])
	}

	var trips []models.TripRecord
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		resp, err := g.client.Get(ctx, TripsEndpoint, query)
		if err != nil {
			return fmt.Errorf("failed to fetch trips: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return &dashboard.HTTPError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
		}

		// one extra byte tells an oversized body apart from one that fits exactly
		body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBodySize+1))
		if err != nil {
			return fmt.Errorf("failed to read trips response: %w", err)
		}
		if int64(len(body)) > g.maxBodySize {
			return fmt.Errorf("%w: response exceeds %d bytes", dashboard.ErrMalformedBody, g.maxBodySize)
		}

		trips, err = g.decodeTrips(body)
		return err
	})
	if err != nil {
		return nil, err
	}

	return trips, nil
}

// decodeTrips decodes a JSON array of trip objects. Elements that are not
// objects are skipped; a field of the wrong type leaves that field empty
// but keeps the rest of the record.
func (g *TripsGateway) decodeTrips(body []byte) ([]models.TripRecord, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", dashboard.ErrMalformedBody, err)
	}
	if elements == nil {
		return nil, fmt.Errorf("%w: body is null", dashboard.ErrMalformedBody)
	}

	trips := make([]models.TripRecord, 0, len(elements))
	skipped := 0
	for _, raw := range elements {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '{' {
			skipped++
			continue
		}

		var trip models.TripRecord
		if err := json.Unmarshal(raw, &trip); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				skipped++
				continue
			}
		}
		trips = append(trips, trip)
	}

	if skipped > 0 {
		g.logger.Warn("Skipped malformed trip records",
			logger.Int("skipped", skipped),
			logger.Int("kept", len(trips)))
	}

	return trips, nil
}

// Stats returns the breaker counters for the readiness probe
func (g *TripsGateway) Stats() circuitbreaker.Stats {
	return g.breaker.Stats()
}

// Ready reports whether the breaker currently lets trips queries through
func (g *TripsGateway) Ready() bool {
	return g.breaker.State() != circuitbreaker.StateOpen
}
