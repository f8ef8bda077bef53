package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	httpclient "github.com/piresc/tripdash/internal/pkg/http"
	"github.com/piresc/tripdash/internal/pkg/logger"
	"github.com/piresc/tripdash/internal/pkg/models"
	nrpkg "github.com/piresc/tripdash/internal/pkg/newrelic"
	"github.com/piresc/tripdash/services/dashboard"
)

// DashboardUC implements the dashboard.DashboardUseCase interface
type DashboardUC struct {
	cfg     *models.Config
	tripsGW dashboard.TripsGW
	logger  *logger.ZapLogger
	nrApp   *newrelic.Application

	initOnce sync.Once

	mu              sync.RWMutex
	filters         models.FilterCriteria
	trips           []models.TripRecord
	issuedSeq       uint64
	appliedSeq      uint64
	inFlight        int
	lastRefreshedAt *time.Time
	lastErr         string
}

// NewDashboardUC creates a new dashboard use case. nrApp may be nil.
func NewDashboardUC(cfg *models.Config, tripsGW dashboard.TripsGW, log *logger.ZapLogger, nrApp *newrelic.Application) dashboard.DashboardUseCase {
	return &DashboardUC{
		cfg:     cfg,
		tripsGW: tripsGW,
		logger:  log,
		nrApp:   nrApp,
		trips:   []models.TripRecord{},
	}
}

// Initialize runs the unfiltered startup query. Filters start empty from
// the constructor and edits made before this call are kept. Later calls
// are no-ops.
func (uc *DashboardUC) Initialize(ctx context.Context) error {
	var err error
	uc.initOnce.Do(func() {
		uc.logger.Info("Running initial trips query")
		_, err = uc.runQuery(ctx, models.FilterCriteria{}, "dashboard/Initialize")
	})
	return err
}

// UpdateFilterField replaces a single filter field without validating the value
func (uc *DashboardUC) UpdateFilterField(name, value string) error {
	if !models.IsFilterField(name) {
		return fmt.Errorf("%w: %q", dashboard.ErrUnknownFilterField, name)
	}

	uc.mu.Lock()
	uc.filters.Set(name, value)
	uc.mu.Unlock()

	uc.logger.Debug("Filter field updated",
		logger.String("field", name),
		logger.String("value", value))
	return nil
}

// UpdateFilters applies several edits at once. Nothing changes if any
// name is unknown.
func (uc *DashboardUC) UpdateFilters(fields map[string]string) error {
	for name := range fields {
		if !models.IsFilterField(name) {
			return fmt.Errorf("%w: %q", dashboard.ErrUnknownFilterField, name)
		}
	}

	uc.mu.Lock()
	for name, value := range fields {
		uc.filters.Set(name, value)
	}
	uc.mu.Unlock()

	uc.logger.Debug("Filter fields updated", logger.Int("fields", len(fields)))
	return nil
}

// Filters returns a copy of the current filter criteria
func (uc *DashboardUC) Filters() models.FilterCriteria {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.filters
}

// ExecuteQuery fetches trips for the current filters
func (uc *DashboardUC) ExecuteQuery(ctx context.Context) (*models.QueryResult, error) {
	return uc.runQuery(ctx, uc.Filters(), "dashboard/ExecuteQuery")
}

// runQuery sends one request and applies the response. With DiscardStale
// set, only the response to the most recently issued query is applied;
// otherwise whichever response completes last wins.
func (uc *DashboardUC) runQuery(ctx context.Context, filters models.FilterCriteria, txnName string) (*models.QueryResult, error) {
	ctx, end := nrpkg.EnsureTransaction(ctx, uc.nrApp, txnName)
	defer end()
	txn := nrpkg.FromContext(ctx)

	uc.mu.Lock()
	uc.issuedSeq++
	seq := uc.issuedSeq
	uc.inFlight++
	uc.mu.Unlock()

	queryID := uuid.NewString()
	ctx = httpclient.WithRequestID(ctx, queryID)
	nrpkg.AddTransactionAttribute(txn, "query_id", queryID)
	nrpkg.AddTransactionAttribute(txn, "query_sequence", seq)

	log := uc.logger.WithNewRelicContext(txn).With(
		logger.String("query_id", queryID),
		logger.Uint64("sequence", seq),
	)
	log.Debug("Fetching trips", logger.Any("filters", filters))

	start := time.Now()
	trips, err := uc.tripsGW.FetchTrips(ctx, filters)
	elapsed := time.Since(start)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.inFlight--

	stale := uc.cfg.Dashboard.DiscardStale && seq != uc.issuedSeq

	if err != nil {
		if !stale {
			uc.lastErr = err.Error()
		}
		nrpkg.NoticeTransactionError(txn, err)
		log.Error("Trips query failed, keeping previous trips",
			logger.Err(err),
			logger.Duration("elapsed", elapsed),
			logger.Bool("stale", stale))
		return nil, fmt.Errorf("trips query %d failed: %w", seq, err)
	}

	result := &models.QueryResult{
		QueryID:  queryID,
		Sequence: seq,
		Count:    len(trips),
	}

	if stale {
		log.Warn("Discarding stale trips response",
			logger.Uint64("latest_sequence", uc.issuedSeq),
			logger.Int("count", len(trips)))
		return result, nil
	}

	if trips == nil {
		trips = []models.TripRecord{}
	}
	now := models.Now()
	uc.trips = trips
	uc.appliedSeq = seq
	uc.lastRefreshedAt = &now
	uc.lastErr = ""
	result.Applied = true

	log.Info("Trips query applied",
		logger.Int("count", len(trips)),
		logger.Duration("elapsed", elapsed))
	return result, nil
}

// Trips returns a copy of the current trip collection
func (uc *DashboardUC) Trips() []models.TripRecord {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]models.TripRecord{}, uc.trips...)
}

// FareAggregate derives the fare buckets from the current collection
func (uc *DashboardUC) FareAggregate() models.FareBucketAggregate {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return DeriveFareAggregate(uc.trips)
}

// MarkerProjection derives the map markers from the current collection
func (uc *DashboardUC) MarkerProjection() []models.Marker {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return DeriveMarkerProjection(uc.trips, MaxMarkers)
}

// ChartData returns the bar chart payload for the current collection
func (uc *DashboardUC) ChartData() models.ChartData {
	return BuildChartData(uc.FareAggregate())
}

// MapView returns the map payload for the current collection
func (uc *DashboardUC) MapView() models.MapView {
	return BuildMapView(uc.cfg.Map, uc.MarkerProjection())
}

// Snapshot returns filters, trips and derived data taken under one lock
func (uc *DashboardUC) Snapshot() models.DashboardSnapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snapshot := models.DashboardSnapshot{
		Filters:         uc.filters,
		Trips:           append([]models.TripRecord{}, uc.trips...),
		TripCount:       len(uc.trips),
		FareAggregate:   DeriveFareAggregate(uc.trips),
		Markers:         DeriveMarkerProjection(uc.trips, MaxMarkers),
		InFlight:        uc.inFlight,
		AppliedSequence: uc.appliedSeq,
		LastError:       uc.lastErr,
	}
	if uc.lastRefreshedAt != nil {
		t := *uc.lastRefreshedAt
		snapshot.LastRefreshedAt = &t
	}
	return snapshot
}
