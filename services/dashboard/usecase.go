package dashboard

import (
	"context"

	"github.com/piresc/tripdash/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tripdash/services/dashboard DashboardUseCase

// DashboardUseCase owns the filter criteria and the current trip collection
// and derives the chart and map data from them
type DashboardUseCase interface {
	// Initialize issues the unfiltered startup query. Only the first call
	// does anything.
	Initialize(ctx context.Context) error

	// Filter operations. Edits never trigger a query.
	UpdateFilterField(name, value string) error
	UpdateFilters(fields map[string]string) error
	Filters() models.FilterCriteria

	// ExecuteQuery fetches trips for the current filters and replaces the
	// collection on success
	ExecuteQuery(ctx context.Context) (*models.QueryResult, error)

	// Derived views, always computed from the current collection
	Trips() []models.TripRecord
	FareAggregate() models.FareBucketAggregate
	MarkerProjection() []models.Marker
	ChartData() models.ChartData
	MapView() models.MapView
	Snapshot() models.DashboardSnapshot
}
