package dashboard

import (
	"context"

	"github.com/piresc/tripdash/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/tripdash/services/dashboard TripsGW

// TripsGW defines the outbound calls to the Trips API
type TripsGW interface {
	// FetchTrips returns the trips matching filters in API response order
	FetchTrips(ctx context.Context, filters models.FilterCriteria) ([]models.TripRecord, error)
}
