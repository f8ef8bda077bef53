package usecase

import (
	"github.com/piresc/tripdash/internal/pkg/models"
	"github.com/piresc/tripdash/internal/utils"
)

// MaxMarkers bounds the number of pickup markers drawn on the map
const MaxMarkers = 10

// Chart presentation, matching the bar chart widget
var (
	chartLabels = []string{"Fare 5-10", "Fare 10-20", "Fare 20+"}
	chartColors = []string{"#3b82f6", "#10b981", "#ef4444"}
)

const chartDatasetLabel = "Number of Trips"

// DeriveFareAggregate counts trips into the half-open fare buckets
// [5,10), [10,20) and [20,∞). Fares below 5, missing or unparsable are
// left out of every bucket.
func DeriveFareAggregate(trips []models.TripRecord) models.FareBucketAggregate {
	var agg models.FareBucketAggregate

	for _, trip := range trips {
		fare, ok := trip.FareAmount.Float64()
		if !ok {
			continue
		}

		switch {
		case fare >= 20:
			agg.Fare20Plus++
		case fare >= 10:
			agg.Fare10To20++
		case fare >= 5:
			agg.Fare5To10++
		}
	}

	return agg
}

// DeriveMarkerProjection keeps, in collection order, the first limit trips
// that have both pickup coordinates. Trips without them are skipped, never
// given a default position.
func DeriveMarkerProjection(trips []models.TripRecord, limit int) []models.Marker {
	if limit < 0 {
		limit = 0
	}
	markers := make([]models.Marker, 0, min(limit, len(trips)))

	for i, trip := range trips {
		if len(markers) >= limit {
			break
		}

		lat, lng, ok := trip.PickupPoint()
		if !ok {
			continue
		}

		marker := models.Marker{
			Index:     i,
			Latitude:  lat,
			Longitude: lng,
		}
		if utils.ValidCoordinates(lat, lng) {
			marker.Geohash = utils.EncodePoint(lat, lng, utils.MarkerGeohashPrecision)
		}
		markers = append(markers, marker)
	}

	return markers
}

// BuildChartData shapes the aggregate for the bar chart widget
func BuildChartData(agg models.FareBucketAggregate) models.ChartData {
	buckets := agg.Buckets()
	data := make([]int, len(buckets))
	for i, b := range buckets {
		data[i] = b.Count
	}

	return models.ChartData{
		Labels: append([]string(nil), chartLabels...),
		Datasets: []models.ChartDataset{
			{
				Label:           chartDatasetLabel,
				Data:            data,
				BackgroundColor: append([]string(nil), chartColors...),
			},
		},
	}
}

// BuildMapView shapes the markers for the map widget
func BuildMapView(cfg models.MapConfig, markers []models.Marker) models.MapView {
	return models.MapView{
		Center:  [2]float64{cfg.CenterLat, cfg.CenterLng},
		Zoom:    cfg.Zoom,
		TileURL: cfg.TileURL,
		Markers: markers,
	}
}
