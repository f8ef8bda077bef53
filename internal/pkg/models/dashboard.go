package models

import "time"

// Fare bucket keys, in display order
const (
	FareBucket5To10  = "5-10"
	FareBucket10To20 = "10-20"
	FareBucket20Plus = "20+"
)

// FareBucketCount is one bar of the fare distribution
type FareBucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FareBucketAggregate holds the three fare bucket counters
type FareBucketAggregate struct {
	Fare5To10  int `json:"5-10"`
	Fare10To20 int `json:"10-20"`
	Fare20Plus int `json:"20+"`
}

// Buckets returns the counters in display order
func (a FareBucketAggregate) Buckets() []FareBucketCount {
	return []FareBucketCount{
		{Label: FareBucket5To10, Count: a.Fare5To10},
		{Label: FareBucket10To20, Count: a.Fare10To20},
		{Label: FareBucket20Plus, Count: a.Fare20Plus},
	}
}

// Total returns the number of bucketed trips
func (a FareBucketAggregate) Total() int {
	return a.Fare5To10 + a.Fare10To20 + a.Fare20Plus
}

// Marker is a pickup location shown on the map
type Marker struct {
	Index     int     `json:"index"` // position in the trip collection
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash"`
}

// DashboardSnapshot is a consistent view of the controller state
type DashboardSnapshot struct {
	Filters         FilterCriteria      `json:"filters"`
	Trips           []TripRecord        `json:"trips"`
	TripCount       int                 `json:"trip_count"`
	FareAggregate   FareBucketAggregate `json:"fare_aggregate"`
	Markers         []Marker            `json:"markers"`
	InFlight        int                 `json:"in_flight"`
	AppliedSequence uint64              `json:"applied_sequence"`
	LastRefreshedAt *time.Time          `json:"last_refreshed_at,omitempty"`
	LastError       string              `json:"last_error,omitempty"`
}

// QueryResult describes the outcome of one trips query
type QueryResult struct {
	QueryID  string `json:"query_id"`
	Sequence uint64 `json:"sequence"`
	Applied  bool   `json:"applied"`
	Count    int    `json:"count"`
}

// ChartDataset is one dataset of the bar chart
type ChartDataset struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// ChartData is the bar chart payload
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// MapView is the map widget payload
type MapView struct {
	Center  [2]float64 `json:"center"`
	Zoom    int        `json:"zoom"`
	TileURL string     `json:"tile_url"`
	Markers []Marker   `json:"markers"`
}
