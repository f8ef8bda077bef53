package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFilterField(t *testing.T) {
	for _, name := range []string{FilterFareMin, FilterFareMax, FilterDistanceMin, FilterDistanceMax, FilterTime} {
		assert.True(t, IsFilterField(name), name)
	}
	for _, name := range []string{"", "fare_min", "FareMin", "passengers"} {
		assert.False(t, IsFilterField(name), name)
	}
}

func TestFilterCriteria_Set(t *testing.T) {
	f := FilterCriteria{DistanceMin: "1", Time: "08:00"}

	assert.True(t, f.Set(FilterFareMin, "10"))
	assert.True(t, f.Set(FilterFareMax, "20"))
	assert.False(t, f.Set("speed", "3"))

	assert.Equal(t, FilterCriteria{FareMin: "10", FareMax: "20", DistanceMin: "1", Time: "08:00"}, f)
}

func TestFilterCriteria_QueryParams(t *testing.T) {
	f := FilterCriteria{FareMin: "5", DistanceMax: "abc"}

	assert.Equal(t, [][2]string{
		{"fare_min", "5"},
		{"fare_max", ""},
		{"distance_min", ""},
		{"distance_max", "abc"},
		{"time", ""},
	}, f.QueryParams())
}

func TestFareBucketAggregate_Buckets(t *testing.T) {
	agg := FareBucketAggregate{Fare5To10: 3, Fare10To20: 0, Fare20Plus: 2}

	assert.Equal(t, []FareBucketCount{
		{Label: "5-10", Count: 3},
		{Label: "10-20", Count: 0},
		{Label: "20+", Count: 2},
	}, agg.Buckets())
	assert.Equal(t, 5, agg.Total())
}
