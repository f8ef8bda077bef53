package utils

import (
	"github.com/mmcloughlin/geohash"
)

// MarkerGeohashPrecision is roughly a 150m cell, fine enough to tell
// neighbouring pickups apart on a city map
const MarkerGeohashPrecision uint = 7

// EncodePoint converts a coordinate pair to a geohash string
func EncodePoint(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// ValidCoordinates reports whether the pair lies on the globe
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
