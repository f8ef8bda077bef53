package models

// TripRecord is one trip as returned by the Trips API. Only the fare and
// the pickup coordinates drive the dashboard; the remaining fields are
// carried through so the snapshot mirrors the upstream record.
type TripRecord struct {
	FareAmount       Number `json:"fare_amount"`
	PickupLatitude   Number `json:"pickup_latitude"`
	PickupLongitude  Number `json:"pickup_longitude"`
	DropoffLatitude  Number `json:"dropoff_latitude"`
	DropoffLongitude Number `json:"dropoff_longitude"`
	TripDistance     Number `json:"trip_distance"`
	PassengerCount   Number `json:"passenger_count"`
	PickupDatetime   string `json:"pickup_datetime,omitempty"`
	DropoffDatetime  string `json:"dropoff_datetime,omitempty"`
}

// PickupPoint returns the pickup coordinates when both are present and numeric
func (t TripRecord) PickupPoint() (lat, lng float64, ok bool) {
	lat, okLat := t.PickupLatitude.Float64()
	lng, okLng := t.PickupLongitude.Float64()
	if !okLat || !okLng {
		return 0, 0, false
	}
	return lat, lng, true
}
