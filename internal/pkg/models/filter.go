package models

// Filter field names accepted from the dashboard inputs
const (
	FilterFareMin     = "fareMin"
	FilterFareMax     = "fareMax"
	FilterDistanceMin = "distanceMin"
	FilterDistanceMax = "distanceMax"
	FilterTime        = "time"
)

// Query parameter names understood by the Trips API
const (
	ParamFareMin     = "fare_min"
	ParamFareMax     = "fare_max"
	ParamDistanceMin = "distance_min"
	ParamDistanceMax = "distance_max"
	ParamTime        = "time"
)

// FilterCriteria holds the user's range and time constraints. An empty
// field means unbounded; values are forwarded to the Trips API untouched.
type FilterCriteria struct {
	FareMin     string `json:"fareMin"`
	FareMax     string `json:"fareMax"`
	DistanceMin string `json:"distanceMin"`
	DistanceMax string `json:"distanceMax"`
	Time        string `json:"time"`
}

// IsFilterField reports whether name is one of the recognised filter fields
func IsFilterField(name string) bool {
	switch name {
	case FilterFareMin, FilterFareMax, FilterDistanceMin, FilterDistanceMax, FilterTime:
		return true
	}
	return false
}

// Set replaces the named field. It returns false, leaving f untouched,
// when name is not a filter field.
func (f *FilterCriteria) Set(name, value string) bool {
	switch name {
	case FilterFareMin:
		f.FareMin = value
	case FilterFareMax:
		f.FareMax = value
	case FilterDistanceMin:
		f.DistanceMin = value
	case FilterDistanceMax:
		f.DistanceMax = value
	case FilterTime:
		f.Time = value
	default:
		return false
	}
	return true
}

// QueryParams maps the criteria to Trips API parameters in a fixed order.
// Empty values are kept so the API sees every parameter.
func (f FilterCriteria) QueryParams() [][2]string {
	return [][2]string{
		{ParamFareMin, f.FareMin},
		{ParamFareMax, f.FareMax},
		{ParamDistanceMin, f.DistanceMin},
		{ParamDistanceMax, f.DistanceMax},
		{ParamTime, f.Time},
	}
}
