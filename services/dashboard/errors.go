package dashboard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFilterField is returned for a filter name outside the five known fields
	ErrUnknownFilterField = errors.New("unknown filter field")
	// ErrMalformedBody is returned when the Trips API body is not a JSON array
	ErrMalformedBody = errors.New("malformed trips response body")
)

// HTTPError is a non-success response from the Trips API
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("trips api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("trips api returned status %d: %s", e.StatusCode, e.Body)
}
