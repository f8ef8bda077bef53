package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// StartExternalSegment creates an external service segment for an outgoing request
func StartExternalSegment(ctx context.Context, request *http.Request) *newrelic.ExternalSegment {
	txn := FromContext(ctx)
	if txn == nil {
		return nil
	}

	return newrelic.StartExternalSegment(txn, request)
}

// InstrumentHTTPRequest wraps an HTTP call in an external segment
//
//	Usage: resp, err := InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
//	  return client.Do(req)
//	})
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	segment := StartExternalSegment(ctx, req)
	if segment != nil {
		defer segment.End()
	}

	resp, err := doFunc()

	if segment != nil && resp != nil {
		segment.Response = resp
	}

	return resp, err
}
