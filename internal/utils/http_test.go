package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with map data",
			statusCode: http.StatusOK,
			message:    "Chart data retrieved",
			data:       map[string]interface{}{"labels": []interface{}{"Fare 5-10"}},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Filter updated",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name         string
		send         func(echo.Context) error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "Generic error",
			send:         func(c echo.Context) error { return ErrorResponseHandler(c, http.StatusNotFound, "missing") },
			expectedCode: http.StatusNotFound,
			expectedMsg:  "missing",
		},
		{
			name:         "Bad request",
			send:         func(c echo.Context) error { return BadRequestResponse(c, "unknown filter field") },
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "unknown filter field",
		},
		{
			name:         "Bad gateway with message",
			send:         func(c echo.Context) error { return BadGatewayResponse(c, "trips api returned 503") },
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "trips api returned 503",
		},
		{
			name:         "Bad gateway default message",
			send:         func(c echo.Context) error { return BadGatewayResponse(c, "") },
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "Upstream request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.send(c))
			assert.Equal(t, tt.expectedCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedMsg, response.Error)
			assert.Equal(t, tt.expectedCode, response.Code)
		})
	}
}
