package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripdash/internal/pkg/logger"
	"github.com/piresc/tripdash/internal/pkg/models"
	"github.com/piresc/tripdash/internal/utils"
	"github.com/piresc/tripdash/services/dashboard"
)

// DashboardHandler exposes the dashboard controller to the browser widgets
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUseCase
	logger      *logger.ZapLogger
}

// NewDashboardHandler creates a new dashboard HTTP handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUseCase, log *logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      log,
	}
}

// FilterFieldRequest is a single filter edit: the field comes from the
// path, the value from the body
type FilterFieldRequest struct {
	Field string          `param:"field" json:"-"`
	Value json.RawMessage `json:"value"`
}

// ApplyResponse is returned by the apply endpoint
type ApplyResponse struct {
	Query    *models.QueryResult      `json:"query"`
	Snapshot models.DashboardSnapshot `json:"snapshot"`
}

// GetSnapshot returns filters, trips, aggregate and markers together
func (h *DashboardHandler) GetSnapshot(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", h.dashboardUC.Snapshot())
}

// GetFilters returns the current filter criteria
func (h *DashboardHandler) GetFilters(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Filters retrieved successfully", h.dashboardUC.Filters())
}

// UpdateFilterField handles PATCH /dashboard/filters/:field
func (h *DashboardHandler) UpdateFilterField(c echo.Context) error {
	var req FilterFieldRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	value, err := filterValue(req.Value)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.dashboardUC.UpdateFilterField(req.Field, value); err != nil {
		return h.filterError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Filter updated", h.dashboardUC.Filters())
}

// UpdateFilters handles PUT /dashboard/filters with several fields at once
func (h *DashboardHandler) UpdateFilters(c echo.Context) error {
	var body map[string]json.RawMessage
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	fields := make(map[string]string, len(body))
	for name, raw := range body {
		value, err := filterValue(raw)
		if err != nil {
			return utils.BadRequestResponse(c, fmt.Sprintf("%s: %v", name, err))
		}
		fields[name] = value
	}

	if err := h.dashboardUC.UpdateFilters(fields); err != nil {
		return h.filterError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Filters updated", h.dashboardUC.Filters())
}

// Apply runs a trips query with the current filters
func (h *DashboardHandler) Apply(c echo.Context) error {
	result, err := h.dashboardUC.ExecuteQuery(c.Request().Context())
	if err != nil {
		return utils.BadGatewayResponse(c, fmt.Sprintf("Failed to fetch trips: %v", err))
	}

	message := "Trips refreshed"
	if !result.Applied {
		message = "Trips query superseded by a newer query"
	}

	return utils.SuccessResponse(c, http.StatusOK, message, ApplyResponse{
		Query:    result,
		Snapshot: h.dashboardUC.Snapshot(),
	})
}

// GetChart returns the fare distribution for the bar chart
func (h *DashboardHandler) GetChart(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Chart data retrieved successfully", h.dashboardUC.ChartData())
}

// GetMap returns the map view with pickup markers
func (h *DashboardHandler) GetMap(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Map data retrieved successfully", h.dashboardUC.MapView())
}

func (h *DashboardHandler) filterError(c echo.Context, err error) error {
	if errors.Is(err, dashboard.ErrUnknownFilterField) {
		return utils.BadRequestResponse(c, err.Error())
	}
	h.logger.Error("Failed to update filters", logger.Err(err))
	return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update filters")
}

// filterValue turns a JSON input value into the raw filter text. Strings
// are taken as is, numbers keep their literal form, and null or a missing
// value clears the field.
func filterValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", errors.New("invalid filter value")
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", errors.New("invalid filter value")
		}
		return n.String(), nil
	}

	return "", errors.New("filter value must be a string or a number")
}
