package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tripdash/internal/pkg/logger"
	"github.com/piresc/tripdash/services/dashboard"
	httpHandler "github.com/piresc/tripdash/services/dashboard/handler/http"
)

// Handler combines all handlers for the dashboard service
type Handler struct {
	dashboardHTTP *httpHandler.DashboardHandler
}

// NewHandler creates a new combined handler
func NewHandler(dashboardUC dashboard.DashboardUseCase, log *logger.ZapLogger) *Handler {
	return &Handler{
		dashboardHTTP: httpHandler.NewDashboardHandler(dashboardUC, log),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/dashboard")
	group.GET("", h.dashboardHTTP.GetSnapshot)
	group.GET("/filters", h.dashboardHTTP.GetFilters)
	group.PUT("/filters", h.dashboardHTTP.UpdateFilters)
	group.PATCH("/filters/:field", h.dashboardHTTP.UpdateFilterField)
	group.POST("/apply", h.dashboardHTTP.Apply)
	group.GET("/chart", h.dashboardHTTP.GetChart)
	group.GET("/map", h.dashboardHTTP.GetMap)
}
