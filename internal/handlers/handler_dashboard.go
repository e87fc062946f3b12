package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/middleware"
)

const defaultChartMonths = 6

// dashboardHandler handles HTTP requests for the dashboard aggregates.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the dashboard routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/chart", h.getChart)
	}
}

func (h *dashboardHandler) getStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.reportingService.GetDashboardStats(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *dashboardHandler) getChart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	months := defaultChartMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 24 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be a number between 1 and 24"})
			return
		}
		months = parsed
	}

	points, err := h.reportingService.GetIncomeChart(c.Request.Context(), userID, time.Now(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}
