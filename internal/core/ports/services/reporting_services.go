package services

import (
	"context"
	"time"

	"github.com/facturly/facturly-backend/internal/dto"
)

// ReportingSvcFacade defines the dashboard aggregation operations.
type ReportingSvcFacade interface {
	// GetDashboardStats returns the headline figures for the current month.
	GetDashboardStats(ctx context.Context, userID string, now time.Time) (*dto.DashboardStatsResponse, error)

	// GetIncomeChart returns paid income per month for the trailing window,
	// oldest month first.
	GetIncomeChart(ctx context.Context, userID string, now time.Time, months int) ([]dto.ChartPoint, error)
}
