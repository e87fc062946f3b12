package services

import (
	"context"
	"time"

	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/dto"
)

// recentInvoicesCount is how many invoices the dashboard previews.
const recentInvoicesCount = 5

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	clientRepo    portsrepo.ClientRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		clientRepo:    clientRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// GetDashboardStats returns the headline figures for the month containing now.
// Cancelled invoices are excluded from the monthly figures; pending covers
// everything sent or overdue regardless of date.
func (s *reportingService) GetDashboardStats(ctx context.Context, userID string, now time.Time) (*dto.DashboardStatsResponse, error) {
	monthStart, monthEnd := monthBounds(now)

	activeStatuses := []domain.InvoiceStatus{
		domain.StatusDraft,
		domain.StatusSent,
		domain.StatusPaid,
		domain.StatusOverdue,
	}
	totalMonth, countMonth, err := s.reportingRepo.SumInvoicesIssuedBetween(ctx, userID, monthStart, monthEnd, activeStatuses)
	if err != nil {
		return nil, err
	}

	totalPending, err := s.reportingRepo.SumInvoicesByStatus(ctx, userID, []domain.InvoiceStatus{domain.StatusSent, domain.StatusOverdue})
	if err != nil {
		return nil, err
	}

	clientCount, err := s.clientRepo.CountClientsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.reportingRepo.FindRecentInvoices(ctx, userID, recentInvoicesCount)
	if err != nil {
		return nil, err
	}
	recentResponses := make([]dto.InvoiceResponse, len(recent))
	for i := range recent {
		recentResponses[i] = dto.ToInvoiceResponse(&recent[i])
	}

	return &dto.DashboardStatsResponse{
		TotalMonth:     totalMonth,
		CountMonth:     countMonth,
		TotalPending:   totalPending,
		ClientCount:    clientCount,
		RecentInvoices: recentResponses,
	}, nil
}

// GetIncomeChart returns paid income per month for the trailing window,
// oldest month first. Months without paid invoices appear with a zero total.
func (s *reportingService) GetIncomeChart(ctx context.Context, userID string, now time.Time, months int) ([]dto.ChartPoint, error) {
	if months <= 0 {
		months = 6
	}

	points := make([]dto.ChartPoint, 0, months)
	paid := []domain.InvoiceStatus{domain.StatusPaid}
	// Anchor on the first of the current month; subtracting months from an
	// end-of-month date would normalize into the wrong month.
	currentStart, _ := monthBounds(now)
	for offset := months - 1; offset >= 0; offset-- {
		monthStart := currentStart.AddDate(0, -offset, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
		total, _, err := s.reportingRepo.SumInvoicesIssuedBetween(ctx, userID, monthStart, monthEnd, paid)
		if err != nil {
			return nil, err
		}
		points = append(points, dto.ChartPoint{
			Name:  monthStart.Format("Jan"),
			Total: total,
		})
	}
	return points, nil
}
