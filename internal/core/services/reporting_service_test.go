package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/facturly/facturly-backend/internal/core/domain"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockClientRepo    *MockClientRepository
	service           portssvc.ReportingSvcFacade

	userID string
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockReportingRepo = new(MockReportingRepository)
	s.mockClientRepo = new(MockClientRepository)
	s.service = services.NewReportingService(s.mockReportingRepo, s.mockClientRepo)
	s.userID = uuid.NewString()
}

func (s *ReportingServiceTestSuite) TestGetDashboardStats() {
	ctx := context.Background()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)

	activeStatuses := []domain.InvoiceStatus{
		domain.StatusDraft,
		domain.StatusSent,
		domain.StatusPaid,
		domain.StatusOverdue,
	}
	pendingStatuses := []domain.InvoiceStatus{domain.StatusSent, domain.StatusOverdue}

	recent := []domain.Invoice{
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-009", Status: domain.StatusSent, Total: decimal.NewFromInt(135)},
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-008", Status: domain.StatusPaid, Total: decimal.NewFromInt(90)},
	}

	s.mockReportingRepo.On("SumInvoicesIssuedBetween", ctx, s.userID, monthStart, monthEnd, activeStatuses).
		Return(decimal.RequireFromString("225"), 2, nil).Once()
	s.mockReportingRepo.On("SumInvoicesByStatus", ctx, s.userID, pendingStatuses).
		Return(decimal.RequireFromString("135"), nil).Once()
	s.mockClientRepo.On("CountClientsByUser", ctx, s.userID).Return(4, nil).Once()
	s.mockReportingRepo.On("FindRecentInvoices", ctx, s.userID, 5).Return(recent, nil).Once()

	stats, err := s.service.GetDashboardStats(ctx, s.userID, now)

	s.Require().NoError(err)
	s.True(stats.TotalMonth.Equal(decimal.NewFromInt(225)))
	s.Equal(2, stats.CountMonth)
	s.True(stats.TotalPending.Equal(decimal.NewFromInt(135)))
	s.Equal(4, stats.ClientCount)
	s.Require().Len(stats.RecentInvoices, 2)
	s.Equal("INV-009", stats.RecentInvoices[0].InvoiceNumber)
	s.mockReportingRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestGetIncomeChart_OldestFirst() {
	ctx := context.Background()
	// Mid-August anchor; a three month window covers June through August.
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	paid := []domain.InvoiceStatus{domain.StatusPaid}

	totals := map[time.Month]string{
		time.June:   "100",
		time.July:   "0",
		time.August: "42.50",
	}
	for month, total := range totals {
		start := time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		s.mockReportingRepo.On("SumInvoicesIssuedBetween", ctx, s.userID, start, end, paid).
			Return(decimal.RequireFromString(total), 1, nil).Once()
	}

	points, err := s.service.GetIncomeChart(ctx, s.userID, now, 3)

	s.Require().NoError(err)
	s.Require().Len(points, 3)
	s.Equal("Jun", points[0].Name)
	s.Equal("Jul", points[1].Name)
	s.Equal("Aug", points[2].Name)
	s.True(points[0].Total.Equal(decimal.NewFromInt(100)))
	s.True(points[1].Total.IsZero())
	s.True(points[2].Total.Equal(decimal.RequireFromString("42.5")))
	s.mockReportingRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestGetIncomeChart_DefaultsToSixMonths() {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)

	s.mockReportingRepo.On("SumInvoicesIssuedBetween", ctx, s.userID, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, 0, nil).Times(6)

	points, err := s.service.GetIncomeChart(ctx, s.userID, now, 0)

	s.Require().NoError(err)
	s.Len(points, 6)
	// End-of-month anchor must still walk real months backwards.
	s.Equal("Mar", points[0].Name)
	s.Equal("Aug", points[5].Name)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
