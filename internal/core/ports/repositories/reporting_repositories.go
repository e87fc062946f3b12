package repositories

import (
	"context"
	"time"

	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepositoryFacade defines the aggregate read queries backing the
// dashboard. These are routine sums/counts over a date range.
type ReportingRepositoryFacade interface {
	// SumInvoicesIssuedBetween sums invoice totals issued in [from, to] for
	// the given statuses and returns the matching invoice count.
	SumInvoicesIssuedBetween(ctx context.Context, userID string, from, to time.Time, statuses []domain.InvoiceStatus) (decimal.Decimal, int, error)

	// SumInvoicesByStatus sums invoice totals currently in any of the given
	// statuses, regardless of date.
	SumInvoicesByStatus(ctx context.Context, userID string, statuses []domain.InvoiceStatus) (decimal.Decimal, error)

	// FindRecentInvoices returns the owner's most recently created invoices
	// with client names populated.
	FindRecentInvoices(ctx context.Context, userID string, limit int) ([]domain.Invoice, error)
}
