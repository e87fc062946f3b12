package pgsql

import (
	"context"
	"time"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	"github.com/facturly/facturly-backend/internal/models"
	"github.com/facturly/facturly-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// NewPgxReportingRepository creates a new repository for dashboard aggregates.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

func statusStrings(statuses []domain.InvoiceStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// SumInvoicesIssuedBetween sums totals of invoices issued in [from, to] with
// any of the given statuses and returns the matching count.
func (r *PgxReportingRepository) SumInvoicesIssuedBetween(ctx context.Context, userID string, from, to time.Time, statuses []domain.InvoiceStatus) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM invoices
		WHERE user_id = $1 AND issue_date >= $2 AND issue_date <= $3 AND status = ANY($4);
	`
	var sum decimal.Decimal
	var count int
	err := r.Pool.QueryRow(ctx, query, userID, from, to, statusStrings(statuses)).Scan(&sum, &count)
	if err != nil {
		return decimal.Zero, 0, apperrors.NewAppError(500, "failed to sum invoices for user "+userID, err)
	}
	return sum, count, nil
}

// SumInvoicesByStatus sums totals of invoices currently in any of the given
// statuses, regardless of date.
func (r *PgxReportingRepository) SumInvoicesByStatus(ctx context.Context, userID string, statuses []domain.InvoiceStatus) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE user_id = $1 AND status = ANY($2);
	`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, statusStrings(statuses)).Scan(&sum)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum invoices by status for user "+userID, err)
	}
	return sum, nil
}

// FindRecentInvoices returns the owner's most recently created invoices with
// client names populated.
func (r *PgxReportingRepository) FindRecentInvoices(ctx context.Context, userID string, limit int) ([]domain.Invoice, error) {
	query := `
		SELECT i.invoice_id, i.user_id, i.client_id, i.invoice_number, i.status, i.issue_date, i.due_date, i.currency,
			i.tax_rate, i.discount_amount, i.subtotal, i.tax_amount, i.total, i.notes, i.terms,
			i.created_at, i.last_updated_at, c.name AS client_name
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.user_id = $1
		ORDER BY i.created_at DESC, i.invoice_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recent invoices for user "+userID, err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0, limit)
	for rows.Next() {
		var m models.Invoice
		err := rows.Scan(
			&m.InvoiceID,
			&m.UserID,
			&m.ClientID,
			&m.InvoiceNumber,
			&m.Status,
			&m.IssueDate,
			&m.DueDate,
			&m.Currency,
			&m.TaxRate,
			&m.DiscountAmount,
			&m.Subtotal,
			&m.TaxAmount,
			&m.Total,
			&m.Notes,
			&m.Terms,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.ClientName,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recent invoice row", err)
		}
		d := mapping.ToDomainInvoice(m)
		d.ClientName = m.ClientName
		invoices = append(invoices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating recent invoice rows", err)
	}
	return invoices, nil
}
