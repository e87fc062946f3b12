package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	"github.com/facturly/facturly-backend/internal/models"
	"github.com/facturly/facturly-backend/internal/utils/mapping"
	"github.com/facturly/facturly-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `invoice_id, user_id, client_id, invoice_number, status, issue_date, due_date, currency,
	tax_rate, discount_amount, subtotal, tax_amount, total, notes, terms, created_at, last_updated_at`

const itemColumns = `item_id, invoice_id, description, quantity, unit_price, discount, subtotal, item_order`

type PgxInvoiceRepository struct {
	BaseRepository
}

// NewPgxInvoiceRepository creates a new repository for invoice data.
func NewPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
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
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanInvoiceItem(row pgx.Row) (*models.InvoiceItem, error) {
	var m models.InvoiceItem
	err := row.Scan(
		&m.ItemID,
		&m.InvoiceID,
		&m.Description,
		&m.Quantity,
		&m.UnitPrice,
		&m.Discount,
		&m.Subtotal,
		&m.ItemOrder,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func insertInvoiceTx(ctx context.Context, tx pgx.Tx, m models.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_id, user_id, client_id, invoice_number, status, issue_date, due_date, currency,
			tax_rate, discount_amount, subtotal, tax_amount, total, notes, terms, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.UserID,
		m.ClientID,
		m.InvoiceNumber,
		m.Status,
		m.IssueDate,
		m.DueDate,
		m.Currency,
		m.TaxRate,
		m.DiscountAmount,
		m.Subtotal,
		m.TaxAmount,
		m.Total,
		m.Notes,
		m.Terms,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	return err
}

func insertItemsTx(ctx context.Context, tx pgx.Tx, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, unit_price, discount, subtotal, item_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, item := range items {
		m := mapping.ToModelInvoiceItem(item)
		batch.Queue(query,
			m.ItemID,
			m.InvoiceID,
			m.Description,
			m.Quantity,
			m.UnitPrice,
			m.Discount,
			m.Subtotal,
			m.ItemOrder,
		)
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return br.Close()
}

// createNumbered persists a new invoice with its items in a single
// transaction. The owner row is locked so concurrent creates serialize on the
// counter: each commit sees a distinct number and leaves the counter bumped
// by exactly one.
func (r *PgxInvoiceRepository) createNumbered(ctx context.Context, userID string, invoice domain.Invoice, items []domain.LineItem) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var prefix string
	var counter int64
	err = tx.QueryRow(ctx, `SELECT invoice_prefix, invoice_counter FROM users WHERE user_id = $1 FOR UPDATE;`, userID).
		Scan(&prefix, &counter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user " + userID + " not found for invoice numbering")
		}
		return nil, apperrors.NewAppError(500, "failed to lock user row for invoice numbering", err)
	}

	invoice.InvoiceNumber = domain.FormatInvoiceNumber(prefix, counter)

	if err := insertInvoiceTx(ctx, tx, mapping.ToModelInvoice(invoice)); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert invoice "+invoice.InvoiceID, err)
	}
	if err := insertItemsTx(ctx, tx, items); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert items for invoice "+invoice.InvoiceID, err)
	}

	_, err = tx.Exec(ctx, `UPDATE users SET invoice_counter = invoice_counter + 1, last_updated_at = $2 WHERE user_id = $1;`,
		userID, time.Now())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to increment invoice counter for user "+userID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	invoice.Items = items
	return &invoice, nil
}

// CreateInvoice persists a new invoice, allocating its number from the
// owner's prefix and counter.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, userID string, invoice domain.Invoice, items []domain.LineItem) (*domain.Invoice, error) {
	return r.createNumbered(ctx, userID, invoice, items)
}

// DuplicateInvoice persists a copy of an invoice. Numbering follows the same
// locked counter path as CreateInvoice.
func (r *PgxInvoiceRepository) DuplicateInvoice(ctx context.Context, userID string, copy domain.Invoice, items []domain.LineItem) (*domain.Invoice, error) {
	return r.createNumbered(ctx, userID, copy, items)
}

// UpdateInvoice replaces the invoice row and its full item set in one
// transaction. The owner's counter is untouched.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET client_id = $2, status = $3, issue_date = $4, due_date = $5, currency = $6,
		    tax_rate = $7, discount_amount = $8, subtotal = $9, tax_amount = $10, total = $11,
		    notes = $12, terms = $13, last_updated_at = $14
		WHERE invoice_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.ClientID,
		m.Status,
		m.IssueDate,
		m.DueDate,
		m.Currency,
		m.TaxRate,
		m.DiscountAmount,
		m.Subtotal,
		m.TaxAmount,
		m.Total,
		m.Notes,
		m.Terms,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice " + m.InvoiceID + " not found for update")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, m.InvoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to clear items for invoice "+m.InvoiceID, err)
	}
	if err := insertItemsTx(ctx, tx, items); err != nil {
		return apperrors.NewAppError(500, "failed to insert items for invoice "+m.InvoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteInvoice removes the invoice. Items go with it via ON DELETE CASCADE.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice " + invoiceID + " not found for delete")
	}
	return nil
}

// FindInvoiceByID retrieves an invoice header by its ID. Items are loaded
// separately via FindItemsByInvoiceID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	domainInvoice := mapping.ToDomainInvoice(*m)
	return &domainInvoice, nil
}

// FindItemsByInvoiceID retrieves the invoice's line items in their stored
// order.
func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	query := `SELECT ` + itemColumns + ` FROM invoice_items WHERE invoice_id = $1 ORDER BY item_order ASC;`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list items for invoice "+invoiceID, err)
	}
	defer rows.Close()

	items := make([]models.InvoiceItem, 0)
	for rows.Next() {
		m, err := scanInvoiceItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating invoice item rows", err)
	}
	return mapping.ToDomainLineItemSlice(items), nil
}

// ListInvoicesByUser retrieves a page of an owner's invoices, newest first,
// with the client name joined in. Pagination uses an opaque
// (created_at, invoice_id) cursor; limit+1 rows are fetched to decide whether
// a next page exists.
func (r *PgxInvoiceRepository) ListInvoicesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	query := `
		SELECT i.invoice_id, i.user_id, i.client_id, i.invoice_number, i.status, i.issue_date, i.due_date, i.currency,
			i.tax_rate, i.discount_amount, i.subtotal, i.tax_amount, i.total, i.notes, i.terms,
			i.created_at, i.last_updated_at, c.name AS client_name
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.user_id = $1
	`
	args := []any{userID}
	if nextToken != nil && *nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (i.created_at, i.invoice_id) < ($2, $3)`
		args = append(args, cursorTime, cursorID)
	}
	query += ` ORDER BY i.created_at DESC, i.invoice_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list invoices for user "+userID, err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0, limit+1)
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
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		d := mapping.ToDomainInvoice(m)
		d.ClientName = m.ClientName
		invoices = append(invoices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed iterating invoice rows", err)
	}

	var newToken *string
	if len(invoices) > limit {
		invoices = invoices[:limit]
		last := invoices[len(invoices)-1]
		tokenStr := pagination.EncodeToken(last.CreatedAt, last.InvoiceID)
		newToken = &tokenStr
	}
	return invoices, newToken, nil
}

// CountInvoicesCreatedBetween counts an owner's invoices created in [from, to].
func (r *PgxInvoiceRepository) CountInvoicesCreatedBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3;`,
		userID, from, to).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count invoices for user "+userID, err)
	}
	return count, nil
}
