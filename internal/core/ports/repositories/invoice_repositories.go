package repositories

import (
	"context"
	"time"

	"github.com/facturly/facturly-backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindItemsByInvoiceID retrieves the invoice's line items ordered by their
	// stored position.
	FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error)

	// ListInvoicesByUser retrieves a paginated list of an owner's invoices,
	// newest first, using token-based pagination. It returns the invoices,
	// a token for the next page, and an error.
	ListInvoicesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// CountInvoicesCreatedBetween counts an owner's invoices created in
	// [from, to], used for free-plan limit checks.
	CountInvoicesCreatedBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
}

// InvoiceWriter defines the atomic units of work for invoice data.
type InvoiceWriter interface {
	// CreateInvoice persists a new invoice with its items in one transaction:
	// the owner row is locked, the invoice number is formatted from the
	// owner's current prefix and counter, and the counter is incremented.
	// All steps commit together or none do. The returned invoice carries the
	// allocated number.
	CreateInvoice(ctx context.Context, userID string, invoice domain.Invoice, items []domain.LineItem) (*domain.Invoice, error)

	// UpdateInvoice replaces the invoice row and its full item set
	// (delete-all-then-insert) in one transaction. The counter is untouched.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error

	// DuplicateInvoice persists a copy of the source invoice in one
	// transaction, allocating a fresh invoice number and incrementing the
	// owner's counter, exactly as CreateInvoice does.
	DuplicateInvoice(ctx context.Context, userID string, copy domain.Invoice, items []domain.LineItem) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice and cascades to its items.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
