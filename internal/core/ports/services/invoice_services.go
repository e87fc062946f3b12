package services

import (
	"context"

	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/dto"
)

// InvoiceSvcFacade defines the invoice operations exposed to the handlers.
type InvoiceSvcFacade interface {
	// CreateInvoice validates and assembles the invoice aggregate, then
	// persists it atomically together with the owner's counter increment.
	CreateInvoice(ctx context.Context, userID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// GetInvoiceByID retrieves an owner's invoice with its ordered items.
	GetInvoiceByID(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of the owner's invoices.
	ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)

	// UpdateInvoice fully replaces a DRAFT invoice's fields and items.
	UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// DuplicateInvoice creates a DRAFT copy of an invoice with a fresh
	// number; monetary fields are copied verbatim, never recomputed.
	DuplicateInvoice(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, userID string, invoiceID string) error

	// RenderInvoicePDF produces the printable document for an invoice and a
	// suggested download filename.
	RenderInvoicePDF(ctx context.Context, userID string, invoiceID string) (string, []byte, error)
}
