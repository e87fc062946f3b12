package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/middleware"
	"github.com/facturly/facturly-backend/internal/pdf"
	"github.com/facturly/facturly-backend/internal/utils/money"
)

const (
	// freeInvoicesPerMonth caps invoice creation for non-premium accounts.
	freeInvoicesPerMonth = 5

	// duplicateDueDays is the payment window given to a duplicated invoice.
	duplicateDueDays = 30

	maxListLimit     = 100
	defaultListLimit = 20
)

// invoiceService implements the invoice operations over the repository ports.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func isPremiumActive(user *domain.User, now time.Time) bool {
	if !user.IsPremium {
		return false
	}
	if user.PremiumExpiresAt != nil && user.PremiumExpiresAt.Before(now) {
		return false
	}
	return true
}

// checkMonthlyLimit enforces the free-plan invoice cap for the calendar month
// containing now. Duplication counts against the cap like any other creation.
func (s *invoiceService) checkMonthlyLimit(ctx context.Context, user *domain.User, now time.Time) error {
	if isPremiumActive(user, now) {
		return nil
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	count, err := s.invoiceRepo.CountInvoicesCreatedBetween(ctx, user.UserID, monthStart, now)
	if err != nil {
		return err
	}
	if count >= freeInvoicesPerMonth {
		return fmt.Errorf("%w: free plan allows %d invoices per month", apperrors.ErrLimitReached, freeInvoicesPerMonth)
	}
	return nil
}

// findOwnedClient resolves a client and verifies it belongs to the user.
// Someone else's client is reported as not found rather than forbidden.
func (s *invoiceService) findOwnedClient(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return client, nil
}

// findOwnedInvoice resolves an invoice header and verifies ownership.
func (s *invoiceService) findOwnedInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return invoice, nil
}

// buildAggregate validates the payload and assembles a consistent invoice:
// item subtotals and invoice totals are always recomputed server-side, and
// items keep their payload order as display position. Validation fails on the
// first offending field.
func (s *invoiceService) buildAggregate(invoiceID, userID string, user *domain.User, req dto.SaveInvoiceRequest, status domain.InvoiceStatus, now time.Time) (domain.Invoice, []domain.LineItem, error) {
	if len(req.Items) == 0 {
		return domain.Invoice{}, nil, apperrors.NewValidationError("items", "at least one item is required")
	}

	items := make([]domain.LineItem, len(req.Items))
	for i, input := range req.Items {
		if strings.TrimSpace(input.Description) == "" {
			return domain.Invoice{}, nil, apperrors.NewValidationError(fmt.Sprintf("items[%d].description", i), "description is required")
		}
		subtotal, err := money.LineSubtotal(input.Quantity, input.UnitPrice, input.Discount)
		if err != nil {
			return domain.Invoice{}, nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items[i] = domain.LineItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: input.Description,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			Discount:    input.Discount,
			Subtotal:    subtotal,
			Order:       i,
		}
	}

	totals, err := money.InvoiceTotals(items, req.TaxRate, req.DiscountAmount)
	if err != nil {
		return domain.Invoice{}, nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = user.DefaultCurrency
	}

	invoice := domain.Invoice{
		InvoiceID:      invoiceID,
		UserID:         userID,
		ClientID:       req.ClientID,
		Status:         status,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Currency:       currency,
		TaxRate:        req.TaxRate,
		DiscountAmount: req.DiscountAmount,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
		Notes:          req.Notes,
		Terms:          req.Terms,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	return invoice, items, nil
}

func parseStatus(raw string, fallback domain.InvoiceStatus) (domain.InvoiceStatus, error) {
	if raw == "" {
		return fallback, nil
	}
	status := domain.InvoiceStatus(raw)
	if !status.IsValid() {
		return "", apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", raw))
	}
	return status, nil
}

// CreateInvoice validates and assembles the aggregate, then persists it
// together with the owner's counter increment in one transaction.
func (s *invoiceService) CreateInvoice(ctx context.Context, userID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkMonthlyLimit(ctx, user, now); err != nil {
		return nil, err
	}
	if _, err := s.findOwnedClient(ctx, userID, req.ClientID); err != nil {
		return nil, err
	}

	status, err := parseStatus(req.Status, domain.StatusDraft)
	if err != nil {
		return nil, err
	}

	invoice, items, err := s.buildAggregate(uuid.NewString(), userID, user, req, status, now)
	if err != nil {
		return nil, err
	}

	saved, err := s.invoiceRepo.CreateInvoice(ctx, userID, invoice, items)
	if err != nil {
		logger.Error("Failed to create invoice", slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Invoice created", slog.String("invoice_id", saved.InvoiceID), slog.String("invoice_number", saved.InvoiceNumber))
	return saved, nil
}

// GetInvoiceByID retrieves an owner's invoice with its ordered items.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.findOwnedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	if client, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID); err == nil {
		invoice.ClientName = client.Name
	}
	return invoice, nil
}

// ListInvoices retrieves a page of the owner's invoices, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	invoices, nextToken, err := s.invoiceRepo.ListInvoicesByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.ToInvoiceResponse(&invoices[i])
	}
	return &dto.ListInvoicesResponse{Invoices: responses, NextToken: nextToken}, nil
}

// UpdateInvoice fully replaces a draft invoice's fields and items. The stored
// invoice number and creation time survive the replacement.
func (s *invoiceService) UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	existing, err := s.findOwnedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if !existing.Status.IsEditable() {
		return nil, fmt.Errorf("%w: invoice %s is %s, only drafts can be edited", apperrors.ErrInvalidState, existing.InvoiceNumber, existing.Status)
	}

	status, err := parseStatus(req.Status, existing.Status)
	if err != nil {
		return nil, err
	}
	if !existing.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move invoice %s from %s to %s", apperrors.ErrInvalidState, existing.InvoiceNumber, existing.Status, status)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findOwnedClient(ctx, userID, req.ClientID); err != nil {
		return nil, err
	}

	invoice, items, err := s.buildAggregate(invoiceID, userID, user, req, status, now)
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = existing.InvoiceNumber
	invoice.CreatedAt = existing.CreatedAt
	invoice.LastUpdatedAt = now

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice, items); err != nil {
		logger.Error("Failed to update invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		return nil, err
	}
	invoice.Items = items
	logger.Info("Invoice updated", slog.String("invoice_id", invoiceID))
	return &invoice, nil
}

// DuplicateInvoice creates a draft copy with a fresh number and a new payment
// window. Monetary fields are copied verbatim from the source, never
// recomputed, so a copy of an old invoice preserves its historical figures.
func (s *invoiceService) DuplicateInvoice(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	source, err := s.findOwnedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	sourceItems, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkMonthlyLimit(ctx, user, now); err != nil {
		return nil, err
	}

	duplicate := *source
	duplicate.InvoiceID = uuid.NewString()
	duplicate.InvoiceNumber = ""
	duplicate.Status = domain.StatusDraft
	duplicate.IssueDate = now
	duplicate.DueDate = now.AddDate(0, 0, duplicateDueDays)
	duplicate.Items = nil
	duplicate.ClientName = ""
	duplicate.CreatedAt = now
	duplicate.LastUpdatedAt = now

	items := make([]domain.LineItem, len(sourceItems))
	for i, item := range sourceItems {
		items[i] = item
		items[i].ItemID = uuid.NewString()
		items[i].InvoiceID = duplicate.InvoiceID
	}

	saved, err := s.invoiceRepo.DuplicateInvoice(ctx, userID, duplicate, items)
	if err != nil {
		logger.Error("Failed to duplicate invoice", slog.String("source_invoice_id", invoiceID), slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Invoice duplicated", slog.String("source_invoice_id", invoiceID), slog.String("invoice_id", saved.InvoiceID), slog.String("invoice_number", saved.InvoiceNumber))
	return saved, nil
}

// DeleteInvoice removes an owner's invoice and its items.
func (s *invoiceService) DeleteInvoice(ctx context.Context, userID string, invoiceID string) error {
	if _, err := s.findOwnedInvoice(ctx, userID, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
}

// RenderInvoicePDF assembles the invoice, its client and the sender profile
// into the printable document, returning the suggested download filename and
// the document bytes.
func (s *invoiceService) RenderInvoicePDF(ctx context.Context, userID string, invoiceID string) (string, []byte, error) {
	invoice, err := s.findOwnedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return "", nil, err
	}
	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return "", nil, err
	}
	invoice.Items = items

	client, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID)
	if err != nil {
		return "", nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	data, err := pdf.RenderInvoice(pdf.Document{
		Invoice: *invoice,
		Client:  *client,
		Sender:  *user,
	})
	if err != nil {
		return "", nil, err
	}
	return pdf.Filename(invoice.InvoiceNumber), data, nil
}
