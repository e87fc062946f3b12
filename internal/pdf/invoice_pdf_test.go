package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/pdf"
)

func sampleDocument(status domain.InvoiceStatus) pdf.Document {
	return pdf.Document{
		Invoice: domain.Invoice{
			InvoiceID:      "inv-1",
			InvoiceNumber:  "INV-007",
			Status:         status,
			IssueDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			DueDate:        time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			Currency:       "USD",
			TaxRate:        decimal.NewFromInt(16),
			DiscountAmount: decimal.NewFromInt(10),
			Subtotal:       decimal.NewFromInt(125),
			TaxAmount:      decimal.NewFromInt(20),
			Total:          decimal.NewFromInt(135),
			Notes:          "Gracias por su preferencia.",
			Terms:          "Pago a 30 días.",
			Items: []domain.LineItem{
				{Description: "Diseño web", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), Subtotal: decimal.NewFromInt(100), Order: 0},
				{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(30), Discount: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(25), Order: 1},
			},
		},
		Client: domain.Client{
			Name:    "Acme Corp",
			Email:   "billing@acme.example",
			Address: "Av. Reforma 123",
			City:    "CDMX",
			State:   "CDMX",
		},
		Sender: domain.User{
			Email:       "freelancer@example.com",
			CompanyName: "Estudio López",
			TaxID:       "LOPE800101XXX",
		},
	}
}

func TestRenderInvoice(t *testing.T) {
	data, err := pdf.RenderInvoice(sampleDocument(domain.StatusSent))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderInvoice_DraftWatermarkChangesOutput(t *testing.T) {
	sent, err := pdf.RenderInvoice(sampleDocument(domain.StatusSent))
	require.NoError(t, err)
	draft, err := pdf.RenderInvoice(sampleDocument(domain.StatusDraft))
	require.NoError(t, err)

	// The watermark adds content, so the draft render must be strictly larger.
	assert.Greater(t, len(draft), len(sent))
}

func TestRenderInvoice_NoItems(t *testing.T) {
	doc := sampleDocument(domain.StatusDraft)
	doc.Invoice.Items = nil

	_, err := pdf.RenderInvoice(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRender)
}

func TestRenderInvoice_UnknownCurrency(t *testing.T) {
	doc := sampleDocument(domain.StatusDraft)
	doc.Invoice.Currency = "XXXX"

	_, err := pdf.RenderInvoice(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRender)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "factura-INV-007.pdf", pdf.Filename("INV-007"))
}
