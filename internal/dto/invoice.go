package dto

import (
	"time"

	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemInput is one billable row of an invoice payload. A caller-supplied
// subtotal is accepted for wire compatibility but ignored: the server
// recomputes it from quantity, unit price and discount.
type LineItemInput struct {
	Description string           `json:"description" binding:"required"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	Discount    decimal.Decimal  `json:"discount"`
	Subtotal    *decimal.Decimal `json:"subtotal"`
}

// SaveInvoiceRequest defines the payload for creating or replacing an invoice.
// The invoice number is derived server-side from the owner's prefix and
// counter; any number in the payload is ignored on create.
type SaveInvoiceRequest struct {
	ClientID       string          `json:"clientId" binding:"required,uuid"`
	IssueDate      time.Time       `json:"issueDate" binding:"required" time_format:"2006-01-02"`
	DueDate        time.Time       `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Currency       string          `json:"currency"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Notes          string          `json:"notes"`
	Terms          string          `json:"terms"`
	Status         string          `json:"status" binding:"omitempty,invoicestatus"`
	Items          []LineItemInput `json:"items" binding:"required"`
}

// LineItemResponse defines the data returned for one invoice line.
type LineItemResponse struct {
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Order       int             `json:"order"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string             `json:"invoiceID"`
	ClientID       string             `json:"clientID"`
	ClientName     string             `json:"clientName,omitempty"`
	InvoiceNumber  string             `json:"invoiceNumber"`
	Status         string             `json:"status"`
	IssueDate      time.Time          `json:"issueDate"`
	DueDate        time.Time          `json:"dueDate"`
	Currency       string             `json:"currency"`
	TaxRate        decimal.Decimal    `json:"taxRate"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"taxAmount"`
	Total          decimal.Decimal    `json:"total"`
	Notes          string             `json:"notes"`
	Terms          string             `json:"terms"`
	Items          []LineItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListInvoicesResponse wraps a page of invoices and the cursor for the next one.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToLineItemResponse converts a domain.LineItem to its DTO.
func ToLineItemResponse(item *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		ItemID:      item.ItemID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Discount:    item.Discount,
		Subtotal:    item.Subtotal,
		Order:       item.Order,
	}
}

// ToInvoiceResponse converts a domain.Invoice (optionally with items) to its DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		ClientID:       inv.ClientID,
		ClientName:     inv.ClientName,
		InvoiceNumber:  inv.InvoiceNumber,
		Status:         string(inv.Status),
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		Currency:       inv.Currency,
		TaxRate:        inv.TaxRate,
		DiscountAmount: inv.DiscountAmount,
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		Notes:          inv.Notes,
		Terms:          inv.Terms,
		CreatedAt:      inv.CreatedAt,
	}
	if len(inv.Items) > 0 {
		resp.Items = make([]LineItemResponse, len(inv.Items))
		for i, item := range inv.Items {
			resp.Items[i] = ToLineItemResponse(&item)
		}
	}
	return resp
}
