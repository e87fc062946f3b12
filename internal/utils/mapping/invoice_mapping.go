package mapping

import (
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/models"
)

// ToModelInvoice converts a domain.Invoice to its database model. Items are
// mapped separately; they live in their own table.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		UserID:         d.UserID,
		ClientID:       d.ClientID,
		InvoiceNumber:  d.InvoiceNumber,
		Status:         models.InvoiceStatus(d.Status),
		IssueDate:      d.IssueDate,
		DueDate:        d.DueDate,
		Currency:       d.Currency,
		TaxRate:        d.TaxRate,
		DiscountAmount: d.DiscountAmount,
		Subtotal:       d.Subtotal,
		TaxAmount:      d.TaxAmount,
		Total:          d.Total,
		Notes:          d.Notes,
		Terms:          d.Terms,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a models.Invoice to its domain representation.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		UserID:         m.UserID,
		ClientID:       m.ClientID,
		InvoiceNumber:  m.InvoiceNumber,
		Status:         domain.InvoiceStatus(m.Status),
		IssueDate:      m.IssueDate,
		DueDate:        m.DueDate,
		Currency:       m.Currency,
		TaxRate:        m.TaxRate,
		DiscountAmount: m.DiscountAmount,
		Subtotal:       m.Subtotal,
		TaxAmount:      m.TaxAmount,
		Total:          m.Total,
		Notes:          m.Notes,
		Terms:          m.Terms,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceItem converts a domain.LineItem to its database model.
func ToModelInvoiceItem(d domain.LineItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Discount:    d.Discount,
		Subtotal:    d.Subtotal,
		ItemOrder:   d.Order,
	}
}

// ToDomainLineItem converts a models.InvoiceItem to its domain representation.
func ToDomainLineItem(m models.InvoiceItem) domain.LineItem {
	return domain.LineItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Discount:    m.Discount,
		Subtotal:    m.Subtotal,
		Order:       m.ItemOrder,
	}
}

// ToDomainLineItemSlice converts a slice of models.InvoiceItem to domain items.
func ToDomainLineItemSlice(ms []models.InvoiceItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
