package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors the closed domain status set at the storage layer.
type InvoiceStatus string

// Invoice is the database representation of an invoice header with its
// computed totals. Totals are stored, not derived on read.
type Invoice struct {
	InvoiceID     string        `db:"invoice_id"`
	UserID        string        `db:"user_id"`
	ClientID      string        `db:"client_id"`
	InvoiceNumber string        `db:"invoice_number"`
	Status        InvoiceStatus `db:"status"`
	IssueDate     time.Time     `db:"issue_date"`
	DueDate       time.Time     `db:"due_date"`
	Currency      string        `db:"currency"`

	TaxRate        decimal.Decimal `db:"tax_rate"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	Total          decimal.Decimal `db:"total"`

	Notes string `db:"notes"`
	Terms string `db:"terms"`

	// ClientName is populated by list queries that join the clients table.
	ClientName string `db:"client_name"`

	AuditFields
}

// InvoiceItem is the database representation of one invoice line.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Discount    decimal.Decimal `db:"discount"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	ItemOrder   int             `db:"item_order"`
}
