package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "DRAFT"
	StatusSent      InvoiceStatus = "SENT"
	StatusPaid      InvoiceStatus = "PAID"
	StatusOverdue   InvoiceStatus = "OVERDUE"
	StatusCancelled InvoiceStatus = "CANCELLED"
)

// statusTransitions is the closed permission table for status changes.
// Structural edits (item replacement) are only permitted while DRAFT; the
// other states are terminal for the update path.
var statusTransitions = map[InvoiceStatus][]InvoiceStatus{
	StatusDraft:     {StatusSent, StatusPaid, StatusOverdue, StatusCancelled},
	StatusSent:      {},
	StatusPaid:      {},
	StatusOverdue:   {},
	StatusCancelled: {},
}

// IsValid reports whether s is a member of the closed status set.
func (s InvoiceStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsEditable reports whether an invoice in this status accepts structural edits.
func (s InvoiceStatus) IsEditable() bool {
	return s == StatusDraft
}

// CanTransitionTo reports whether the status may move to target. A no-op
// transition (same status) is always allowed.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// LineItem is one billable row on an invoice. Items are owned exclusively by
// their invoice and are created and deleted as a batch with it.
type LineItem struct {
	ItemID      string          `json:"itemID"`  // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"` // quantity*unitPrice - discount, derived server-side
	Order       int             `json:"order"`    // zero-based display position
}

// Invoice is the aggregate root: header fields plus computed totals. Totals
// are consistent with Items/TaxRate/DiscountAmount as of the last write; they
// are never recomputed on read.
type Invoice struct {
	InvoiceID     string        `json:"invoiceID"` // Primary Key (UUID)
	UserID        string        `json:"userID"`    // Owning user
	ClientID      string        `json:"clientID"`
	InvoiceNumber string        `json:"invoiceNumber"` // owner-scoped, {prefix}-{counter %03d}
	Status        InvoiceStatus `json:"status"`
	IssueDate     time.Time     `json:"issueDate"`
	DueDate       time.Time     `json:"dueDate"`
	Currency      string        `json:"currency"`

	TaxRate        decimal.Decimal `json:"taxRate"` // percentage, 0-100
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`

	Notes string `json:"notes"`
	Terms string `json:"terms"`

	Items []LineItem `json:"items,omitempty"`

	// ClientName is a read-side convenience populated by list/reporting
	// queries that join the clients table; it is never written.
	ClientName string `json:"clientName,omitempty"`

	AuditFields
}

// FormatInvoiceNumber renders the human-readable invoice number for a counter
// value, e.g. ("INV", 7) -> "INV-007". Counters above 999 widen naturally.
func FormatInvoiceNumber(prefix string, counter int64) string {
	return fmt.Sprintf("%s-%03d", prefix, counter)
}
