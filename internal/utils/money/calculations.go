package money

import (
	"fmt"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Totals holds the computed monetary figures of a whole invoice.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineSubtotal computes quantity*unitPrice - discount for a single line.
// No rounding is applied; decimal arithmetic keeps the sum exact across any
// number of lines.
func LineSubtotal(quantity, unitPrice, discount decimal.Decimal) (decimal.Decimal, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: quantity must be positive, got %s", apperrors.ErrInvalidAmount, quantity)
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: unit price must not be negative, got %s", apperrors.ErrInvalidAmount, unitPrice)
	}
	if discount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: discount must not be negative, got %s", apperrors.ErrInvalidAmount, discount)
	}
	return quantity.Mul(unitPrice).Sub(discount), nil
}

// InvoiceTotals sums the item subtotals in list order and applies the tax rate
// and the invoice-level discount:
//
//	subtotal  = sum(item.Subtotal)
//	taxAmount = subtotal * taxRate / 100
//	total     = subtotal + taxAmount - discountAmount
//
// The total is NOT floored at zero: a discount exceeding subtotal+tax yields a
// negative total and is surfaced as-is.
func InvoiceTotals(items []domain.LineItem, taxRate, discountAmount decimal.Decimal) (Totals, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(oneHundred) {
		return Totals{}, fmt.Errorf("%w: tax rate must be between 0 and 100, got %s", apperrors.ErrInvalidAmount, taxRate)
	}
	if discountAmount.IsNegative() {
		return Totals{}, fmt.Errorf("%w: discount amount must not be negative, got %s", apperrors.ErrInvalidAmount, discountAmount)
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}

	taxAmount := subtotal.Mul(taxRate).Div(oneHundred)
	total := subtotal.Add(taxAmount).Sub(discountAmount)

	return Totals{Subtotal: subtotal, TaxAmount: taxAmount, Total: total}, nil
}
