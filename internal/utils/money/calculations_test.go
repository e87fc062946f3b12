package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/utils/money"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineSubtotal(t *testing.T) {
	testCases := []struct {
		name      string
		quantity  string
		unitPrice string
		discount  string
		expected  string
		wantErr   bool
	}{
		{name: "plain multiply", quantity: "2", unitPrice: "50", discount: "0", expected: "100"},
		{name: "with discount", quantity: "1", unitPrice: "30", discount: "5", expected: "25"},
		{name: "fractional quantity", quantity: "1.5", unitPrice: "99.99", discount: "0", expected: "149.985"},
		{name: "discount exceeding line", quantity: "1", unitPrice: "10", discount: "15", expected: "-5"},
		{name: "zero quantity", quantity: "0", unitPrice: "10", discount: "0", wantErr: true},
		{name: "negative quantity", quantity: "-1", unitPrice: "10", discount: "0", wantErr: true},
		{name: "negative unit price", quantity: "1", unitPrice: "-10", discount: "0", wantErr: true},
		{name: "negative discount", quantity: "1", unitPrice: "10", discount: "-1", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.LineSubtotal(d(tc.quantity), d(tc.unitPrice), d(tc.discount))
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tc.expected)), "got %s, want %s", got, tc.expected)
		})
	}
}

func TestInvoiceTotals(t *testing.T) {
	items := []domain.LineItem{
		{Subtotal: d("100")}, // 2 x 50
		{Subtotal: d("25")},  // 1 x 30 - 5
	}

	totals, err := money.InvoiceTotals(items, d("16"), d("10"))
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(d("125")), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(d("20")), "tax: %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(d("135")), "total: %s", totals.Total)
}

func TestInvoiceTotals_NoItems(t *testing.T) {
	totals, err := money.InvoiceTotals(nil, d("0"), d("0"))
	require.NoError(t, err)
	assert.True(t, totals.Total.IsZero())
}

func TestInvoiceTotals_NegativeTotalAllowed(t *testing.T) {
	items := []domain.LineItem{{Subtotal: d("10")}}

	totals, err := money.InvoiceTotals(items, d("0"), d("50"))
	require.NoError(t, err)

	assert.True(t, totals.Total.Equal(d("-40")), "total: %s", totals.Total)
}

func TestInvoiceTotals_TaxRateBounds(t *testing.T) {
	items := []domain.LineItem{{Subtotal: d("10")}}

	_, err := money.InvoiceTotals(items, d("-1"), d("0"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = money.InvoiceTotals(items, d("100.01"), d("0"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = money.InvoiceTotals(items, d("100"), d("0"))
	assert.NoError(t, err)
}

func TestInvoiceTotals_NegativeDiscountRejected(t *testing.T) {
	items := []domain.LineItem{{Subtotal: d("10")}}

	_, err := money.InvoiceTotals(items, d("0"), d("-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestInvoiceTotals_ExactDecimalSum(t *testing.T) {
	// Classic float trap: 0.1 + 0.2 must equal exactly 0.3.
	items := []domain.LineItem{
		{Subtotal: d("0.1")},
		{Subtotal: d("0.2")},
	}

	totals, err := money.InvoiceTotals(items, d("0"), d("0"))
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(d("0.3")), "subtotal: %s", totals.Subtotal)
}
