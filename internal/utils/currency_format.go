package utils

import (
	"fmt"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders a monetary amount with the symbol and rounding rules
// of the given ISO-4217 code, e.g. (12.5, "USD") -> "$12.50".
// An unrecognized code is a render failure: documents must not be produced
// with unformattable figures.
func FormatCurrency(amount decimal.Decimal, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: unsupported currency code %q", apperrors.ErrRender, code)
	}
	f, _ := amount.Float64()
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(f))), nil
}
