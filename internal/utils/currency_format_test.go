package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/utils"
)

func TestFormatCurrency(t *testing.T) {
	got, err := utils.FormatCurrency(decimal.RequireFromString("12.5"), "USD")
	require.NoError(t, err)
	assert.Contains(t, got, "12.50")

	got, err = utils.FormatCurrency(decimal.NewFromInt(0), "EUR")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestFormatCurrency_UnknownCode(t *testing.T) {
	_, err := utils.FormatCurrency(decimal.NewFromInt(10), "NOPE")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRender)
}
