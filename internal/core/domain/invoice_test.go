package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturly/facturly-backend/internal/core/domain"
)

func TestInvoiceStatusIsValid(t *testing.T) {
	for _, s := range []domain.InvoiceStatus{
		domain.StatusDraft,
		domain.StatusSent,
		domain.StatusPaid,
		domain.StatusOverdue,
		domain.StatusCancelled,
	} {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}
	assert.False(t, domain.InvoiceStatus("ARCHIVED").IsValid())
	assert.False(t, domain.InvoiceStatus("draft").IsValid())
	assert.False(t, domain.InvoiceStatus("").IsValid())
}

func TestInvoiceStatusIsEditable(t *testing.T) {
	assert.True(t, domain.StatusDraft.IsEditable())
	assert.False(t, domain.StatusSent.IsEditable())
	assert.False(t, domain.StatusPaid.IsEditable())
	assert.False(t, domain.StatusOverdue.IsEditable())
	assert.False(t, domain.StatusCancelled.IsEditable())
}

func TestInvoiceStatusTransitions(t *testing.T) {
	all := []domain.InvoiceStatus{
		domain.StatusDraft,
		domain.StatusSent,
		domain.StatusPaid,
		domain.StatusOverdue,
		domain.StatusCancelled,
	}

	// Draft may move anywhere.
	for _, target := range all {
		assert.True(t, domain.StatusDraft.CanTransitionTo(target), "DRAFT -> %s", target)
	}

	// Everything else only permits the no-op transition.
	for _, from := range all[1:] {
		for _, target := range all {
			if from == target {
				assert.True(t, from.CanTransitionTo(target), "%s -> %s (no-op)", from, target)
			} else {
				assert.False(t, from.CanTransitionTo(target), "%s -> %s", from, target)
			}
		}
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-007", domain.FormatInvoiceNumber("INV", 7))
	assert.Equal(t, "FAC-042", domain.FormatInvoiceNumber("FAC", 42))
	assert.Equal(t, "INV-999", domain.FormatInvoiceNumber("INV", 999))
	assert.Equal(t, "INV-1000", domain.FormatInvoiceNumber("INV", 1000))
}
