package mapping

import (
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/models"
)

// ToModelAuditFields converts domain audit fields to their model counterpart.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainAuditFields converts model audit fields to their domain counterpart.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}
