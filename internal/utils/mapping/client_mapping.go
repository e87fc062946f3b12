package mapping

import (
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/models"
)

// ToModelClient converts a domain.Client to its database model.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		UserID:      d.UserID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		TaxID:       d.TaxID,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		ZipCode:     d.ZipCode,
		Country:     d.Country,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a models.Client to its domain representation.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		TaxID:       m.TaxID,
		Address:     m.Address,
		City:        m.City,
		State:       m.State,
		ZipCode:     m.ZipCode,
		Country:     m.Country,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of models.Client to domain clients.
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
