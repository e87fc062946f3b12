package mapping

import (
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/models"
)

// ToModelUser converts a domain.User to its database model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:           d.UserID,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		CompanyName:      d.CompanyName,
		TaxID:            d.TaxID,
		Address:          d.Address,
		City:             d.City,
		State:            d.State,
		ZipCode:          d.ZipCode,
		Country:          d.Country,
		Phone:            d.Phone,
		Website:          d.Website,
		LogoURL:          d.LogoURL,
		BrandColor:       d.BrandColor,
		InvoicePrefix:    d.InvoicePrefix,
		InvoiceCounter:   d.InvoiceCounter,
		DefaultCurrency:  d.DefaultCurrency,
		IsPremium:        d.IsPremium,
		PremiumExpiresAt: d.PremiumExpiresAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a models.User to its domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:           m.UserID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		CompanyName:      m.CompanyName,
		TaxID:            m.TaxID,
		Address:          m.Address,
		City:             m.City,
		State:            m.State,
		ZipCode:          m.ZipCode,
		Country:          m.Country,
		Phone:            m.Phone,
		Website:          m.Website,
		LogoURL:          m.LogoURL,
		BrandColor:       m.BrandColor,
		InvoicePrefix:    m.InvoicePrefix,
		InvoiceCounter:   m.InvoiceCounter,
		DefaultCurrency:  m.DefaultCurrency,
		IsPremium:        m.IsPremium,
		PremiumExpiresAt: m.PremiumExpiresAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
