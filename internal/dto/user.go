package dto

import (
	"time"

	"github.com/facturly/facturly-backend/internal/core/domain"
)

// UpdateProfileRequest defines the data allowed for updating a user profile.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateProfileRequest struct {
	CompanyName     *string `json:"companyName"`
	TaxID           *string `json:"taxId"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	ZipCode         *string `json:"zipCode"`
	Country         *string `json:"country"`
	Phone           *string `json:"phone"`
	Website         *string `json:"website"`
	InvoicePrefix   *string `json:"invoicePrefix" binding:"omitempty,max=10"`
	DefaultCurrency *string `json:"defaultCurrency" binding:"omitempty,len=3"`
	BrandColor      *string `json:"brandColor"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID           string     `json:"userID"`
	Email            string     `json:"email"`
	CompanyName      string     `json:"companyName"`
	TaxID            string     `json:"taxId"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	ZipCode          string     `json:"zipCode"`
	Country          string     `json:"country"`
	Phone            string     `json:"phone"`
	Website          string     `json:"website"`
	LogoURL          string     `json:"logoUrl"`
	BrandColor       string     `json:"brandColor"`
	InvoicePrefix    string     `json:"invoicePrefix"`
	DefaultCurrency  string     `json:"defaultCurrency"`
	IsPremium        bool       `json:"isPremium"`
	PremiumExpiresAt *time.Time `json:"premiumExpiresAt,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:           u.UserID,
		Email:            u.Email,
		CompanyName:      u.CompanyName,
		TaxID:            u.TaxID,
		Address:          u.Address,
		City:             u.City,
		State:            u.State,
		ZipCode:          u.ZipCode,
		Country:          u.Country,
		Phone:            u.Phone,
		Website:          u.Website,
		LogoURL:          u.LogoURL,
		BrandColor:       u.BrandColor,
		InvoicePrefix:    u.InvoicePrefix,
		DefaultCurrency:  u.DefaultCurrency,
		IsPremium:        u.IsPremium,
		PremiumExpiresAt: u.PremiumExpiresAt,
	}
}
