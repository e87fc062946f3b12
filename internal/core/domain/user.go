package domain

import "time"

// User represents an account owner. Branding and address fields feed the
// document renderer; InvoicePrefix and InvoiceCounter drive invoice numbering.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	CompanyName string `json:"companyName"`
	TaxID       string `json:"taxId"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	LogoURL     string `json:"logoUrl"`
	BrandColor  string `json:"brandColor"`

	InvoicePrefix   string `json:"invoicePrefix"`
	InvoiceCounter  int64  `json:"invoiceCounter"`
	DefaultCurrency string `json:"defaultCurrency"`

	IsPremium        bool       `json:"isPremium"`
	PremiumExpiresAt *time.Time `json:"premiumExpiresAt,omitempty"`

	AuditFields
}

// SenderName returns the name shown on rendered documents, falling back to
// the account email when no company name is configured.
func (u User) SenderName() string {
	if u.CompanyName != "" {
		return u.CompanyName
	}
	return u.Email
}
