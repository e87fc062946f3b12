package models

import "time"

// User is the database representation of an account owner.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	CompanyName string `db:"company_name"`
	TaxID       string `db:"tax_id"`
	Address     string `db:"address"`
	City        string `db:"city"`
	State       string `db:"state"`
	ZipCode     string `db:"zip_code"`
	Country     string `db:"country"`
	Phone       string `db:"phone"`
	Website     string `db:"website"`
	LogoURL     string `db:"logo_url"`
	BrandColor  string `db:"brand_color"`

	InvoicePrefix   string `db:"invoice_prefix"`
	InvoiceCounter  int64  `db:"invoice_counter"`
	DefaultCurrency string `db:"default_currency"`

	IsPremium        bool       `db:"is_premium"`
	PremiumExpiresAt *time.Time `db:"premium_expires_at"`

	AuditFields
}
