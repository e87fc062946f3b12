package models

// Client is the database representation of a billing recipient.
type Client struct {
	ClientID string `db:"client_id"`
	UserID   string `db:"user_id"`

	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	TaxID   string `db:"tax_id"`
	Address string `db:"address"`
	City    string `db:"city"`
	State   string `db:"state"`
	ZipCode string `db:"zip_code"`
	Country string `db:"country"`
	Notes   string `db:"notes"`

	AuditFields
}
