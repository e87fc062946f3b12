package domain

// Client is a billing recipient owned by exactly one user. Invoices reference
// clients by ID, so client edits are reflected on later renders.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (UUID)
	UserID   string `json:"userID"`   // Owning user

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Notes   string `json:"notes"`

	AuditFields
}
